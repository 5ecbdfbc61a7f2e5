package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ericoliveiras/pode-pod/internal/checkout"
	"github.com/ericoliveiras/pode-pod/internal/database"
	"github.com/ericoliveiras/pode-pod/internal/frete"
	"github.com/ericoliveiras/pode-pod/internal/handler"
	"github.com/ericoliveiras/pode-pod/internal/metrics"
	"github.com/ericoliveiras/pode-pod/internal/pagamento"
	"github.com/ericoliveiras/pode-pod/internal/planilha"
	"github.com/ericoliveiras/pode-pod/internal/repository"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Sobe o servidor HTTP",
	RunE:  runServe,
}

func databaseConfig() database.Config {
	return database.Config{
		URL:               cfg.DatabaseURL,
		MaxConnections:    cfg.MaxConnections,
		IdleTimeout:       cfg.IdleTimeout,
		ConnectionTimeout: cfg.ConnectionTimeout,
		Retry:             database.DefaultRetryPolicy(),
	}
}

func conectar(ctx context.Context) (*gorm.DB, *repository.Repository, error) {
	dbCfg := databaseConfig()
	db, err := database.ConnectDB(ctx, dbCfg, log)
	if err != nil {
		return nil, nil, err
	}
	return db, repository.New(db, dbCfg.Retry), nil
}

func novoGateway() (pagamento.Gateway, error) {
	if cfg.MPAccessToken == "" {
		log.Info("Mercado Pago não configurado; usando chave PIX estática")
		return pagamento.ChaveEstatica(cfg.PixKey), nil
	}
	return pagamento.NewMercadoPago(cfg.MPAccessToken, log)
}

func runServe(cmd *cobra.Command, args []string) error {
	if !cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	db, repo, err := conectar(cmd.Context())
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	m := metrics.New()
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options.HttpOnly = true

	provider := frete.NewConfigProvider(repo, log)
	bairro := frete.NewEstrategiaBairro(repo, frete.MargemPadrao)
	vitrine := frete.NewEstrategiaVitrine(nil)
	funcao := frete.NewEstrategiaFuncao(provider, cfg.EnderecoLoja)
	simulada, err := frete.NovaEstrategiaSimulada(cfg.EstrategiaFrete, nil, provider, cfg.EnderecoLoja)
	if err != nil {
		return err
	}

	gateway, err := novoGateway()
	if err != nil {
		return err
	}

	calculadora := frete.NewCalculadora(bairro, simulada)
	svc := checkout.New(checkout.Config{
		Produtos:     repo,
		Pedidos:      repo,
		Cotador:      calculadora,
		Gateway:      gateway,
		Metrics:      m,
		WhatsApp:     cfg.WhatsApp,
		EnderecoLoja: cfg.EnderecoLoja,
		Log:          log,
	})

	router := handler.NewRouter(handler.Deps{
		Frete:    &handler.FreteHandler{Vitrine: vitrine, Funcao: funcao, Bairro: bairro, Metrics: m, Log: log},
		Catalogo: &handler.CatalogoHandler{Catalogo: repo, Log: log},
		Vendas:   &handler.VendasHandler{Pedidos: repo, Metrics: m, Log: log},
		Cart:     &handler.CartHandler{Store: store, Fechamento: svc, Log: log},
		Auth:     &handler.AuthHandler{Store: store, Usuarios: repo, Log: log},
		Lojista: &handler.LojistaHandler{
			Pedidos:     repo,
			Planilha:    planilha.Nova(),
			Gateway:     gateway,
			FreteConfig: repo,
			Log:         log,
		},
		Health: &handler.HealthHandler{
			Ping:    func(ctx context.Context) error { return database.Ping(ctx, db) },
			Timeout: 5 * time.Second,
			Log:     log,
		},
		Metrics: m,
		Log:     log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	log.Info("servidor rodando",
		zap.String("porta", cfg.Port),
		zap.String("frete_simulado", calculadora.Simulada().Nome()),
		zap.Bool("mercado_pago", cfg.MPAccessToken != ""))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}
	log.Info("desligando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("servidor forçado a parar", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return nil
}
