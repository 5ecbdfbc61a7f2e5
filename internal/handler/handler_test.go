package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"

	"github.com/ericoliveiras/pode-pod/internal/checkout"
	"github.com/ericoliveiras/pode-pod/internal/database"
	"github.com/ericoliveiras/pode-pod/internal/frete"
	"github.com/ericoliveiras/pode-pod/internal/metrics"
	"github.com/ericoliveiras/pode-pod/internal/model"
	"github.com/ericoliveiras/pode-pod/internal/pagamento"
	"github.com/ericoliveiras/pode-pod/internal/planilha"
	"github.com/ericoliveiras/pode-pod/internal/repository"
)

const (
	testSenha        = "senhaValidaParaTeste123"
	testLojistaEmail = "lojista@podepod.com.br"
	testClienteEmail = "cliente@podepod.com.br"
)

type testEnv struct {
	router  *gin.Engine
	repo    *repository.Repository
	store   *sessions.CookieStore
	metrics *metrics.Metrics
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	log := zap.NewNop()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	cfg := database.Config{MaxConnections: 1, Retry: database.RetryPolicy{MaxAttempts: 1}}
	db, err := database.Open(ctx, sqlite.Open(dsn), cfg, log)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	repo := repository.New(db, cfg.Retry)

	require.NoError(t, repo.UpsertProdutos(ctx, []model.Produto{
		{ID: "ignite-v50-5k", Nome: "IGNITE V50 5K", Preco: 49.90, Categoria: model.CategoriaPod, EmEstoque: true, Sabores: []string{"Blue Dream", "Watermelon Ice"}},
		{ID: "elfbar-23k", Nome: "ELFBAR 23K", Preco: 79.90, Categoria: model.CategoriaPod, EmEstoque: true},
		{ID: "seda-ocb", Nome: "Seda OCB", Preco: 8, Categoria: model.CategoriaTabacaria, EmEstoque: false},
	}))
	require.NoError(t, repo.UpsertBairros(ctx, []model.Bairro{
		{Nome: "Vila Madalena", DistanciaKm: 6.5, Zona: model.ZonaOeste, TempoEntregaMin: 20, ValorBase: 28},
		{Nome: "Pinheiros", DistanciaKm: 5.2, Zona: model.ZonaOeste, TempoEntregaMin: 18, ValorBase: 25},
		{Nome: "Mooca", DistanciaKm: 4.1, Zona: model.ZonaLeste, TempoEntregaMin: 15, ValorBase: 22},
	}))

	hash, err := bcrypt.GenerateFromPassword([]byte(testSenha), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.Usuario{Nome: "Lojista Teste", Email: testLojistaEmail, SenhaHash: string(hash), Tipo: model.RoleLojista}).Error)
	require.NoError(t, db.Create(&model.Usuario{Nome: "Cliente Teste", Email: testClienteEmail, SenhaHash: string(hash), Tipo: model.RoleCliente}).Error)

	m := metrics.New()
	store := sessions.NewCookieStore([]byte("secret-key-for-test"))
	rnd := func() float64 { return 0 }

	bairro := frete.NewEstrategiaBairro(repo, frete.MargemPadrao)
	vitrine := frete.NewEstrategiaVitrine(rnd)
	funcao := frete.NewEstrategiaFuncao(frete.NewConfigProvider(repo, log), "")
	gateway := pagamento.ChaveEstatica("11948453681")

	svc := checkout.New(checkout.Config{
		Produtos: repo,
		Pedidos:  repo,
		Cotador:  frete.NewCalculadora(bairro, vitrine),
		Gateway:  gateway,
		Metrics:  m,
		WhatsApp: "5511981878093",
		Log:      log,
	})

	router := NewRouter(Deps{
		Frete:    &FreteHandler{Vitrine: vitrine, Funcao: funcao, Bairro: bairro, Metrics: m, Log: log},
		Catalogo: &CatalogoHandler{Catalogo: repo, Log: log},
		Vendas:   &VendasHandler{Pedidos: repo, Metrics: m, Log: log},
		Cart:     &CartHandler{Store: store, Fechamento: svc, Log: log},
		Auth:     &AuthHandler{Store: store, Usuarios: repo, Log: log},
		Lojista: &LojistaHandler{
			Pedidos:     repo,
			Planilha:    planilha.Nova(),
			Gateway:     gateway,
			FreteConfig: repo,
			Log:         log,
		},
		Health:  &HealthHandler{Ping: func(ctx context.Context) error { return database.Ping(ctx, db) }, Log: log},
		Metrics: m,
		Log:     log,
	})

	return &testEnv{router: router, repo: repo, store: store, metrics: m}
}

// do executa a requisição; body vazio não envia Content-Type.
func (e *testEnv) do(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		if c != nil {
			req.AddCookie(c)
		}
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionName {
			return c
		}
	}
	return nil
}

// decodeSessionCookie decodifica o cookie de sessão para inspecionar o conteúdo.
func decodeSessionCookie(t *testing.T, cookie *http.Cookie, store *sessions.CookieStore) map[interface{}]interface{} {
	t.Helper()
	require.NotNil(t, cookie, "cookie de sessão não encontrado")
	session := sessions.NewSession(store, SessionName)
	err := securecookie.DecodeMulti(session.Name(), cookie.Value, &session.Values, store.Codecs...)
	require.NoError(t, err)
	return session.Values
}

// encodeSessionCookie monta um cookie com valores arbitrários de sessão.
func encodeSessionCookie(t *testing.T, store *sessions.CookieStore, values map[interface{}]interface{}) *http.Cookie {
	t.Helper()
	encoded, err := securecookie.EncodeMulti(SessionName, values, store.Codecs...)
	require.NoError(t, err)
	return &http.Cookie{Name: SessionName, Value: encoded}
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
