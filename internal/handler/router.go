package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ericoliveiras/pode-pod/internal/logger"
	"github.com/ericoliveiras/pode-pod/internal/metrics"
	"github.com/ericoliveiras/pode-pod/internal/model"
)

// Deps são os handlers já montados pelo bootstrap.
type Deps struct {
	Frete    *FreteHandler
	Catalogo *CatalogoHandler
	Vendas   *VendasHandler
	Cart     *CartHandler
	Auth     *AuthHandler
	Lojista  *LojistaHandler
	Health   *HealthHandler
	Metrics  *metrics.Metrics
	Log      *zap.Logger
}

func NewRouter(d Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), logger.Requests(d.Log), CORS())
	if d.Metrics != nil {
		router.Use(d.Metrics.Middleware())
		router.GET("/metrics", d.Metrics.Endpoint())
	}

	router.GET("/", ShowHomePage)
	router.GET("/health", d.Health.Health)
	router.NoRoute(NotFound)

	api := router.Group("/api")
	{
		api.GET("/frete", d.Frete.CotarVitrine)
		api.GET("/calcular-frete", d.Frete.CotarFuncao)

		api.GET("/products", d.Catalogo.ListProdutos)
		api.POST("/products", d.Catalogo.SalvarProdutos)
		api.GET("/bairros", d.Catalogo.ListBairros)
		api.POST("/bairros", d.Catalogo.SalvarBairros)
		api.GET("/bairros/:nome/frete", d.Frete.CotarBairro)
		api.GET("/zonas", d.Catalogo.ListZonas)

		api.POST("/sales", d.Vendas.RegistrarVenda)
	}

	carrinho := router.Group("/carrinho")
	{
		carrinho.GET("", d.Cart.ShowCart)
		carrinho.POST("/adicionar/:id", d.Cart.AddToCart)
		carrinho.POST("/diminuir/:id", d.Cart.DecreaseQuantity)
		carrinho.POST("/remover/:id", d.Cart.RemoveFromCart)
		carrinho.POST("/limpar", d.Cart.ClearCart)
	}
	router.POST("/checkout", d.Cart.Checkout)

	router.POST("/lojista/login", d.Auth.Login)
	lojista := router.Group("/lojista", d.Auth.AuthRequired(), d.Auth.RoleRequired(model.RoleLojista))
	{
		lojista.POST("/logout", d.Auth.Logout)
		lojista.GET("/vendas", d.Lojista.ShowVendas)
		lojista.PUT("/vendas/:id/status", d.Lojista.AtualizarStatus)
		lojista.POST("/vendas/:id/sincronizar", d.Lojista.SincronizarPagamento)
		lojista.PUT("/frete-config", d.Lojista.SalvarFreteConfig)

		lojista.GET("/planilha", d.Lojista.ShowPlanilha)
		lojista.PUT("/planilha/itens/:secao/:id", d.Lojista.AtualizarItemPlanilha)
		lojista.POST("/planilha/fretes", d.Lojista.AdicionarFretePlanilha)
		lojista.PUT("/planilha/fretes/:id", d.Lojista.AtualizarFretePlanilha)
		lojista.DELETE("/planilha/fretes/:id", d.Lojista.RemoverFretePlanilha)
	}
	return router
}
