package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	nomeServidor = "API PODE POD"
	versao       = "2.0.0"
)

var rotasDisponiveis = []string{
	"GET /api/frete?origem=enderecoA&destino=enderecoB",
	"GET /api/frete (gera distância aleatória)",
	"GET /api/calcular-frete?origem=enderecoA&destino=enderecoB",
	"GET /api/products",
	"POST /api/products",
	"GET /api/bairros?zona=Centro&busca=termo",
	"POST /api/bairros",
	"GET /api/bairros/:nome/frete?subtotal=100",
	"GET /api/zonas",
	"POST /api/sales",
	"GET /carrinho",
	"POST /checkout",
	"POST /lojista/login",
	"GET /health",
	"GET /metrics",
}

// HealthHandler informa o estado do servidor e do banco.
type HealthHandler struct {
	Ping    func(ctx context.Context) error
	Timeout time.Duration
	Log     *zap.Logger
}

func (h *HealthHandler) Health(c *gin.Context) {
	dbStatus := "unknown"
	if h.Ping != nil {
		ctx := c.Request.Context()
		if h.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, h.Timeout)
			defer cancel()
		}
		if err := h.Ping(ctx); err != nil {
			h.Log.Error("health check do banco falhou", zap.Error(err))
			dbStatus = "error"
		} else {
			dbStatus = "connected"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"servidor": nomeServidor,
		"versao":   versao,
		"database": dbStatus,
	})
}

func ShowHomePage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"servidor":          nomeServidor,
		"versao":            versao,
		"rotas_disponiveis": rotasDisponiveis,
	})
}

func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"erro":              "Rota não encontrada",
		"rotas_disponiveis": rotasDisponiveis,
	})
}
