package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ericoliveiras/pode-pod/internal/frete"
	"github.com/ericoliveiras/pode-pod/internal/metrics"
)

// FreteHandler expõe os três presets de frete.
type FreteHandler struct {
	Vitrine frete.Estrategia
	Funcao  frete.Estrategia
	Bairro  frete.Estrategia
	Metrics *metrics.Metrics
	Log     *zap.Logger
}

// CotarVitrine atende GET /api/frete. Sem origem e destino a distância é sorteada.
func (h *FreteHandler) CotarVitrine(c *gin.Context) {
	cot, err := h.Vitrine.Cotar(c.Request.Context(), frete.Solicitacao{
		Origem:  c.Query("origem"),
		Destino: c.Query("destino"),
	})
	h.Metrics.RecordCotacao(frete.PresetVitrine, err)
	if err != nil {
		erroInterno(c, "Erro ao calcular frete", err)
		return
	}

	h.Log.Debug("frete calculado",
		zap.String("estrategia", cot.Estrategia),
		zap.Float64("distancia_km", cot.DistanciaKm),
		zap.Float64("preco", cot.Preco))
	c.JSON(http.StatusOK, cot)
}

// CotarFuncao atende GET /api/calcular-frete; destino é obrigatório.
func (h *FreteHandler) CotarFuncao(c *gin.Context) {
	cot, err := h.Funcao.Cotar(c.Request.Context(), frete.Solicitacao{
		Origem:  c.Query("origem"),
		Destino: c.Query("destino"),
	})
	h.Metrics.RecordCotacao(frete.PresetFuncao, err)
	if errors.Is(err, frete.ErrDestinoObrigatorio) {
		erroValidacao(c, "Parâmetro 'destino' é obrigatório")
		return
	}
	if err != nil {
		erroInterno(c, "Erro ao calcular frete", err)
		return
	}
	c.JSON(http.StatusOK, cot)
}

// CotarBairro atende GET /api/bairros/:nome/frete?subtotal=.
func (h *FreteHandler) CotarBairro(c *gin.Context) {
	subtotal := 0.0
	if s := c.Query("subtotal"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 {
			erroValidacao(c, "Parâmetro 'subtotal' inválido")
			return
		}
		subtotal = v
	}

	nome := c.Param("nome")
	cot, err := h.Bairro.Cotar(c.Request.Context(), frete.Solicitacao{Bairro: nome, Subtotal: subtotal})
	h.Metrics.RecordCotacao(frete.PresetBairro, err)
	if errors.Is(err, frete.ErrBairroNaoEncontrado) {
		c.JSON(http.StatusNotFound, gin.H{"erro": "Bairro não encontrado"})
		return
	}
	if err != nil {
		erroInterno(c, "Erro ao calcular frete", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bairro":      nome,
		"distanciaKm": cot.DistanciaKm,
		"duracaoMin":  cot.DuracaoMin,
		"preco":       cot.Preco,
	})
}
