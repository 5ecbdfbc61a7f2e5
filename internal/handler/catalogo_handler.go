package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ericoliveiras/pode-pod/internal/model"
)

// CatalogoHandler atende produtos, bairros e zonas.
type CatalogoHandler struct {
	Catalogo CatalogoStore
	Log      *zap.Logger
}

func (h *CatalogoHandler) ListProdutos(c *gin.Context) {
	produtos, err := h.Catalogo.ListProdutos(c.Request.Context())
	if err != nil {
		h.Log.Error("erro ao buscar produtos", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar produtos"})
		return
	}
	c.JSON(http.StatusOK, produtos)
}

// SalvarProdutos aceita um produto ou uma lista; cada um é gravado por ID.
func (h *CatalogoHandler) SalvarProdutos(c *gin.Context) {
	produtos, err := bindUmOuVarios[model.Produto](c)
	if err != nil {
		erroValidacao(c, "Produto inválido: "+err.Error())
		return
	}
	if err := h.Catalogo.UpsertProdutos(c.Request.Context(), produtos); err != nil {
		h.Log.Error("erro ao salvar produtos", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar produtos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListBairros lista todos os bairros por nome ou, com ?zona= ou ?busca=,
// filtra e ordena pela distância.
func (h *CatalogoHandler) ListBairros(c *gin.Context) {
	zona, busca := c.Query("zona"), c.Query("busca")

	var (
		bairros []model.Bairro
		err     error
	)
	if zona == "" && busca == "" {
		bairros, err = h.Catalogo.ListBairros(c.Request.Context())
	} else {
		if zona != "" && zona != model.ZonaTodas && !model.ZonaValida(zona) {
			erroValidacao(c, "Zona inválida")
			return
		}
		bairros, err = h.Catalogo.FiltrarBairros(c.Request.Context(), zona, busca)
	}
	if err != nil {
		h.Log.Error("erro ao buscar bairros", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar bairros"})
		return
	}
	c.JSON(http.StatusOK, bairros)
}

// SalvarBairros aceita um bairro ou uma lista; cada um é gravado pelo nome.
func (h *CatalogoHandler) SalvarBairros(c *gin.Context) {
	bairros, err := bindUmOuVarios[model.Bairro](c)
	if err != nil {
		erroValidacao(c, "Bairro inválido: "+err.Error())
		return
	}
	if err := h.Catalogo.UpsertBairros(c.Request.Context(), bairros); err != nil {
		h.Log.Error("erro ao salvar bairros", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar bairros"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *CatalogoHandler) ListZonas(c *gin.Context) {
	c.JSON(http.StatusOK, model.Zonas)
}
