package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ericoliveiras/pode-pod/internal/planilha"
)

type itemPlanilhaView struct {
	ID         string  `json:"id"`
	Nome       string  `json:"name"`
	Preco      float64 `json:"price"`
	Quantidade int     `json:"quantity"`
	Total      float64 `json:"total"`
}

type fretePlanilhaView struct {
	ID    string  `json:"id"`
	Valor float64 `json:"value"`
}

func itensView(itens []planilha.Item) []itemPlanilhaView {
	out := make([]itemPlanilhaView, len(itens))
	for i, it := range itens {
		out[i] = itemPlanilhaView{
			ID:         it.ID,
			Nome:       it.Nome,
			Preco:      it.Preco.InexactFloat64(),
			Quantidade: it.Quantidade,
			Total:      it.Total().InexactFloat64(),
		}
	}
	return out
}

func (h *LojistaHandler) responderPlanilha(c *gin.Context) {
	r := h.Planilha.Resumo()
	fretes := make([]fretePlanilhaView, len(r.Fretes))
	for i, f := range r.Fretes {
		fretes[i] = fretePlanilhaView{ID: f.ID, Valor: f.Valor.InexactFloat64()}
	}
	c.JSON(http.StatusOK, gin.H{
		"pods":          itensView(r.Pods),
		"totalPods":     r.TotalPods.InexactFloat64(),
		"qtdPods":       r.QtdPods,
		"cansmoke":      itensView(r.Cansmoke),
		"totalCansmoke": r.TotalCansmoke.InexactFloat64(),
		"qtdCansmoke":   r.QtdCansmoke,
		"fretes":        fretes,
		"totalFretes":   r.TotalFretes.InexactFloat64(),
		"totalGeral":    r.TotalGeral.InexactFloat64(),
	})
}

func (h *LojistaHandler) ShowPlanilha(c *gin.Context) {
	h.responderPlanilha(c)
}

type itemPlanilhaRequest struct {
	Quantidade *int             `json:"quantity"`
	Preco      *decimal.Decimal `json:"price"`
}

// AtualizarItemPlanilha altera quantidade e/ou preço de um item de pods ou cansmoke.
func (h *LojistaHandler) AtualizarItemPlanilha(c *gin.Context) {
	var req itemPlanilhaRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.Quantidade == nil && req.Preco == nil) {
		erroValidacao(c, "Informe quantity e/ou price.")
		return
	}

	secao := planilha.Secao(c.Param("secao"))
	id := c.Param("id")
	if req.Quantidade != nil {
		if err := h.Planilha.AtualizarQuantidade(secao, id, *req.Quantidade); err != nil {
			h.erroPlanilha(c, err)
			return
		}
	}
	if req.Preco != nil {
		if err := h.Planilha.AtualizarPreco(secao, id, *req.Preco); err != nil {
			h.erroPlanilha(c, err)
			return
		}
	}
	h.responderPlanilha(c)
}

type fretePlanilhaRequest struct {
	Valor decimal.Decimal `json:"value"`
}

func (h *LojistaHandler) AdicionarFretePlanilha(c *gin.Context) {
	var req fretePlanilhaRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			erroValidacao(c, "Valor inválido.")
			return
		}
	}
	if _, err := h.Planilha.AdicionarFrete(req.Valor); err != nil {
		h.erroPlanilha(c, err)
		return
	}
	h.responderPlanilha(c)
}

func (h *LojistaHandler) AtualizarFretePlanilha(c *gin.Context) {
	var req fretePlanilhaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		erroValidacao(c, "Valor inválido.")
		return
	}
	if err := h.Planilha.AtualizarFrete(c.Param("id"), req.Valor); err != nil {
		h.erroPlanilha(c, err)
		return
	}
	h.responderPlanilha(c)
}

func (h *LojistaHandler) RemoverFretePlanilha(c *gin.Context) {
	if err := h.Planilha.RemoverFrete(c.Param("id")); err != nil {
		h.erroPlanilha(c, err)
		return
	}
	h.responderPlanilha(c)
}

func (h *LojistaHandler) erroPlanilha(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planilha.ErrItemNaoEncontrado), errors.Is(err, planilha.ErrFreteNaoEncontrado),
		errors.Is(err, planilha.ErrSecaoInvalida):
		c.JSON(http.StatusNotFound, gin.H{"erro": err.Error()})
	default:
		erroValidacao(c, err.Error())
	}
}
