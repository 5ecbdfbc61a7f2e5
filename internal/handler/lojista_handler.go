package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ericoliveiras/pode-pod/internal/model"
	"github.com/ericoliveiras/pode-pod/internal/pagamento"
	"github.com/ericoliveiras/pode-pod/internal/planilha"
)

// LojistaHandler atende a área administrativa: vendas, planilha e configuração do frete.
type LojistaHandler struct {
	Pedidos     PedidoStore
	Planilha    *planilha.Planilha
	Gateway     pagamento.Gateway
	FreteConfig FreteConfigStore
	Log         *zap.Logger
}

// ShowVendas lista as vendas da mais recente para a mais antiga com o faturamento.
func (h *LojistaHandler) ShowVendas(c *gin.Context) {
	vendas, err := h.Pedidos.ListPedidos(c.Request.Context())
	if err != nil {
		h.Log.Error("erro ao buscar vendas para o lojista", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar histórico de vendas."})
		return
	}

	faturamento := decimal.Zero
	for _, v := range vendas {
		if v.Status == model.StatusCancelado || v.Status == model.StatusFalhou {
			continue
		}
		faturamento = faturamento.Add(decimal.NewFromFloat(v.Total))
	}

	c.JSON(http.StatusOK, gin.H{
		"vendas":      vendas,
		"quantidade":  len(vendas),
		"faturamento": faturamento.Round(2).InexactFloat64(),
	})
}

func (h *LojistaHandler) pedidoDaRota(c *gin.Context) (model.Pedido, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		erroValidacao(c, "ID inválido.")
		return model.Pedido{}, false
	}
	pedido, ok, err := h.Pedidos.BuscarPedido(c.Request.Context(), uint(id))
	if err != nil {
		h.Log.Error("erro ao buscar pedido", zap.Uint64("pedido", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar pedido."})
		return model.Pedido{}, false
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pedido não encontrado."})
		return model.Pedido{}, false
	}
	return pedido, true
}

type statusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending pending_confirmation approved rejected cancelled"`
}

// AtualizarStatus permite ao lojista confirmar (ou cancelar) um PIX manualmente.
func (h *LojistaHandler) AtualizarStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		erroValidacao(c, "Status inválido.")
		return
	}
	pedido, ok := h.pedidoDaRota(c)
	if !ok {
		return
	}

	status := model.StatusPedido(req.Status)
	if err := h.Pedidos.AtualizarPagamento(c.Request.Context(), pedido.ID, status, pedido.PagamentoMPID); err != nil {
		h.Log.Error("erro ao atualizar status do pedido", zap.Uint("pedido", pedido.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar o pedido."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
}

// SincronizarPagamento consulta o gateway e grava o status atual do pagamento.
func (h *LojistaHandler) SincronizarPagamento(c *gin.Context) {
	pedido, ok := h.pedidoDaRota(c)
	if !ok {
		return
	}
	if pedido.PagamentoMPID == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Pedido sem pagamento no provedor."})
		return
	}

	status, err := h.Gateway.Consultar(c.Request.Context(), *pedido.PagamentoMPID)
	if errors.Is(err, pagamento.ErrConsultaIndisponivel) {
		c.JSON(http.StatusConflict, gin.H{"error": "Consulta de pagamento indisponível."})
		return
	}
	if err != nil {
		h.Log.Error("erro ao consultar pagamento", zap.Int64("payment_id", *pedido.PagamentoMPID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erro ao consultar o provedor de pagamento."})
		return
	}

	if err := h.Pedidos.AtualizarPagamento(c.Request.Context(), pedido.ID, status, pedido.PagamentoMPID); err != nil {
		h.Log.Error("erro ao atualizar pedido", zap.Uint("pedido", pedido.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar o pedido."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
}

type freteConfigRequest struct {
	ValorPorKm   float64 `json:"valorPorKm" binding:"gt=0"`
	MargemMinima float64 `json:"margemMinima" binding:"gte=0"`
}

// SalvarFreteConfig grava a nova configuração ativa do preset "funcao".
func (h *LojistaHandler) SalvarFreteConfig(c *gin.Context) {
	var req freteConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		erroValidacao(c, "Configuração de frete inválida.")
		return
	}
	cfg := model.FreteConfig{ValorPorKm: req.ValorPorKm, MargemMinima: req.MargemMinima}
	if err := h.FreteConfig.SalvarFreteConfig(c.Request.Context(), &cfg); err != nil {
		h.Log.Error("erro ao salvar configuração de frete", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar configuração de frete."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "config": cfg})
}
