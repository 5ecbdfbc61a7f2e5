package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ericoliveiras/pode-pod/internal/metrics"
	"github.com/ericoliveiras/pode-pod/internal/model"
)

type VendasHandler struct {
	Pedidos PedidoStore
	Metrics *metrics.Metrics
	Log     *zap.Logger
}

type vendaRequest struct {
	Customer      model.ClientePedido `json:"customer"`
	Items         []model.ItemPedido  `json:"items" binding:"required,min=1"`
	Total         float64             `json:"total" binding:"gte=0"`
	Frete         float64             `json:"frete" binding:"gte=0"`
	PaymentMethod string              `json:"paymentMethod"`
	Status        string              `json:"status" binding:"omitempty,oneof=pending pending_confirmation approved rejected cancelled"`
}

// RegistrarVenda atende POST /api/sales. Status vazio vira "pending".
func (h *VendasHandler) RegistrarVenda(c *gin.Context) {
	var req vendaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		erroValidacao(c, "Pedido inválido: "+err.Error())
		return
	}

	pedido := model.Pedido{
		Cliente:         req.Customer,
		Itens:           req.Items,
		Total:           req.Total,
		Frete:           req.Frete,
		MetodoPagamento: req.PaymentMethod,
		Status:          model.StatusPedido(req.Status),
	}
	if pedido.MetodoPagamento == "" {
		pedido.MetodoPagamento = model.PagamentoPix
	}

	if err := h.Pedidos.CriarPedido(c.Request.Context(), &pedido); err != nil {
		h.Log.Error("erro ao salvar pedido", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar pedido"})
		return
	}
	h.Metrics.RecordPedido(pedido.MetodoPagamento, pedido.Total)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
