package model

import "time"

// StatusPedido define os possíveis status de um pedido
type StatusPedido string

const (
	StatusPendente              StatusPedido = "pending"
	StatusAguardandoConfirmacao StatusPedido = "pending_confirmation"
	StatusPago                  StatusPedido = "approved"
	StatusFalhou                StatusPedido = "rejected"
	StatusCancelado             StatusPedido = "cancelled"
)

// Métodos de pagamento aceitos.
const (
	PagamentoPix = "pix"
)

// ClientePedido são os dados de entrega informados no checkout.
type ClientePedido struct {
	Nome     string `json:"name" binding:"required"`
	Telefone string `json:"phone" binding:"required"`
	Endereco string `json:"endereco" binding:"required"`
	Bairro   string `json:"bairro"`
}

// ItemPedido é uma linha do pedido, com o preço do momento da compra.
type ItemPedido struct {
	ProdutoID  string  `json:"id"`
	Nome       string  `json:"name"`
	Preco      float64 `json:"price"`
	Quantidade int     `json:"quantity"`
	Sabor      string  `json:"selectedFlavor,omitempty"`
}

// Subtotal devolve preço × quantidade do item.
func (i ItemPedido) Subtotal() float64 {
	return i.Preco * float64(i.Quantidade)
}

// Pedido representa uma venda registrada pela loja.
type Pedido struct {
	ID                uint          `gorm:"primaryKey" json:"id"`
	Cliente           ClientePedido `gorm:"serializer:json;not null" json:"customer"`
	Itens             []ItemPedido  `gorm:"serializer:json;not null" json:"items"`
	Total             float64       `gorm:"not null" json:"total"`
	Frete             float64       `gorm:"not null" json:"frete"`
	MetodoPagamento   string        `gorm:"not null;size:30" json:"paymentMethod"`
	Status            StatusPedido  `gorm:"type:varchar(30);not null;default:'pending'" json:"status"`
	ReferenciaExterna string        `gorm:"uniqueIndex;size:80" json:"externalReference,omitempty"`
	PagamentoMPID     *int64        `json:"paymentId,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
}
