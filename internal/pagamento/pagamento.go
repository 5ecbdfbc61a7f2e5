// Package pagamento gera as cobranças PIX dos pedidos.
package pagamento

import (
	"context"
	"errors"

	"github.com/ericoliveiras/pode-pod/internal/model"
)

var ErrConsultaIndisponivel = errors.New("pagamento: consulta não suportada pelo gateway")

// Cobranca descreve o PIX a ser gerado para um pedido.
type Cobranca struct {
	Valor      float64
	Descricao  string
	Referencia string
	Email      string
	Nome       string
}

// Pix é o que o cliente precisa para pagar. Com a chave estática só Chave
// vem preenchida; com o Mercado Pago vêm o ID e o QR Code.
type Pix struct {
	PagamentoID  *int64 `json:"paymentId,omitempty"`
	Status       string `json:"status"`
	Chave        string `json:"chave,omitempty"`
	QRCode       string `json:"qrCode,omitempty"`
	QRCodeBase64 string `json:"qrCodeBase64,omitempty"`
}

type Gateway interface {
	CriarPix(ctx context.Context, c Cobranca) (Pix, error)
	Consultar(ctx context.Context, pagamentoID int64) (model.StatusPedido, error)
}

// StatusPedido traduz o status do Mercado Pago para o status do pedido.
func StatusPedido(status string) model.StatusPedido {
	switch status {
	case "approved":
		return model.StatusPago
	case "pending", "in_process", "authorized":
		return model.StatusPendente
	case "cancelled":
		return model.StatusCancelado
	}
	return model.StatusFalhou
}

// ChaveEstatica devolve sempre a mesma chave PIX. O pedido fica aguardando a
// confirmação manual do lojista.
type ChaveEstatica string

func (k ChaveEstatica) CriarPix(context.Context, Cobranca) (Pix, error) {
	return Pix{Status: string(model.StatusAguardandoConfirmacao), Chave: string(k)}, nil
}

func (ChaveEstatica) Consultar(context.Context, int64) (model.StatusPedido, error) {
	return "", ErrConsultaIndisponivel
}
