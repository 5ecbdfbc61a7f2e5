package pagamento

import (
	"context"
	"fmt"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"

	"github.com/ericoliveiras/pode-pod/internal/model"
)

// MercadoPago gera PIX dinâmico pela API de pagamentos.
type MercadoPago struct {
	client payment.Client
	log    *zap.Logger
}

func NewMercadoPago(accessToken string, log *zap.Logger) (*MercadoPago, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercado pago: configuração inválida: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &MercadoPago{client: payment.NewClient(cfg), log: log}, nil
}

func (m *MercadoPago) CriarPix(ctx context.Context, c Cobranca) (Pix, error) {
	request := payment.Request{
		TransactionAmount: c.Valor,
		Description:       c.Descricao,
		PaymentMethodID:   "pix",
		ExternalReference: c.Referencia,
		Payer: &payment.PayerRequest{
			Email:     c.Email,
			FirstName: c.Nome,
		},
	}

	resource, err := m.client.Create(ctx, request)
	if err != nil {
		return Pix{}, fmt.Errorf("mercado pago: falha ao criar PIX: %w", err)
	}
	if resource.Status != "pending" {
		return Pix{}, fmt.Errorf("mercado pago: status inesperado %q (%s)", resource.Status, resource.StatusDetail)
	}

	id := int64(resource.ID)
	m.log.Info("PIX gerado",
		zap.Int64("payment_id", id),
		zap.String("referencia", c.Referencia))

	return Pix{
		PagamentoID:  &id,
		Status:       resource.Status,
		QRCode:       resource.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64: resource.PointOfInteraction.TransactionData.QRCodeBase64,
	}, nil
}

func (m *MercadoPago) Consultar(ctx context.Context, pagamentoID int64) (model.StatusPedido, error) {
	resource, err := m.client.Get(ctx, int(pagamentoID))
	if err != nil {
		return "", fmt.Errorf("mercado pago: falha ao consultar pagamento %d: %w", pagamentoID, err)
	}
	return StatusPedido(resource.Status), nil
}
