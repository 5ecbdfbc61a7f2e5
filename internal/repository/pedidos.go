package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ericoliveiras/pode-pod/internal/model"
)

// CriarPedido grava o pedido; o ID gerado fica em p. Sem referência externa,
// uma é gerada.
func (r *Repository) CriarPedido(ctx context.Context, p *model.Pedido) error {
	if p.Status == "" {
		p.Status = model.StatusPendente
	}
	if p.ReferenciaExterna == "" {
		p.ReferenciaExterna = uuid.NewString()
	}
	return r.do(ctx, func(tx *gorm.DB) error {
		return tx.Create(p).Error
	})
}

// AtualizarPagamento registra o resultado do provedor de pagamento.
func (r *Repository) AtualizarPagamento(ctx context.Context, id uint, status model.StatusPedido, pagamentoID *int64) error {
	return r.do(ctx, func(tx *gorm.DB) error {
		return tx.Model(&model.Pedido{ID: id}).Updates(model.Pedido{Status: status, PagamentoMPID: pagamentoID}).Error
	})
}

// ListPedidos devolve as vendas da mais recente para a mais antiga.
func (r *Repository) ListPedidos(ctx context.Context) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.do(ctx, func(tx *gorm.DB) error {
		return tx.Order("created_at desc").Order("id desc").Find(&pedidos).Error
	})
	return pedidos, err
}

// BuscarPedido devolve ok=false quando o pedido não existe.
func (r *Repository) BuscarPedido(ctx context.Context, id uint) (model.Pedido, bool, error) {
	var p model.Pedido
	err := r.do(ctx, func(tx *gorm.DB) error {
		return tx.First(&p, id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Pedido{}, false, nil
	}
	if err != nil {
		return model.Pedido{}, false, err
	}
	return p, true, nil
}
