package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ericoliveiras/pode-pod/internal/model"
)

// ListProdutos devolve o catálogo ordenado por nome.
func (r *Repository) ListProdutos(ctx context.Context) ([]model.Produto, error) {
	var produtos []model.Produto
	err := r.do(ctx, func(tx *gorm.DB) error {
		return tx.Order("nome").Find(&produtos).Error
	})
	return produtos, err
}

// BuscarProdutos carrega os produtos pelos IDs, indexados por ID.
func (r *Repository) BuscarProdutos(ctx context.Context, ids []string) (map[string]model.Produto, error) {
	var produtos []model.Produto
	err := r.do(ctx, func(tx *gorm.DB) error {
		return tx.Where("id IN ?", ids).Find(&produtos).Error
	})
	if err != nil {
		return nil, err
	}
	out := make(map[string]model.Produto, len(produtos))
	for _, p := range produtos {
		out[p.ID] = p
	}
	return out, nil
}

// UpsertProdutos insere ou atualiza cada produto pelo ID, uma linha por vez.
func (r *Repository) UpsertProdutos(ctx context.Context, produtos []model.Produto) error {
	upsert := clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"nome", "descricao", "preco", "imagem", "categoria", "marca", "puffs", "em_estoque", "sabores", "updated_at",
		}),
	}
	for i := range produtos {
		p := produtos[i]
		err := r.do(ctx, func(tx *gorm.DB) error {
			return tx.Clauses(upsert).Create(&p).Error
		})
		if err != nil {
			return err
		}
	}
	return nil
}
