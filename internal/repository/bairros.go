package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ericoliveiras/pode-pod/internal/model"
)

// ListBairros devolve todos os bairros ordenados por nome.
func (r *Repository) ListBairros(ctx context.Context) ([]model.Bairro, error) {
	var bairros []model.Bairro
	err := r.do(ctx, func(tx *gorm.DB) error {
		return tx.Order("nome").Find(&bairros).Error
	})
	return bairros, err
}

// FiltrarBairros aplica o filtro de zona ("Todas" ou vazio = sem filtro) e a
// busca por trecho do nome, do mais próximo ao mais distante.
func (r *Repository) FiltrarBairros(ctx context.Context, zona, termo string) ([]model.Bairro, error) {
	var bairros []model.Bairro
	err := r.do(ctx, func(tx *gorm.DB) error {
		q := tx.Order("distancia_km")
		if zona != "" && zona != model.ZonaTodas {
			q = q.Where("zona = ?", zona)
		}
		if termo = strings.TrimSpace(termo); termo != "" {
			q = q.Where("LOWER(nome) LIKE ?", "%"+strings.ToLower(termo)+"%")
		}
		return q.Find(&bairros).Error
	})
	return bairros, err
}

// BuscarBairro procura o bairro pelo nome, sem diferenciar maiúsculas.
func (r *Repository) BuscarBairro(ctx context.Context, nome string) (model.Bairro, bool, error) {
	var b model.Bairro
	err := r.do(ctx, func(tx *gorm.DB) error {
		return tx.Where("LOWER(nome) = ?", strings.ToLower(nome)).First(&b).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Bairro{}, false, nil
	}
	if err != nil {
		return model.Bairro{}, false, err
	}
	return b, true, nil
}

// UpsertBairros insere ou atualiza cada bairro pelo nome.
func (r *Repository) UpsertBairros(ctx context.Context, bairros []model.Bairro) error {
	upsert := clause.OnConflict{
		Columns:   []clause.Column{{Name: "nome"}},
		DoUpdates: clause.AssignmentColumns([]string{"distancia_km", "zona", "tempo_entrega_min", "valor_base"}),
	}
	for i := range bairros {
		b := bairros[i]
		err := r.do(ctx, func(tx *gorm.DB) error {
			return tx.Clauses(upsert).Create(&b).Error
		})
		if err != nil {
			return err
		}
	}
	return nil
}
