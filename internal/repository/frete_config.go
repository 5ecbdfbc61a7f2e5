package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ericoliveiras/pode-pod/internal/model"
)

// FreteConfigAtiva lê a configuração de frete marcada como ativa.
func (r *Repository) FreteConfigAtiva(ctx context.Context) (model.FreteConfig, bool, error) {
	var cfg model.FreteConfig
	err := r.do(ctx, func(tx *gorm.DB) error {
		return tx.Where("ativo = ?", true).First(&cfg).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.FreteConfig{}, false, nil
	}
	if err != nil {
		return model.FreteConfig{}, false, err
	}
	return cfg, true, nil
}

// SalvarFreteConfig desativa as configurações anteriores e grava a nova como ativa.
func (r *Repository) SalvarFreteConfig(ctx context.Context, cfg *model.FreteConfig) error {
	return r.do(ctx, func(tx *gorm.DB) error {
		return tx.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&model.FreteConfig{}).Where("ativo = ?", true).Update("ativo", false).Error; err != nil {
				return err
			}
			cfg.ID = 0
			cfg.Ativo = true
			return tx.Create(cfg).Error
		})
	})
}
