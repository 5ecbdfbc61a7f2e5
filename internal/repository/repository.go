// Package repository concentra o acesso ao banco. Toda chamada passa pela
// política de retry do pacote database.
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ericoliveiras/pode-pod/internal/database"
)

type Repository struct {
	db    *gorm.DB
	retry database.RetryPolicy
}

func New(db *gorm.DB, retry database.RetryPolicy) *Repository {
	return &Repository{db: db, retry: retry}
}

// DB expõe o pool para o health check e para o seed do lojista.
func (r *Repository) DB() *gorm.DB {
	return r.db
}

func (r *Repository) do(ctx context.Context, op func(tx *gorm.DB) error) error {
	return database.Retry(ctx, r.retry, func() error {
		return op(r.db.WithContext(ctx))
	})
}
