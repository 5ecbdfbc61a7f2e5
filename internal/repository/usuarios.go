package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ericoliveiras/pode-pod/internal/model"
)

// BuscarUsuarioPorEmail devolve ok=false quando o e-mail não está cadastrado.
func (r *Repository) BuscarUsuarioPorEmail(ctx context.Context, email string) (model.Usuario, bool, error) {
	return r.buscarUsuario(ctx, "email = ?", email)
}

func (r *Repository) BuscarUsuario(ctx context.Context, id uint) (model.Usuario, bool, error) {
	return r.buscarUsuario(ctx, "id = ?", id)
}

func (r *Repository) buscarUsuario(ctx context.Context, query string, arg interface{}) (model.Usuario, bool, error) {
	var u model.Usuario
	err := r.do(ctx, func(tx *gorm.DB) error {
		return tx.Where(query, arg).First(&u).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Usuario{}, false, nil
	}
	if err != nil {
		return model.Usuario{}, false, err
	}
	return u, true, nil
}
