package model

import "time"

const (
	RoleCliente = "cliente"
	RoleLojista = "lojista"
)

// Usuario é uma conta com acesso à área do lojista.
type Usuario struct {
	ID        uint   `gorm:"primaryKey"`
	Nome      string `gorm:"not null"`
	Email     string `gorm:"unique;not null"`
	SenhaHash string `gorm:"not null"`
	Tipo      string `gorm:"default:'cliente';not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
