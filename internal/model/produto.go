package model

import "time"

// Categorias aceitas no catálogo.
const (
	CategoriaPod       = "pod"
	CategoriaTabacaria = "tabacaria"
)

// Produto representa um item vendido na loja (pods e itens de tabacaria).
type Produto struct {
	ID        string    `gorm:"primaryKey;size:100" json:"id" yaml:"id" binding:"required"`
	Nome      string    `gorm:"not null;size:150" json:"name" yaml:"name" binding:"required"`
	Descricao string    `gorm:"type:text" json:"description" yaml:"description"`
	Preco     float64   `gorm:"not null" json:"price" yaml:"price" binding:"gte=0"`
	Imagem    string    `json:"image" yaml:"image"`
	Categoria string    `gorm:"size:20" json:"category" yaml:"category" binding:"omitempty,oneof=pod tabacaria"`
	Marca     string    `gorm:"size:100" json:"brand,omitempty" yaml:"brand"`
	Puffs     string    `gorm:"size:20" json:"puffs,omitempty" yaml:"puffs"`
	EmEstoque bool      `gorm:"default:true" json:"inStock" yaml:"inStock"`
	Sabores   []string  `gorm:"serializer:json" json:"flavors,omitempty" yaml:"flavors"`
	UpdatedAt time.Time `json:"-" yaml:"-"`
}

// TemSabor informa se o sabor pertence ao produto. Produtos sem lista de
// sabores aceitam apenas o sabor vazio.
func (p Produto) TemSabor(sabor string) bool {
	if sabor == "" {
		return true
	}
	for _, s := range p.Sabores {
		if s == sabor {
			return true
		}
	}
	return false
}
