package model

// FreteConfig guarda os parâmetros do frete por distância simulada.
// Apenas a linha com Ativo = true é considerada.
type FreteConfig struct {
	ID           uint    `gorm:"primaryKey" json:"-"`
	ValorPorKm   float64 `gorm:"column:valor_por_km;not null" json:"valorPorKm"`
	MargemMinima float64 `gorm:"column:margem_minima;not null" json:"margemMinima"`
	Ativo        bool    `gorm:"default:true" json:"ativo"`
}

func (FreteConfig) TableName() string {
	return "frete_config"
}
