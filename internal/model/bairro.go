package model

// Zonas de entrega atendidas em São Paulo.
const (
	ZonaTodas  = "Todas"
	ZonaCentro = "Centro"
	ZonaOeste  = "Oeste"
	ZonaSul    = "Sul"
	ZonaNorte  = "Norte"
	ZonaLeste  = "Leste"
)

// Zonas lista as opções de filtro na ordem exibida na vitrine.
var Zonas = []string{ZonaTodas, ZonaCentro, ZonaOeste, ZonaSul, ZonaNorte, ZonaLeste}

// ZonaValida informa se a zona pertence à enumeração fixa (sem "Todas").
func ZonaValida(zona string) bool {
	switch zona {
	case ZonaCentro, ZonaOeste, ZonaSul, ZonaNorte, ZonaLeste:
		return true
	}
	return false
}

// Bairro é o dado de referência usado no frete por bairro.
type Bairro struct {
	ID              uint    `gorm:"primaryKey" json:"-" yaml:"-"`
	Nome            string  `gorm:"uniqueIndex;not null;size:100" json:"nome" yaml:"nome" binding:"required"`
	DistanciaKm     float64 `gorm:"not null" json:"distanciaKm" yaml:"distanciaKm" binding:"gt=0"`
	Zona            string  `gorm:"size:20" json:"zona" yaml:"zona" binding:"zona"`
	TempoEntregaMin int     `json:"tempoEntregaMin" yaml:"tempoEntregaMin" binding:"gte=0"`
	ValorBase       float64 `gorm:"not null" json:"valorBase" yaml:"valorBase" binding:"gte=0"`
}
