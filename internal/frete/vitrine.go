package frete

import (
	"context"
	"math"
	"math/rand"
)

// RandFunc devolve um valor uniforme em [0, 1). rand.Float64 é o padrão.
type RandFunc func() float64

// EstrategiaVitrine é o frete da API da loja: distância simulada pelos
// endereços ou, sem um deles, sorteada entre 1 e 21 km.
type EstrategiaVitrine struct {
	rnd RandFunc
}

func NewEstrategiaVitrine(rnd RandFunc) *EstrategiaVitrine {
	if rnd == nil {
		rnd = rand.Float64
	}
	return &EstrategiaVitrine{rnd: rnd}
}

func (e *EstrategiaVitrine) Nome() string { return PresetVitrine }

func (e *EstrategiaVitrine) Cotar(_ context.Context, s Solicitacao) (Cotacao, error) {
	var distancia float64
	if s.Origem != "" && s.Destino != "" {
		distancia = DistanciaVitrine(s.Origem, s.Destino)
	} else {
		distancia = e.rnd()*20 + 1
	}
	return cotarVitrine(distancia), nil
}

// cotarVitrine: max(10, 5 + 2.5/km) com 15% de taxa; 2.5 min por km.
func cotarVitrine(distanciaKm float64) Cotacao {
	preco := math.Max(10, 5+distanciaKm*2.5) * 1.15
	return Cotacao{
		Estrategia:  PresetVitrine,
		DistanciaKm: arredondar1(distanciaKm),
		DuracaoMin:  int(arredondar(distanciaKm * 2.5)),
		Preco:       arredondar2(preco),
	}
}
