package frete

import (
	"context"
	"math"

	"github.com/ericoliveiras/pode-pod/internal/model"
)

// Margem é a parte do frete por bairro que cobre a operação da loja.
type Margem struct {
	Fixa       float64 // valor garantido por entrega
	Percentual float64 // aplicado sobre o valor dos produtos
	Teto       float64 // limite do percentual
}

// MargemPadrao: 15 fixos + 3% dos produtos, com teto de 10.
var MargemPadrao = Margem{Fixa: 15, Percentual: 0.03, Teto: 10}

// BairroFinder localiza um bairro pelo nome. ok=false quando não existe.
type BairroFinder interface {
	BuscarBairro(ctx context.Context, nome string) (b model.Bairro, ok bool, err error)
}

// CalcularValorEntrega aplica o modelo híbrido: valor base do bairro + margem
// fixa + percentual do subtotal limitado ao teto. Distância e tempo vêm do
// cadastro do bairro.
func CalcularValorEntrega(b model.Bairro, subtotal float64, m Margem) Cotacao {
	percentual := math.Min(subtotal*m.Percentual, m.Teto)
	return Cotacao{
		Estrategia:  PresetBairro,
		DistanciaKm: b.DistanciaKm,
		DuracaoMin:  b.TempoEntregaMin,
		Preco:       fixar2(b.ValorBase + m.Fixa + percentual),
	}
}

// EstrategiaBairro cota pelo cadastro de bairros.
type EstrategiaBairro struct {
	bairros BairroFinder
	margem  Margem
}

func NewEstrategiaBairro(bairros BairroFinder, m Margem) *EstrategiaBairro {
	return &EstrategiaBairro{bairros: bairros, margem: m}
}

func (e *EstrategiaBairro) Nome() string { return PresetBairro }

// Cotar devolve ErrBairroNaoEncontrado quando o nome não resolve.
func (e *EstrategiaBairro) Cotar(ctx context.Context, s Solicitacao) (Cotacao, error) {
	if s.Bairro == "" {
		return Cotacao{}, ErrBairroNaoEncontrado
	}
	b, ok, err := e.bairros.BuscarBairro(ctx, s.Bairro)
	if err != nil {
		return Cotacao{}, err
	}
	if !ok {
		return Cotacao{}, ErrBairroNaoEncontrado
	}
	return CalcularValorEntrega(b, s.Subtotal, e.margem), nil
}
