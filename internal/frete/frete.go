// Package frete calcula o valor de entrega da loja.
//
// Existem três presets, cada um com sua fórmula:
// "bairro" (tabela de bairros + margem sobre o pedido), "vitrine"
// (distância simulada da API da loja) e "funcao" (distância simulada com
// valor por km configurável). A distância simulada é uma soma de códigos de
// caracteres, não uma distância real; deve ser trocada por geocodificação
// quando houver integração com um serviço de rotas.
package frete

import (
	"context"
	"errors"
)

// Nomes dos presets.
const (
	PresetBairro  = "bairro"
	PresetVitrine = "vitrine"
	PresetFuncao  = "funcao"
)

var (
	ErrDestinoObrigatorio  = errors.New("frete: destino obrigatório")
	ErrBairroNaoEncontrado = errors.New("frete: bairro não encontrado")
	ErrPresetDesconhecido  = errors.New("frete: preset desconhecido")
)

// Solicitacao reúne as entradas possíveis de uma cotação. Cada estratégia
// usa apenas os campos que lhe interessam.
type Solicitacao struct {
	Origem   string
	Destino  string
	Bairro   string
	Subtotal float64
}

// Cotacao é o resultado de um cálculo de frete. Não é persistida.
type Cotacao struct {
	Estrategia  string  `json:"-"`
	DistanciaKm float64 `json:"distanciaKm"`
	DuracaoMin  int     `json:"duracaoMin"`
	Preco       float64 `json:"preco"`

	// Preenchidos apenas pelo preset "funcao".
	ValorPorKm   *float64 `json:"valorPorKm,omitempty"`
	MargemMinima *float64 `json:"margemMinima,omitempty"`
}

// Estrategia é um preset de cálculo de frete.
type Estrategia interface {
	Nome() string
	Cotar(ctx context.Context, s Solicitacao) (Cotacao, error)
}
