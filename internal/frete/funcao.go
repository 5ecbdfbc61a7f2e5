package frete

import (
	"context"
	"math"
	"strings"
)

// EnderecoLojaPadrao é a origem quando a requisição não informa uma.
const EnderecoLojaPadrao = "Rua Barao de Duprat, 535, Sao Paulo"

// velocidadeMedia em km/h usada para estimar a duração.
const velocidadeMedia = 30.0

// Config são os parâmetros do preset "funcao".
type Config struct {
	ValorPorKm   float64
	MargemMinima float64
}

// DefaultConfig vale quando não há configuração ativa ou a busca falha.
func DefaultConfig() Config {
	return Config{ValorPorKm: 2.5, MargemMinima: 10}
}

// ConfigGetter entrega a configuração vigente. Nunca falha: quem implementa
// decide o fallback.
type ConfigGetter interface {
	Config(ctx context.Context) Config
}

// StaticConfig é um ConfigGetter fixo.
type StaticConfig Config

func (s StaticConfig) Config(context.Context) Config { return Config(s) }

// EstrategiaFuncao é o frete por distância simulada com valor por km
// configurável.
type EstrategiaFuncao struct {
	config       ConfigGetter
	enderecoLoja string
}

func NewEstrategiaFuncao(config ConfigGetter, enderecoLoja string) *EstrategiaFuncao {
	if config == nil {
		config = StaticConfig(DefaultConfig())
	}
	if enderecoLoja == "" {
		enderecoLoja = EnderecoLojaPadrao
	}
	return &EstrategiaFuncao{config: config, enderecoLoja: enderecoLoja}
}

func (e *EstrategiaFuncao) Nome() string { return PresetFuncao }

func (e *EstrategiaFuncao) Cotar(ctx context.Context, s Solicitacao) (Cotacao, error) {
	if strings.TrimSpace(s.Destino) == "" {
		return Cotacao{}, ErrDestinoObrigatorio
	}
	origem := s.Origem
	if origem == "" {
		origem = e.enderecoLoja
	}

	cfg := e.config.Config(ctx)
	distancia := DistanciaFuncao(origem, s.Destino)
	return cotarFuncao(distancia, cfg), nil
}

func cotarFuncao(distanciaKm float64, cfg Config) Cotacao {
	duracao := arredondar(math.Max(10, distanciaKm*(60/velocidadeMedia)))
	valorPorKm, margem := cfg.ValorPorKm, cfg.MargemMinima
	return Cotacao{
		Estrategia:   PresetFuncao,
		DistanciaKm:  arredondar1(distanciaKm),
		DuracaoMin:   int(duracao),
		Preco:        arredondar2(distanciaKm*cfg.ValorPorKm + cfg.MargemMinima),
		ValorPorKm:   &valorPorKm,
		MargemMinima: &margem,
	}
}
