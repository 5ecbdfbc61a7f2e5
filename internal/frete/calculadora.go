package frete

import (
	"context"
	"errors"
	"fmt"
)

// Calculadora escolhe o preset de cada cotação: o de bairro quando o nome
// resolve, senão o preset de distância simulada configurado.
type Calculadora struct {
	bairro   *EstrategiaBairro
	simulada Estrategia
}

func NewCalculadora(bairro *EstrategiaBairro, simulada Estrategia) *Calculadora {
	return &Calculadora{bairro: bairro, simulada: simulada}
}

func (c *Calculadora) Cotar(ctx context.Context, s Solicitacao) (Cotacao, error) {
	if c.bairro != nil && s.Bairro != "" {
		cot, err := c.bairro.Cotar(ctx, s)
		if err == nil || !errors.Is(err, ErrBairroNaoEncontrado) {
			return cot, err
		}
	}
	return c.simulada.Cotar(ctx, s)
}

// Simulada devolve o preset usado quando não há bairro.
func (c *Calculadora) Simulada() Estrategia {
	return c.simulada
}

// NovaEstrategiaSimulada monta um dos presets de distância simulada pelo nome.
func NovaEstrategiaSimulada(nome string, rnd RandFunc, config ConfigGetter, enderecoLoja string) (Estrategia, error) {
	switch nome {
	case PresetVitrine:
		return NewEstrategiaVitrine(rnd), nil
	case PresetFuncao:
		return NewEstrategiaFuncao(config, enderecoLoja), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrPresetDesconhecido, nome)
}
