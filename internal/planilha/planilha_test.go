package planilha

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNovaPlanilha(t *testing.T) {
	r := Nova().Resumo()

	assert.Len(t, r.Pods, 22)
	assert.Len(t, r.Cansmoke, 10)
	require.Len(t, r.Fretes, 4)
	assert.Equal(t, "1", r.Fretes[0].ID)

	assert.True(t, r.TotalPods.IsZero())
	assert.Zero(t, r.QtdPods)
	assert.True(t, r.TotalFretes.Equal(dec("75")))
	assert.True(t, r.TotalGeral.Equal(dec("75")))
}

func TestTotais(t *testing.T) {
	p := Nova()
	require.NoError(t, p.AtualizarQuantidade(SecaoPods, "ignite-v80", 3))
	require.NoError(t, p.AtualizarQuantidade(SecaoPods, "cabo-tipo-c", 1))
	require.NoError(t, p.AtualizarQuantidade(SecaoCansmoke, "isqueiro", 2))
	require.NoError(t, p.AtualizarPreco(SecaoCansmoke, "cuia", dec("12.50")))
	require.NoError(t, p.AtualizarQuantidade(SecaoCansmoke, "cuia", 1))

	r := p.Resumo()
	// 3 × 89.90 + 16.90
	assert.Equal(t, "286.6", r.TotalPods.String())
	assert.Equal(t, 4, r.QtdPods)
	// 2 × 8.90 + 12.50
	assert.Equal(t, "30.3", r.TotalCansmoke.String())
	assert.Equal(t, 3, r.QtdCansmoke)
	assert.Equal(t, "391.9", r.TotalGeral.String())
}

func TestFretes(t *testing.T) {
	p := Nova()

	id, err := p.AdicionarFrete(dec("22.35"))
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.NoError(t, p.AtualizarFrete("2", dec("10")))
	require.NoError(t, p.RemoverFrete("3"))

	r := p.Resumo()
	require.Len(t, r.Fretes, 4)
	// 15 + 10 + 15 + 22.35
	assert.Equal(t, "62.35", r.TotalFretes.String())

	assert.ErrorIs(t, p.RemoverFrete("3"), ErrFreteNaoEncontrado)
	assert.ErrorIs(t, p.AtualizarFrete("nao-existe", dec("1")), ErrFreteNaoEncontrado)
	_, err = p.AdicionarFrete(dec("-1"))
	assert.ErrorIs(t, err, ErrValorNegativo)
}

func TestErros(t *testing.T) {
	p := Nova()
	assert.ErrorIs(t, p.AtualizarQuantidade("outra", "ignite-v80", 1), ErrSecaoInvalida)
	assert.ErrorIs(t, p.AtualizarQuantidade(SecaoPods, "isqueiro", 1), ErrItemNaoEncontrado)
	assert.ErrorIs(t, p.AtualizarQuantidade(SecaoPods, "ignite-v80", -1), ErrQuantidadeNegativa)
	assert.ErrorIs(t, p.AtualizarPreco(SecaoPods, "ignite-v80", dec("-0.01")), ErrValorNegativo)
}

func TestResumoEhCopia(t *testing.T) {
	p := Nova()
	r := p.Resumo()
	r.Pods[0].Quantidade = 99

	assert.Zero(t, p.Resumo().QtdPods)
}
