// Package planilha mantém a planilha de vendas do lojista: a lista de pods,
// a lista de tabacaria (CANSMOKE) e os fretes avulsos do mês.
package planilha

import (
	"errors"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Secao string

const (
	SecaoPods     Secao = "pods"
	SecaoCansmoke Secao = "cansmoke"
)

var (
	ErrSecaoInvalida      = errors.New("planilha: seção inválida")
	ErrItemNaoEncontrado  = errors.New("planilha: item não encontrado")
	ErrFreteNaoEncontrado = errors.New("planilha: frete não encontrado")
	ErrQuantidadeNegativa = errors.New("planilha: quantidade negativa")
	ErrValorNegativo      = errors.New("planilha: valor negativo")
)

type Item struct {
	ID         string
	Nome       string
	Preco      decimal.Decimal
	Quantidade int
}

func (i Item) Total() decimal.Decimal {
	return i.Preco.Mul(decimal.NewFromInt(int64(i.Quantidade)))
}

type Frete struct {
	ID    string
	Valor decimal.Decimal
}

// Planilha é segura para uso concorrente.
type Planilha struct {
	mu       sync.Mutex
	pods     []Item
	cansmoke []Item
	fretes   []Frete
}

// Nova devolve a planilha com as listas de preço padrão, quantidades zeradas
// e os fretes iniciais do mês.
func Nova() *Planilha {
	p := &Planilha{
		pods:     itensPadrao(podsPadrao),
		cansmoke: itensPadrao(cansmokePadrao),
	}
	for i, v := range []int64{15, 40, 5, 15} {
		p.fretes = append(p.fretes, Frete{ID: strconv.Itoa(i + 1), Valor: decimal.NewFromInt(v)})
	}
	return p
}

func (p *Planilha) secao(s Secao) ([]Item, error) {
	switch s {
	case SecaoPods:
		return p.pods, nil
	case SecaoCansmoke:
		return p.cansmoke, nil
	}
	return nil, ErrSecaoInvalida
}

func (p *Planilha) item(s Secao, id string) (*Item, error) {
	itens, err := p.secao(s)
	if err != nil {
		return nil, err
	}
	for i := range itens {
		if itens[i].ID == id {
			return &itens[i], nil
		}
	}
	return nil, ErrItemNaoEncontrado
}

func (p *Planilha) AtualizarQuantidade(s Secao, id string, qtd int) error {
	if qtd < 0 {
		return ErrQuantidadeNegativa
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	it, err := p.item(s, id)
	if err != nil {
		return err
	}
	it.Quantidade = qtd
	return nil
}

func (p *Planilha) AtualizarPreco(s Secao, id string, preco decimal.Decimal) error {
	if preco.IsNegative() {
		return ErrValorNegativo
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	it, err := p.item(s, id)
	if err != nil {
		return err
	}
	it.Preco = preco
	return nil
}

// AdicionarFrete inclui uma linha de frete e devolve o ID gerado.
func (p *Planilha) AdicionarFrete(valor decimal.Decimal) (string, error) {
	if valor.IsNegative() {
		return "", ErrValorNegativo
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	id := uuid.NewString()
	p.fretes = append(p.fretes, Frete{ID: id, Valor: valor})
	return id, nil
}

func (p *Planilha) AtualizarFrete(id string, valor decimal.Decimal) error {
	if valor.IsNegative() {
		return ErrValorNegativo
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.fretes {
		if p.fretes[i].ID == id {
			p.fretes[i].Valor = valor
			return nil
		}
	}
	return ErrFreteNaoEncontrado
}

func (p *Planilha) RemoverFrete(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.fretes {
		if p.fretes[i].ID == id {
			p.fretes = append(p.fretes[:i], p.fretes[i+1:]...)
			return nil
		}
	}
	return ErrFreteNaoEncontrado
}

// Resumo é a foto da planilha com os totais calculados.
type Resumo struct {
	Pods     []Item
	Cansmoke []Item
	Fretes   []Frete

	TotalPods     decimal.Decimal
	QtdPods       int
	TotalCansmoke decimal.Decimal
	QtdCansmoke   int
	TotalFretes   decimal.Decimal
	TotalGeral    decimal.Decimal
}

func (p *Planilha) Resumo() Resumo {
	p.mu.Lock()
	defer p.mu.Unlock()

	r := Resumo{
		Pods:     append([]Item(nil), p.pods...),
		Cansmoke: append([]Item(nil), p.cansmoke...),
		Fretes:   append([]Frete(nil), p.fretes...),
	}
	r.TotalPods, r.QtdPods = somar(r.Pods)
	r.TotalCansmoke, r.QtdCansmoke = somar(r.Cansmoke)
	r.TotalFretes = decimal.Zero
	for _, f := range r.Fretes {
		r.TotalFretes = r.TotalFretes.Add(f.Valor)
	}
	r.TotalGeral = r.TotalPods.Add(r.TotalCansmoke).Add(r.TotalFretes)
	return r
}

func somar(itens []Item) (decimal.Decimal, int) {
	total := decimal.Zero
	qtd := 0
	for _, it := range itens {
		total = total.Add(it.Total())
		qtd += it.Quantidade
	}
	return total, qtd
}
