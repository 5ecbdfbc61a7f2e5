// Package checkout fecha o pedido: confere o carrinho com o catálogo, cota a
// entrega, aplica o frete grátis, grava o pedido e gera a cobrança PIX.
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ericoliveiras/pode-pod/internal/frete"
	"github.com/ericoliveiras/pode-pod/internal/metrics"
	"github.com/ericoliveiras/pode-pod/internal/model"
	"github.com/ericoliveiras/pode-pod/internal/pagamento"
)

// LimiteFreteGratis é o subtotal a partir do qual a entrega não é cobrada.
var LimiteFreteGratis = decimal.NewFromInt(300)

var (
	ErrCarrinhoVazio       = errors.New("checkout: carrinho vazio")
	ErrProdutoIndisponivel = errors.New("checkout: produto indisponível")
	ErrSaborInvalido       = errors.New("checkout: sabor inválido")
	ErrPagamento           = errors.New("checkout: falha ao gerar pagamento")
)

type Produtos interface {
	BuscarProdutos(ctx context.Context, ids []string) (map[string]model.Produto, error)
}

type Pedidos interface {
	CriarPedido(ctx context.Context, p *model.Pedido) error
	AtualizarPagamento(ctx context.Context, id uint, status model.StatusPedido, pagamentoID *int64) error
}

type Cotador interface {
	Cotar(ctx context.Context, s frete.Solicitacao) (frete.Cotacao, error)
}

// Linha é um item do carrinho ainda sem preço.
type Linha struct {
	ProdutoID  string
	Sabor      string
	Quantidade int
}

type Entrada struct {
	Cliente model.ClientePedido
	Email   string
	Linhas  []Linha
}

type Resultado struct {
	Pedido                model.Pedido
	Subtotal              float64
	Entrega               frete.Cotacao
	FreteGratis           bool
	FaltamParaFreteGratis float64
	Pix                   pagamento.Pix
	Mensagem              string
	WhatsAppURL           string
}

type Service struct {
	produtos Produtos
	pedidos  Pedidos
	cotador  Cotador
	gateway  pagamento.Gateway
	metrics  *metrics.Metrics
	whatsApp string
	origem   string
	log      *zap.Logger
}

type Config struct {
	Produtos Produtos
	Pedidos  Pedidos
	Cotador  Cotador
	Gateway  pagamento.Gateway
	Metrics  *metrics.Metrics
	WhatsApp string
	// EnderecoLoja é a origem das cotações por distância simulada.
	EnderecoLoja string
	Log          *zap.Logger
}

func New(cfg Config) *Service {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	origem := cfg.EnderecoLoja
	if origem == "" {
		origem = frete.EnderecoLojaPadrao
	}
	return &Service{
		produtos: cfg.Produtos,
		pedidos:  cfg.Pedidos,
		cotador:  cfg.Cotador,
		gateway:  cfg.Gateway,
		metrics:  cfg.Metrics,
		whatsApp: cfg.WhatsApp,
		origem:   origem,
		log:      log,
	}
}

// Itens confere as linhas do carrinho com o catálogo e devolve os itens com
// o preço atual, além do subtotal.
func (s *Service) Itens(ctx context.Context, linhas []Linha) ([]model.ItemPedido, decimal.Decimal, error) {
	if len(linhas) == 0 {
		return nil, decimal.Zero, ErrCarrinhoVazio
	}
	ids := make([]string, 0, len(linhas))
	for _, l := range linhas {
		ids = append(ids, l.ProdutoID)
	}
	produtos, err := s.produtos.BuscarProdutos(ctx, ids)
	if err != nil {
		return nil, decimal.Zero, err
	}

	itens := make([]model.ItemPedido, 0, len(linhas))
	subtotal := decimal.Zero
	for _, l := range linhas {
		p, ok := produtos[l.ProdutoID]
		if !ok || !p.EmEstoque {
			return nil, decimal.Zero, fmt.Errorf("%w: %s", ErrProdutoIndisponivel, l.ProdutoID)
		}
		if !p.TemSabor(l.Sabor) {
			return nil, decimal.Zero, fmt.Errorf("%w: %s (%s)", ErrSaborInvalido, p.Nome, l.Sabor)
		}
		itens = append(itens, model.ItemPedido{
			ProdutoID:  p.ID,
			Nome:       p.Nome,
			Preco:      p.Preco,
			Quantidade: l.Quantidade,
			Sabor:      l.Sabor,
		})
		subtotal = subtotal.Add(decimal.NewFromFloat(p.Preco).Mul(decimal.NewFromInt(int64(l.Quantidade))))
	}
	return itens, subtotal, nil
}

// FreteGratis informa se o subtotal isenta a entrega e, se não, quanto falta.
func FreteGratis(subtotal decimal.Decimal) (bool, decimal.Decimal) {
	if subtotal.GreaterThanOrEqual(LimiteFreteGratis) {
		return true, decimal.Zero
	}
	return false, LimiteFreteGratis.Sub(subtotal).Round(2)
}

func (s *Service) Fechar(ctx context.Context, in Entrada) (Resultado, error) {
	itens, subtotal, err := s.Itens(ctx, in.Linhas)
	if err != nil {
		return Resultado{}, err
	}

	sub, _ := subtotal.Float64()
	entrega, err := s.cotador.Cotar(ctx, frete.Solicitacao{
		Origem:   s.origem,
		Destino:  in.Cliente.Endereco,
		Bairro:   in.Cliente.Bairro,
		Subtotal: sub,
	})
	if err != nil {
		s.metrics.RecordCotacao("checkout", err)
		return Resultado{}, fmt.Errorf("checkout: cotação de frete: %w", err)
	}
	s.metrics.RecordCotacao(entrega.Estrategia, nil)

	gratis, faltam := FreteGratis(subtotal)
	valorFrete := decimal.NewFromFloat(entrega.Preco)
	if gratis {
		valorFrete = decimal.Zero
	}
	total := subtotal.Add(valorFrete).Round(2)

	pedido := model.Pedido{
		Cliente:           in.Cliente,
		Itens:             itens,
		Total:             total.InexactFloat64(),
		Frete:             valorFrete.InexactFloat64(),
		MetodoPagamento:   model.PagamentoPix,
		Status:            model.StatusPendente,
		ReferenciaExterna: uuid.NewString(),
	}
	if err := s.pedidos.CriarPedido(ctx, &pedido); err != nil {
		return Resultado{}, fmt.Errorf("checkout: gravar pedido: %w", err)
	}

	pix, err := s.gateway.CriarPix(ctx, pagamento.Cobranca{
		Valor:      pedido.Total,
		Descricao:  fmt.Sprintf("Pedido PODE POD %s", pedido.ReferenciaExterna),
		Referencia: pedido.ReferenciaExterna,
		Email:      in.Email,
		Nome:       in.Cliente.Nome,
	})
	if err != nil {
		if uerr := s.pedidos.AtualizarPagamento(ctx, pedido.ID, model.StatusFalhou, nil); uerr != nil {
			s.log.Error("falha ao marcar pedido como recusado", zap.Uint("pedido", pedido.ID), zap.Error(uerr))
		}
		return Resultado{}, fmt.Errorf("%w: %v", ErrPagamento, err)
	}

	status := model.StatusPedido(pix.Status)
	if pix.PagamentoID != nil {
		status = model.StatusPendente
	}
	if status != pedido.Status || pix.PagamentoID != nil {
		if err := s.pedidos.AtualizarPagamento(ctx, pedido.ID, status, pix.PagamentoID); err != nil {
			s.log.Error("falha ao registrar pagamento do pedido", zap.Uint("pedido", pedido.ID), zap.Error(err))
		} else {
			pedido.Status = status
			pedido.PagamentoMPID = pix.PagamentoID
		}
	}

	s.metrics.RecordPedido(pedido.MetodoPagamento, pedido.Total)
	s.log.Info("pedido criado",
		zap.Uint("id", pedido.ID),
		zap.String("referencia", pedido.ReferenciaExterna),
		zap.Float64("total", pedido.Total),
		zap.String("estrategia_frete", entrega.Estrategia))

	res := Resultado{
		Pedido:                pedido,
		Subtotal:              subtotal.Round(2).InexactFloat64(),
		Entrega:               entrega,
		FreteGratis:           gratis,
		FaltamParaFreteGratis: faltam.InexactFloat64(),
		Pix:                   pix,
	}
	res.Mensagem = MensagemWhatsApp(res)
	res.WhatsAppURL = URLWhatsApp(s.whatsApp, res.Mensagem)
	return res, nil
}
