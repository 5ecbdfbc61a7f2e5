package handler

import (
	"bytes"
	"context"
	"encoding/gob"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/ericoliveiras/pode-pod/internal/model"
)

// SessionName é o cookie compartilhado pelo carrinho e pelo login do lojista.
const SessionName = "pode-pod-session"

func init() {
	gob.Register(map[string]int{})
	registrarValidacoes()
}

type CatalogoStore interface {
	ListProdutos(ctx context.Context) ([]model.Produto, error)
	UpsertProdutos(ctx context.Context, produtos []model.Produto) error
	ListBairros(ctx context.Context) ([]model.Bairro, error)
	FiltrarBairros(ctx context.Context, zona, termo string) ([]model.Bairro, error)
	UpsertBairros(ctx context.Context, bairros []model.Bairro) error
}

type PedidoStore interface {
	CriarPedido(ctx context.Context, p *model.Pedido) error
	ListPedidos(ctx context.Context) ([]model.Pedido, error)
	BuscarPedido(ctx context.Context, id uint) (model.Pedido, bool, error)
	AtualizarPagamento(ctx context.Context, id uint, status model.StatusPedido, pagamentoID *int64) error
}

type UsuarioStore interface {
	BuscarUsuarioPorEmail(ctx context.Context, email string) (model.Usuario, bool, error)
	BuscarUsuario(ctx context.Context, id uint) (model.Usuario, bool, error)
}

type FreteConfigStore interface {
	SalvarFreteConfig(ctx context.Context, cfg *model.FreteConfig) error
}

var errCorpoVazio = errors.New("corpo da requisição vazio")

// bindUmOuVarios aceita tanto um objeto quanto um array de objetos no corpo
// e valida cada item com as tags binding.
func bindUmOuVarios[T any](c *gin.Context) ([]T, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errCorpoVazio
	}

	var itens []T
	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &itens); err != nil {
			return nil, err
		}
	} else {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, err
		}
		itens = append(itens, item)
	}
	if len(itens) == 0 {
		return nil, errCorpoVazio
	}
	for i := range itens {
		if err := binding.Validator.ValidateStruct(&itens[i]); err != nil {
			return nil, err
		}
	}
	return itens, nil
}

// erroValidacao responde 400 no formato {erro}.
func erroValidacao(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"erro": msg})
}

// erroInterno responde 500 no formato {erro, mensagem}.
func erroInterno(c *gin.Context, msg string, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"erro": msg, "mensagem": err.Error()})
}
