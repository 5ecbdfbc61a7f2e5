package handler

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/ericoliveiras/pode-pod/internal/checkout"
	"github.com/ericoliveiras/pode-pod/internal/model"
)

// CartHandler agrupa os handlers do carrinho e do fechamento do pedido.
type CartHandler struct {
	Store      sessions.Store
	Fechamento *checkout.Service
	Log        *zap.Logger
}

// CartSessionKey guarda o carrinho na sessão: chave produto|sabor → quantidade.
const CartSessionKey = "shopping_cart"

type carrinhoRequest struct {
	Sabor      string `form:"sabor" json:"sabor"`
	Quantidade int    `form:"quantidade" json:"quantidade" binding:"gte=0"`
}

func chaveCarrinho(produtoID, sabor string) string {
	return produtoID + "|" + sabor
}

func linhasDoCarrinho(cart map[string]int) []checkout.Linha {
	chaves := make([]string, 0, len(cart))
	for k := range cart {
		chaves = append(chaves, k)
	}
	sort.Strings(chaves)

	linhas := make([]checkout.Linha, 0, len(cart))
	for _, k := range chaves {
		id, sabor, _ := strings.Cut(k, "|")
		linhas = append(linhas, checkout.Linha{ProdutoID: id, Sabor: sabor, Quantidade: cart[k]})
	}
	return linhas
}

func (h *CartHandler) carrinho(c *gin.Context) (*sessions.Session, map[string]int) {
	session, _ := h.Store.Get(c.Request, SessionName)
	cart, ok := session.Values[CartSessionKey].(map[string]int)
	if !ok {
		cart = make(map[string]int)
	}
	return session, cart
}

func (h *CartHandler) salvar(c *gin.Context, session *sessions.Session, cart map[string]int) error {
	session.Values[CartSessionKey] = cart
	return session.Save(c.Request, c.Writer)
}

func (h *CartHandler) bindItem(c *gin.Context) (carrinhoRequest, bool) {
	var req carrinhoRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados inválidos."})
			return req, false
		}
	}
	if req.Sabor == "" {
		req.Sabor = c.Query("sabor")
	}
	return req, true
}

// AddToCart adiciona um item (produto + sabor) ao carrinho e retorna a nova contagem.
func (h *CartHandler) AddToCart(c *gin.Context) {
	req, ok := h.bindItem(c)
	if !ok {
		return
	}
	qtd := req.Quantidade
	if qtd == 0 {
		qtd = 1
	}

	produtoID := c.Param("id")
	_, _, err := h.Fechamento.Itens(c.Request.Context(), []checkout.Linha{{ProdutoID: produtoID, Sabor: req.Sabor, Quantidade: qtd}})
	switch {
	case errors.Is(err, checkout.ErrProdutoIndisponivel):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Produto não encontrado ou indisponível."})
		return
	case errors.Is(err, checkout.ErrSaborInvalido):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Sabor indisponível para este produto."})
		return
	case err != nil:
		h.Log.Error("erro ao consultar produto", zap.String("produto", produtoID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao consultar o produto."})
		return
	}

	session, cart := h.carrinho(c)
	cart[chaveCarrinho(produtoID, req.Sabor)] += qtd
	if err := h.salvar(c, session, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao salvar o carrinho."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Item adicionado com sucesso!",
		"newCartCount": getTotalCartQuantityHelper(cart),
	})
}

// DecreaseQuantity diminui em um a quantidade do item; chegando a zero, remove.
func (h *CartHandler) DecreaseQuantity(c *gin.Context) {
	req, ok := h.bindItem(c)
	if !ok {
		return
	}
	session, cart := h.carrinho(c)
	if len(cart) == 0 {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Carrinho já vazio.", "newCartCount": 0})
		return
	}

	chave := chaveCarrinho(c.Param("id"), req.Sabor)
	if quantity, exists := cart[chave]; exists {
		if quantity > 1 {
			cart[chave]--
		} else {
			delete(cart, chave)
		}
		if err := h.salvar(c, session, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao atualizar o carrinho."})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Quantidade atualizada.", "newCartCount": getTotalCartQuantityHelper(cart)})
}

func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	req, ok := h.bindItem(c)
	if !ok {
		return
	}
	session, cart := h.carrinho(c)
	if len(cart) == 0 {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Carrinho já vazio.", "newCartCount": 0})
		return
	}

	delete(cart, chaveCarrinho(c.Param("id"), req.Sabor))
	if err := h.salvar(c, session, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao atualizar o carrinho."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item removido.", "newCartCount": getTotalCartQuantityHelper(cart)})
}

// ClearCart remove todos os itens do carrinho.
func (h *CartHandler) ClearCart(c *gin.Context) {
	session, _ := h.carrinho(c)
	if err := h.salvar(c, session, make(map[string]int)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao limpar o carrinho."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Carrinho esvaziado.", "newCartCount": 0})
}

// ShowCart devolve os itens com o preço atual do catálogo e a situação do frete grátis.
func (h *CartHandler) ShowCart(c *gin.Context) {
	_, cart := h.carrinho(c)
	if len(cart) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"items":                 []model.ItemPedido{},
			"subtotal":              0.0,
			"count":                 0,
			"freteGratis":           false,
			"faltamParaFreteGratis": checkout.LimiteFreteGratis.InexactFloat64(),
		})
		return
	}

	itens, subtotal, err := h.Fechamento.Itens(c.Request.Context(), linhasDoCarrinho(cart))
	if errors.Is(err, checkout.ErrProdutoIndisponivel) || errors.Is(err, checkout.ErrSaborInvalido) {
		c.JSON(http.StatusConflict, gin.H{"error": "Alguns itens no seu carrinho não estão mais disponíveis. Verifique seu carrinho."})
		return
	}
	if err != nil {
		h.Log.Error("erro ao montar carrinho", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar detalhes dos produtos."})
		return
	}

	gratis, faltam := checkout.FreteGratis(subtotal)
	c.JSON(http.StatusOK, gin.H{
		"items":                 itens,
		"subtotal":              subtotal.Round(2).InexactFloat64(),
		"count":                 getTotalCartQuantityHelper(cart),
		"freteGratis":           gratis,
		"faltamParaFreteGratis": faltam.InexactFloat64(),
	})
}

type checkoutRequest struct {
	Customer model.ClientePedido `json:"customer"`
	Email    string              `json:"email" binding:"omitempty,email"`
}

// Checkout fecha o pedido do carrinho da sessão e devolve o PIX e o link do WhatsApp.
func (h *CartHandler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		erroValidacao(c, "Preencha todos os campos!")
		return
	}
	if strings.TrimSpace(req.Customer.Bairro) == "" {
		erroValidacao(c, "Selecione seu bairro!")
		return
	}

	session, cart := h.carrinho(c)
	res, err := h.Fechamento.Fechar(c.Request.Context(), checkout.Entrada{
		Cliente: req.Customer,
		Email:   req.Email,
		Linhas:  linhasDoCarrinho(cart),
	})
	switch {
	case errors.Is(err, checkout.ErrCarrinhoVazio):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Carrinho vazio."})
		return
	case errors.Is(err, checkout.ErrProdutoIndisponivel), errors.Is(err, checkout.ErrSaborInvalido):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Um ou mais itens no seu carrinho não estão mais disponíveis."})
		return
	case errors.Is(err, checkout.ErrPagamento):
		h.Log.Error("erro ao gerar PIX", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao gerar PIX com o provedor."})
		return
	case err != nil:
		h.Log.Error("erro no checkout", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Não foi possível registrar seu pedido."})
		return
	}

	if err := h.salvar(c, session, make(map[string]int)); err != nil {
		h.Log.Warn("pedido criado mas carrinho não foi limpo", zap.Uint("pedido", res.Pedido.ID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":               true,
		"pedido":                res.Pedido,
		"subtotal":              res.Subtotal,
		"frete":                 res.Pedido.Frete,
		"total":                 res.Pedido.Total,
		"freteGratis":           res.FreteGratis,
		"faltamParaFreteGratis": res.FaltamParaFreteGratis,
		"entrega":               res.Entrega,
		"pix":                   res.Pix,
		"whatsapp": gin.H{
			"mensagem": res.Mensagem,
			"url":      res.WhatsAppURL,
		},
	})
}

func getTotalCartQuantityHelper(cart map[string]int) int {
	totalQuantity := 0
	for _, quantity := range cart {
		totalQuantity += quantity
	}
	return totalQuantity
}
