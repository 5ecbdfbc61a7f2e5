package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericoliveiras/pode-pod/internal/model"
)

func criarPedido(t *testing.T, env *testEnv, total float64, status model.StatusPedido, pagamentoID *int64) model.Pedido {
	t.Helper()
	p := model.Pedido{
		Cliente:         model.ClientePedido{Nome: "Ana", Telefone: "11999990000", Endereco: "Rua A, 10", Bairro: "Mooca"},
		Itens:           []model.ItemPedido{{ProdutoID: "elfbar-23k", Nome: "ELFBAR 23K", Preco: total, Quantidade: 1}},
		Total:           total,
		MetodoPagamento: model.PagamentoPix,
		Status:          status,
		PagamentoMPID:   pagamentoID,
	}
	require.NoError(t, env.repo.CriarPedido(context.Background(), &p))
	return p
}

func TestShowVendas(t *testing.T) {
	env := newTestEnv(t)
	cookie := login(t, env, testLojistaEmail)

	criarPedido(t, env, 100.5, model.StatusPago, nil)
	criarPedido(t, env, 50, model.StatusAguardandoConfirmacao, nil)
	criarPedido(t, env, 999, model.StatusCancelado, nil)

	w := env.do(http.MethodGet, "/lojista/vendas", "", cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeJSON(t, w)
	assert.Equal(t, 3.0, body["quantidade"])
	assert.Equal(t, 150.5, body["faturamento"])

	vendas := body["vendas"].([]interface{})
	require.Len(t, vendas, 3)
	assert.Equal(t, "cancelled", vendas[0].(map[string]interface{})["status"])
}

func TestAtualizarStatus(t *testing.T) {
	env := newTestEnv(t)
	cookie := login(t, env, testLojistaEmail)
	pedido := criarPedido(t, env, 80, model.StatusAguardandoConfirmacao, nil)
	path := fmt.Sprintf("/lojista/vendas/%d/status", pedido.ID)

	w := env.do(http.MethodPut, path, `{"status":"approved"}`, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	got, ok, err := env.repo.BuscarPedido(context.Background(), pedido.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, model.StatusPago, got.Status)

	w = env.do(http.MethodPut, path, `{"status":"entregue"}`, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPut, "/lojista/vendas/abc/status", `{"status":"approved"}`, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPut, "/lojista/vendas/9999/status", `{"status":"approved"}`, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSincronizarPagamento(t *testing.T) {
	env := newTestEnv(t)
	cookie := login(t, env, testLojistaEmail)

	semPagamento := criarPedido(t, env, 80, model.StatusAguardandoConfirmacao, nil)
	w := env.do(http.MethodPost, fmt.Sprintf("/lojista/vendas/%d/sincronizar", semPagamento.ID), "", cookie)
	assert.Equal(t, http.StatusConflict, w.Code)

	id := int64(123456)
	comPagamento := criarPedido(t, env, 80, model.StatusPendente, &id)
	w = env.do(http.MethodPost, fmt.Sprintf("/lojista/vendas/%d/sincronizar", comPagamento.ID), "", cookie)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Consulta de pagamento indisponível.", decodeJSON(t, w)["error"])
}

func TestSalvarFreteConfig(t *testing.T) {
	env := newTestEnv(t)
	cookie := login(t, env, testLojistaEmail)

	w := env.do(http.MethodPut, "/lojista/frete-config", `{"valorPorKm":3,"margemMinima":5}`, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.do(http.MethodGet, "/api/calcular-frete?origem=a&destino=4", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, 95.0, body["preco"])
	assert.Equal(t, 3.0, body["valorPorKm"])
	assert.Equal(t, 5.0, body["margemMinima"])

	w = env.do(http.MethodPut, "/lojista/frete-config", `{"valorPorKm":0,"margemMinima":5}`, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlanilha(t *testing.T) {
	env := newTestEnv(t)
	cookie := login(t, env, testLojistaEmail)

	w := env.do(http.MethodGet, "/lojista/planilha", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, 0.0, body["totalPods"])
	assert.Equal(t, 75.0, body["totalFretes"])
	assert.Equal(t, 75.0, body["totalGeral"])
	assert.Len(t, body["fretes"], 4)

	w = env.do(http.MethodPut, "/lojista/planilha/itens/pods/ignite-v50", `{"quantity":2}`, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body = decodeJSON(t, w)
	assert.Equal(t, 149.8, body["totalPods"])
	assert.Equal(t, 2.0, body["qtdPods"])
	assert.Equal(t, 224.8, body["totalGeral"])

	w = env.do(http.MethodPut, "/lojista/planilha/itens/pods/ignite-v50", `{"price":"70"}`, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 140.0, decodeJSON(t, w)["totalPods"])

	w = env.do(http.MethodPost, "/lojista/planilha/fretes", `{"value":10}`, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body = decodeJSON(t, w)
	assert.Equal(t, 85.0, body["totalFretes"])
	assert.Len(t, body["fretes"], 5)

	w = env.do(http.MethodPut, "/lojista/planilha/fretes/2", `{"value":20}`, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 65.0, decodeJSON(t, w)["totalFretes"])

	w = env.do(http.MethodDelete, "/lojista/planilha/fretes/1", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 50.0, decodeJSON(t, w)["totalFretes"])

	t.Run("erros", func(t *testing.T) {
		w := env.do(http.MethodDelete, "/lojista/planilha/fretes/nao-existe", "", cookie)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = env.do(http.MethodPut, "/lojista/planilha/itens/bebidas/x", `{"quantity":1}`, cookie)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = env.do(http.MethodPut, "/lojista/planilha/itens/pods/ignite-v50", `{"quantity":-1}`, cookie)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = env.do(http.MethodPut, "/lojista/planilha/itens/pods/ignite-v50", `{}`, cookie)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
