package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCotacao(t *testing.T) {
	m := New()
	m.RecordCotacao("vitrine", nil)
	m.RecordCotacao("vitrine", nil)
	m.RecordCotacao("funcao", errors.New("destino"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CotacoesTotal.WithLabelValues("vitrine", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CotacoesTotal.WithLabelValues("funcao", "erro")))
}

func TestRecordPedido(t *testing.T) {
	m := New()
	m.RecordPedido("pix", 150.5)
	m.RecordPedido("pix", 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.PedidosCriados.WithLabelValues("pix")))
	assert.Equal(t, 150.5, testutil.ToFloat64(m.ValorPedidos))
}

func TestMiddlewareEEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/bairros", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", m.Endpoint())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bairros", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/bairros", "200")))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "podepod_http_requests_total"))
}

func TestMetricsNil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordCotacao("bairro", nil)
		m.RecordPedido("pix", 10)
	})
}

func TestRegistryIsolado(t *testing.T) {
	a, b := New(), New()
	a.RecordPedido("pix", 10)

	assert.Equal(t, 1, testutil.CollectAndCount(a.PedidosCriados))
	assert.Equal(t, 0, testutil.CollectAndCount(b.PedidosCriados))

	families, err := a.Registry().Gather()
	require.NoError(t, err)
	nomes := make([]string, 0, len(families))
	for _, f := range families {
		nomes = append(nomes, f.GetName())
	}
	assert.Contains(t, nomes, "podepod_pedidos_criados_total")
	assert.Contains(t, nomes, "go_goroutines")
}
