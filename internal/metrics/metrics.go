// Package metrics expõe os contadores da loja no formato do Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "podepod"

type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	CotacoesTotal  *prometheus.CounterVec
	PedidosCriados *prometheus.CounterVec
	ValorPedidos   prometheus.Counter
}

// New cria um registro próprio, sem tocar no registro global do pacote prometheus.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de requisições HTTP",
		},
		[]string{"method", "path", "status"},
	)
	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP em segundos",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)
	m.CotacoesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frete_cotacoes_total",
			Help:      "Cotações de frete por estratégia e resultado",
		},
		[]string{"estrategia", "resultado"},
	)
	m.PedidosCriados = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pedidos_criados_total",
			Help:      "Pedidos registrados por método de pagamento",
		},
		[]string{"metodo"},
	)
	m.ValorPedidos = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pedidos_valor_reais_total",
			Help:      "Soma dos totais dos pedidos em reais",
		},
	)

	registry.MustRegister(
		m.HTTPRequestsTotal, m.HTTPRequestDuration,
		m.CotacoesTotal, m.PedidosCriados, m.ValorPedidos,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordCotacao conta uma cotação; err != nil vira resultado "erro".
// Aceita receptor nil.
func (m *Metrics) RecordCotacao(estrategia string, err error) {
	if m == nil {
		return
	}
	resultado := "ok"
	if err != nil {
		resultado = "erro"
	}
	m.CotacoesTotal.WithLabelValues(estrategia, resultado).Inc()
}

// RecordPedido aceita receptor nil para quem roda sem métricas (CLI, testes).
func (m *Metrics) RecordPedido(metodo string, total float64) {
	if m == nil {
		return
	}
	m.PedidosCriados.WithLabelValues(metodo).Inc()
	if total > 0 {
		m.ValorPedidos.Add(total)
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware registra contagem e duração de cada requisição, pelo padrão da rota.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "nao_encontrada"
		}
		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Endpoint adapta o handler do promhttp para o gin.
func (m *Metrics) Endpoint() gin.HandlerFunc {
	h := m.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
