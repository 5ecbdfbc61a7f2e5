package frete

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/ericoliveiras/pode-pod/internal/model"
)

// ConfigSource lê a configuração ativa do armazenamento. ok=false quando
// não há linha ativa.
type ConfigSource interface {
	FreteConfigAtiva(ctx context.Context) (cfg model.FreteConfig, ok bool, err error)
}

// ConfigProvider busca a configuração na fonte e cai para DefaultConfig em
// qualquer falha. O circuit breaker evita consultar um banco fora do ar a
// cada cotação.
type ConfigProvider struct {
	source ConfigSource
	cb     *gobreaker.CircuitBreaker
	log    *zap.Logger
}

func NewConfigProvider(source ConfigSource, log *zap.Logger) *ConfigProvider {
	if log == nil {
		log = zap.NewNop()
	}
	settings := gobreaker.Settings{
		Name:        "frete_config",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker mudou de estado",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}
	return &ConfigProvider{source: source, cb: gobreaker.NewCircuitBreaker(settings), log: log}
}

func (p *ConfigProvider) Config(ctx context.Context) Config {
	res, err := p.cb.Execute(func() (interface{}, error) {
		cfg, ok, err := p.source.FreteConfigAtiva(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return DefaultConfig(), nil
		}
		return Config{ValorPorKm: cfg.ValorPorKm, MargemMinima: cfg.MargemMinima}, nil
	})
	if err != nil {
		p.log.Warn("usando configuração de frete padrão", zap.Error(err))
		return DefaultConfig()
	}
	return res.(Config)
}
