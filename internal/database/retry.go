package database

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"gorm.io/gorm"
)

// RetryPolicy limita as tentativas de uma operação no banco.
type RetryPolicy struct {
	MaxAttempts int
	Interval    time.Duration
}

// DefaultRetryPolicy: 3 tentativas com 1s entre elas.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, Interval: time.Second}
}

// Retry executa op até dar certo, esgotar as tentativas ou o contexto ser
// cancelado. Registro não encontrado não é transitório e volta na hora.
func Retry(ctx context.Context, p RetryPolicy, op func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	b := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(p.Interval), uint64(attempts-1)),
		ctx,
	)
	return backoff.Retry(func() error {
		err := op()
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, context.Canceled) {
			return backoff.Permanent(err)
		}
		return err
	}, b)
}
