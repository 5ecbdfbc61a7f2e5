package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ericoliveiras/pode-pod/internal/model"
)

func openTestDB(t *testing.T, dsn string) *gorm.DB {
	t.Helper()
	db, err := Open(context.Background(), sqlite.Open(dsn), Config{MaxConnections: 1}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestRetry(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 3, Interval: time.Millisecond}

	t.Run("para no primeiro sucesso", func(t *testing.T) {
		calls := 0
		err := Retry(context.Background(), policy, func() error {
			calls++
			if calls < 2 {
				return errors.New("conexão recusada")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("esgota as tentativas", func(t *testing.T) {
		calls := 0
		err := Retry(context.Background(), policy, func() error {
			calls++
			return errors.New("conexão recusada")
		})
		require.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("registro não encontrado não repete", func(t *testing.T) {
		calls := 0
		err := Retry(context.Background(), policy, func() error {
			calls++
			return gorm.ErrRecordNotFound
		})
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.Equal(t, 1, calls)
	})

	t.Run("contexto cancelado interrompe", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		err := Retry(ctx, RetryPolicy{MaxAttempts: 5, Interval: 50 * time.Millisecond}, func() error {
			calls++
			cancel()
			return errors.New("timeout")
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("politica zerada executa uma vez", func(t *testing.T) {
		calls := 0
		_ = Retry(context.Background(), RetryPolicy{}, func() error {
			calls++
			return errors.New("falha")
		})
		assert.Equal(t, 1, calls)
	})
}

func TestConnectDBSemURL(t *testing.T) {
	_, err := ConnectDB(context.Background(), Config{}, zap.NewNop())
	assert.Error(t, err)
}

func TestOpenMigratePing(t *testing.T) {
	db := openTestDB(t, "file:open_migrate?mode=memory&cache=shared")
	assert.NoError(t, Ping(context.Background(), db))

	for _, m := range []interface{}{&model.Produto{}, &model.Bairro{}, &model.Pedido{}, &model.Usuario{}, &model.FreteConfig{}} {
		assert.True(t, db.Migrator().HasTable(m))
	}
	assert.True(t, db.Migrator().HasTable("frete_config"))
}

func TestSeedLojista(t *testing.T) {
	db := openTestDB(t, "file:seed_lojista?mode=memory&cache=shared")
	log := zap.NewNop()

	require.NoError(t, SeedLojista(db, "lojista@podepod.com.br", "senhaforte123", log))
	require.NoError(t, SeedLojista(db, "lojista@podepod.com.br", "outra", log))

	var users []model.Usuario
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, model.RoleLojista, users[0].Tipo)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].SenhaHash), []byte("senhaforte123")))
}

func TestSeedFreteConfig(t *testing.T) {
	db := openTestDB(t, "file:seed_frete?mode=memory&cache=shared")

	require.NoError(t, SeedFreteConfig(db, 2.5, 10))
	require.NoError(t, SeedFreteConfig(db, 9, 99))

	var cfgs []model.FreteConfig
	require.NoError(t, db.Find(&cfgs).Error)
	require.Len(t, cfgs, 1)
	assert.Equal(t, 2.5, cfgs[0].ValorPorKm)
	assert.True(t, cfgs[0].Ativo)
}

type catalogoFake struct {
	produtos []model.Produto
	bairros  []model.Bairro
	err      error
}

func (c *catalogoFake) UpsertProdutos(_ context.Context, p []model.Produto) error {
	c.produtos = p
	return c.err
}

func (c *catalogoFake) UpsertBairros(_ context.Context, b []model.Bairro) error {
	c.bairros = b
	return nil
}

func TestSeedCatalogo(t *testing.T) {
	c := &catalogoFake{}
	require.NoError(t, SeedCatalogo(context.Background(), c, zap.NewNop()))

	require.Len(t, c.produtos, 10)
	require.Len(t, c.bairros, 27)

	for _, p := range c.produtos {
		assert.NotEmpty(t, p.ID)
		assert.Contains(t, []string{model.CategoriaPod, model.CategoriaTabacaria}, p.Categoria, p.ID)
	}
	for _, b := range c.bairros {
		assert.True(t, model.ZonaValida(b.Zona), b.Nome)
		assert.Greater(t, b.DistanciaKm, 0.0, b.Nome)
	}
}

func TestSeedCatalogoPropagaErro(t *testing.T) {
	c := &catalogoFake{err: errors.New("banco fora do ar")}
	err := SeedCatalogo(context.Background(), c, zap.NewNop())
	assert.ErrorContains(t, err, "seed de produtos")
	assert.Nil(t, c.bairros)
}
