package database

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/ericoliveiras/pode-pod/internal/model"
)

//go:embed seed/*.yaml
var seedFiles embed.FS

// Catalogo é o destino do seed; os repositórios implementam.
type Catalogo interface {
	UpsertProdutos(ctx context.Context, produtos []model.Produto) error
	UpsertBairros(ctx context.Context, bairros []model.Bairro) error
}

// SeedLojista cria a conta do lojista quando ainda não existe.
func SeedLojista(db *gorm.DB, email, senha string, log *zap.Logger) error {
	var user model.Usuario
	result := db.Where("email = ?", email).First(&user)
	if result.Error == nil {
		log.Info("usuário lojista já existe", zap.String("email", email))
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	log.Info("usuário lojista não encontrado, criando um novo", zap.String("email", email))
	senhaHash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("falha ao criar hash da senha do lojista: %w", err)
	}

	lojista := model.Usuario{
		Nome:      "Lojista Principal",
		Email:     email,
		SenhaHash: string(senhaHash),
		Tipo:      model.RoleLojista,
	}
	if err := db.Create(&lojista).Error; err != nil {
		return fmt.Errorf("falha ao criar o usuário lojista: %w", err)
	}
	return nil
}

// SeedFreteConfig grava a configuração padrão do frete se não houver nenhuma.
func SeedFreteConfig(db *gorm.DB, valorPorKm, margemMinima float64) error {
	var count int64
	if err := db.Model(&model.FreteConfig{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&model.FreteConfig{ValorPorKm: valorPorKm, MargemMinima: margemMinima, Ativo: true}).Error
}

// SeedCatalogo grava produtos e bairros embutidos no binário.
func SeedCatalogo(ctx context.Context, c Catalogo, log *zap.Logger) error {
	var produtos []model.Produto
	if err := loadSeed("seed/produtos.yaml", &produtos); err != nil {
		return err
	}
	var bairros []model.Bairro
	if err := loadSeed("seed/bairros.yaml", &bairros); err != nil {
		return err
	}

	log.Info("inserindo produtos", zap.Int("total", len(produtos)))
	if err := c.UpsertProdutos(ctx, produtos); err != nil {
		return fmt.Errorf("seed de produtos: %w", err)
	}
	log.Info("inserindo bairros", zap.Int("total", len(bairros)))
	if err := c.UpsertBairros(ctx, bairros); err != nil {
		return fmt.Errorf("seed de bairros: %w", err)
	}
	return nil
}

func loadSeed(path string, out interface{}) error {
	data, err := seedFiles.ReadFile(path)
	if err != nil {
		return fmt.Errorf("seed %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("seed %s: %w", path, err)
	}
	return nil
}
