package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ericoliveiras/pode-pod/internal/database"
	"github.com/ericoliveiras/pode-pod/internal/frete"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Cria as tabelas e carrega o catálogo, os bairros e o lojista inicial",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		db, repo, err := conectar(ctx)
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}
		if err := database.SeedCatalogo(ctx, repo, log); err != nil {
			return err
		}
		if err := database.SeedLojista(db, cfg.LojistaEmail, cfg.LojistaSenha, log); err != nil {
			return err
		}
		padrao := frete.DefaultConfig()
		if err := database.SeedFreteConfig(db, padrao.ValorPorKm, padrao.MargemMinima); err != nil {
			return err
		}
		log.Info("migração concluída")
		return nil
	},
}
