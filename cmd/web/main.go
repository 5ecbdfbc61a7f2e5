package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ericoliveiras/pode-pod/internal/config"
	"github.com/ericoliveiras/pode-pod/internal/logger"
)

var (
	verbose bool
	timeout time.Duration

	cfg config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pode-pod",
	Short: "API da loja PODE POD",
	Long: `Backend da loja PODE POD: catálogo, carrinho, checkout com PIX,
cotação de frete e área do lojista.

Sem subcomando, sobe o servidor HTTP (o mesmo que "pode-pod serve").`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var envErr error
		cfg, envErr = config.Load()
		if verbose {
			cfg.Verbose = true
		}

		var err error
		log, err = logger.New(cfg.Verbose)
		if err != nil {
			return err
		}
		if envErr != nil {
			log.Debug("arquivo .env não carregado", zap.Error(envErr))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Liga os logs de debug")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Tempo máximo de migrate e frete")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(freteCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
