package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ericoliveiras/pode-pod/internal/frete"
)

var freteOpts struct {
	origem     string
	destino    string
	bairro     string
	subtotal   float64
	estrategia string
}

var freteCmd = &cobra.Command{
	Use:   "frete",
	Short: "Cota uma entrega pelo terminal",
	Long: `Cota uma entrega com um dos presets:

  bairro   usa a tabela de bairros (--bairro e --subtotal)
  vitrine  distância simulada da loja (--origem e --destino)
  funcao   distância simulada com valor por km configurável (--destino)

Os presets "bairro" e "funcao" consultam o banco; sem conexão o "funcao"
usa a configuração padrão.`,
	RunE: runFrete,
}

func init() {
	f := freteCmd.Flags()
	f.StringVar(&freteOpts.origem, "origem", "", "Endereço de origem")
	f.StringVar(&freteOpts.destino, "destino", "", "Endereço de destino")
	f.StringVar(&freteOpts.bairro, "bairro", "", "Nome do bairro")
	f.Float64Var(&freteOpts.subtotal, "subtotal", 0, "Subtotal dos produtos")
	f.StringVar(&freteOpts.estrategia, "estrategia", frete.PresetVitrine, "Preset: bairro, vitrine ou funcao")
}

func runFrete(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	estrategia, err := estrategiaCLI(ctx)
	if err != nil {
		return err
	}
	cot, err := estrategia.Cotar(ctx, frete.Solicitacao{
		Origem:   freteOpts.origem,
		Destino:  freteOpts.destino,
		Bairro:   freteOpts.bairro,
		Subtotal: freteOpts.subtotal,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(cot)
}

func estrategiaCLI(ctx context.Context) (frete.Estrategia, error) {
	switch freteOpts.estrategia {
	case frete.PresetVitrine:
		return frete.NewEstrategiaVitrine(nil), nil
	case frete.PresetBairro:
		_, repo, err := conectar(ctx)
		if err != nil {
			return nil, err
		}
		return frete.NewEstrategiaBairro(repo, frete.MargemPadrao), nil
	case frete.PresetFuncao:
		var config frete.ConfigGetter = frete.StaticConfig(frete.DefaultConfig())
		if _, repo, err := conectar(ctx); err != nil {
			log.Warn("banco indisponível; usando configuração de frete padrão", zap.Error(err))
		} else {
			config = frete.NewConfigProvider(repo, log)
		}
		return frete.NewEstrategiaFuncao(config, cfg.EnderecoLoja), nil
	}
	return frete.NovaEstrategiaSimulada(freteOpts.estrategia, nil, nil, "")
}
