package cli

import (
	"fmt"
	"os"
	"runtime"

	"ledger-service/internal/config"
	"ledger-service/internal/core/ledger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version is set at build time with -ldflags "-X ledger-service/internal/cli.Version=...".
var Version = "dev"

type globalFlags struct {
	configPath     string
	sourceEncoding string
	exportEncoding string
	debug          bool
}

func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the ledgerctl command tree.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "ledgerctl",
		Short:        "Converte arquivos SPED em planilhas e de volta",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", os.Getenv("LEDGER_CONFIG"), "arquivo YAML com a política de agrupamento")
	cmd.PersistentFlags().StringVar(&flags.sourceEncoding, "source-encoding", "", "codificação dos arquivos de entrada (padrão: detectar)")
	cmd.PersistentFlags().StringVar(&flags.exportEncoding, "export-encoding", "", "codificação dos arquivos exportados (padrão: utf-8)")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "log detalhado em stderr")

	cmd.AddCommand(convertCmd(flags), exportCmd(flags), codesCmd(flags), versionCmd())
	return cmd
}

func (f *globalFlags) service(tagProvenance bool) (ledger.Service, error) {
	logger := zap.NewNop()
	if f.debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		logger = l
	}

	opts := ledger.Options{
		SourceEncoding: f.sourceEncoding,
		ExportEncoding: f.exportEncoding,
		TagProvenance:  tagProvenance,
		Logger:         logger,
	}
	if f.configPath != "" {
		lc, err := config.LoadLedgerConfig(f.configPath)
		if err != nil {
			return nil, err
		}
		policy, err := lc.Policy()
		if err != nil {
			return nil, err
		}
		opts.Policy = policy
		opts.Provenance = lc.Provenance
	}
	return ledger.NewService(opts), nil
}

func codesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "Lista os códigos de registro conhecidos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := flags.service(false)
			if err != nil {
				return err
			}
			for _, code := range svc.Codes() {
				fmt.Fprintln(cmd.OutOrStdout(), code)
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Mostra a versão",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ledgerctl %s (%s)\n", Version, runtime.Version())
		},
	}
}
