package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"ledger-service/internal/core/ledger"
	"ledger-service/internal/core/merge"

	"github.com/spf13/cobra"
)

func convertCmd(flags *globalFlags) *cobra.Command {
	var (
		format string
		out    string
		tag    bool
	)

	c := &cobra.Command{
		Use:   "convert <arquivo.txt>...",
		Short: "Converte arquivos SPED em planilhas (json, xlsx ou csv)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if format != "json" && format != "xlsx" && format != "csv" {
				return fmt.Errorf("formato não suportado: %s", format)
			}
			if format == "xlsx" && out == "" {
				return fmt.Errorf("--out é obrigatório para xlsx")
			}

			sources, err := fileSources(args)
			if err != nil {
				return err
			}
			svc, err := flags.service(tag)
			if err != nil {
				return err
			}
			conv, err := svc.Convert(cmd.Context(), sources, tag)
			if err != nil {
				return err
			}
			for _, fe := range conv.Errors {
				fmt.Fprintf(cmd.ErrOrStderr(), "erro em %s: %s\n", fe.FileName, fe.Error)
			}
			if len(conv.Sheets) == 0 {
				return fmt.Errorf("nenhum arquivo pôde ser convertido")
			}

			var data []byte
			switch format {
			case "json":
				data, err = json.MarshalIndent(conv.Sheets, "", "  ")
			case "csv":
				data, err = svc.ExportCSV(ledger.ExportFile{Sheets: conv.Sheets})
			case "xlsx":
				data, err = svc.ExportWorkbook(ledger.ExportFile{Sheets: conv.Sheets})
			}
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), out, data)
		},
	}

	c.Flags().StringVarP(&format, "format", "f", "json", "formato de saída: json, xlsx ou csv")
	c.Flags().StringVarP(&out, "out", "o", "", "arquivo de saída (padrão: stdout)")
	c.Flags().BoolVar(&tag, "tag-provenance", false, "prefixa cada linha com período e CNPJ do arquivo de origem")
	return c
}

func fileSources(paths []string) ([]merge.Source, error) {
	sources := make([]merge.Source, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("falha ao acessar %s: %w", p, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%s é um diretório", p)
		}
		path := p
		sources = append(sources, merge.Source{
			Name: filepath.Base(path),
			Size: info.Size(),
			Open: func() (io.ReadCloser, error) { return os.Open(path) },
		})
	}
	return sources, nil
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
