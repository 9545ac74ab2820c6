package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ledger-service/internal/core/ledger"
	"ledger-service/internal/domain"

	"github.com/spf13/cobra"
)

func exportCmd(flags *globalFlags) *cobra.Command {
	var (
		blocks []string
		split  bool
		zipped bool
		out    string
	)

	c := &cobra.Command{
		Use:   "export <planilhas.json>",
		Short: "Exporta planilhas editadas de volta para texto SPED",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := readExportFile(args[0])
			if err != nil {
				return err
			}
			if len(blocks) > 0 {
				file.SelectedBlocks = blocks
			}
			if split {
				file.SplitByProvenance = true
			}

			svc, err := flags.service(false)
			if err != nil {
				return err
			}

			if zipped {
				data, err := svc.ExportText([]ledger.ExportFile{file})
				if err != nil {
					return err
				}
				if out == "" {
					out = "exported_files.zip"
				}
				return writeOutput(cmd.OutOrStdout(), out, data)
			}

			artifacts, err := svc.ExportTextFiles(file)
			if err != nil {
				return err
			}
			if out == "" {
				out = "."
			}
			if err := os.MkdirAll(out, 0o755); err != nil {
				return err
			}
			for _, a := range artifacts {
				target := filepath.Join(out, a.Name)
				if err := os.WriteFile(target, a.Content, 0o644); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), target)
			}
			return nil
		},
	}

	c.Flags().StringSliceVarP(&blocks, "blocks", "b", nil, "planilhas a exportar (padrão: todas)")
	c.Flags().BoolVar(&split, "split", false, "separa um arquivo por origem mesmo sem colunas de origem detectadas")
	c.Flags().BoolVar(&zipped, "zip", false, "empacota os arquivos em um zip")
	c.Flags().StringVarP(&out, "out", "o", "", "diretório de saída, ou arquivo .zip com --zip")
	return c
}

// readExportFile accepts either an export object ({"file_name", "sheets", ...})
// or a bare sheet array.
func readExportFile(path string) (ledger.ExportFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ledger.ExportFile{}, fmt.Errorf("falha ao ler %s: %w", path, err)
	}

	var file ledger.ExportFile
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		var sheets domain.SheetCollection
		if err := json.Unmarshal(trimmed, &sheets); err != nil {
			return ledger.ExportFile{}, fmt.Errorf("falha ao interpretar %s: %w", path, err)
		}
		file.Sheets = sheets
	} else if err := json.Unmarshal(data, &file); err != nil {
		return ledger.ExportFile{}, fmt.Errorf("falha ao interpretar %s: %w", path, err)
	}
	if strings.TrimSpace(file.FileName) == "" {
		file.FileName = filepath.Base(path)
	}
	return file, nil
}
