package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/bomgen/internal/domain"
	"github.com/jhoicas/bomgen/internal/domain/entity"
)

func newCompareCmd(d *deps) *cobra.Command {
	var (
		output  string
		pdfPath string
	)

	cmd := &cobra.Command{
		Use:   "compare <fileA> <fileB>",
		Short: "Compara dos archivos BOM y escribe el reporte",
		Example: `  bomgen compare baseline.xlsx candidate.xlsx -o report.xlsx
  bomgen compare baseline.xlsx candidate.xlsx -o report.xlsx --pdf summary.pdf`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseline, err := loadFile(d, cmd, args[0])
			if err != nil {
				return err
			}
			candidate, err := loadFile(d, cmd, args[1])
			if err != nil {
				return err
			}

			out, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("crear %q: %w", output, domain.ErrIO)
			}
			defer out.Close()

			entries, err := d.compareUC.WriteReport(cmd.Context(), baseline, candidate, out)
			if err != nil {
				return err
			}

			if pdfPath != "" {
				data, err := d.compareUC.WritePDF(cmd.Context(), baseline, candidate)
				if err != nil {
					return err
				}
				if err := os.WriteFile(pdfPath, data, 0o644); err != nil {
					return fmt.Errorf("escribir %q: %w", pdfPath, domain.ErrIO)
				}
			}

			sum := entity.Summarize(entries)
			cmd.Printf("Reporte: %s\n", output)
			cmd.Printf("  Agregadas: %d  Removidas: %d  Cambiadas: %d  Sin cambios: %d\n",
				sum.Added, sum.Removed, sum.Changed, sum.Unchanged)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Ruta del reporte xlsx")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Además escribe el resumen PDF en esta ruta")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func loadFile(d *deps, cmd *cobra.Command, path string) (*entity.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir %q: %w", path, domain.ErrIO)
	}
	defer f.Close()
	return d.templateUC.Load(cmd.Context(), f, path)
}
