// Package cli implementa la superficie de línea de comandos: generate,
// compare y create-template sobre los mismos casos de uso que la API.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/bomgen/internal/application/usecase"
	infraexcel "github.com/jhoicas/bomgen/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/bomgen/internal/infrastructure/pdf"
)

// deps agrupa los casos de uso compartidos por los subcomandos.
type deps struct {
	generateUC *usecase.GenerateUseCase
	compareUC  *usecase.CompareUseCase
	templateUC *usecase.TemplateUseCase
}

// NewRootCmd construye el comando raíz con sus subcomandos.
func NewRootCmd() *cobra.Command {
	adapter := infraexcel.NewAdapter()
	d := &deps{
		generateUC: usecase.NewGenerateUseCase(adapter),
		compareUC:  usecase.NewCompareUseCase(infraexcel.NewReportWriter(), infrapdf.NewMarotoSummaryGenerator()),
		templateUC: usecase.NewTemplateUseCase(adapter),
	}

	root := &cobra.Command{
		Use:   "bomgen",
		Short: "Generador y comparador de archivos BOM",
		Long: `bomgen genera archivos BOM .xlsx sobre la plantilla BOM Compare y
compara dos archivos existentes produciendo un reporte de diferencias.

Comandos:
  generate         Genera un archivo BOM con datos aleatorios.
  compare          Compara dos archivos BOM y escribe el reporte.
  create-template  Crea una plantilla en blanco con los encabezados fijos.`,
		SilenceUsage: true,
	}

	root.AddCommand(newGenerateCmd(d))
	root.AddCommand(newCompareCmd(d))
	root.AddCommand(newCreateTemplateCmd(d))
	return root
}
