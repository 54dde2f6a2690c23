package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/bomgen/internal/domain"
)

func newCreateTemplateCmd(d *deps) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "create-template",
		Short:   "Crea una plantilla BOM en blanco con los encabezados fijos",
		Example: `  bomgen create-template -o BOM_COMPARE_TEMPLATE.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("crear %q: %w", output, domain.ErrIO)
			}
			defer out.Close()

			if err := d.templateUC.CreateTemplate(cmd.Context(), out); err != nil {
				return err
			}
			cmd.Printf("Plantilla creada: %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Ruta de la plantilla de salida")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
