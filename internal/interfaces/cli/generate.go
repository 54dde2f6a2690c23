package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/bomgen/internal/application/dto"
	"github.com/jhoicas/bomgen/internal/domain"
)

func newGenerateCmd(d *deps) *cobra.Command {
	var (
		output        string
		templatePath  string
		parentPartNo  string
		description   string
		revision      string
		location      string
		level1        int
		level2        int
		level3        int
		manufactured  int
		longPartNo    bool
		applyRevision bool
		applyLocation bool
		seqIncrement  int
		seed          int64
		fields        []string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Genera un archivo BOM con partes aleatorias",
		Example: `  bomgen generate --parent TOP-100 --children 3 -o bom.xlsx
  bomgen generate --parent TOP-100 --children 4 --manufactured 2 --level2 2 --long-partno -o bom.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.GenerateRequest{
				Parent: dto.PartInput{
					PartNo:      parentPartNo,
					Description: description,
					Revision:    revision,
					Location:    location,
				},
				Random:              true,
				Level1Count:         level1,
				Level2PerParent:     level2,
				Level3PerParent:     level3,
				ManufacturedCount:   manufactured,
				RandomFields:        fields,
				Seed:                seed,
				UseLongPartNo:       longPartNo,
				ApplyParentRevision: applyRevision,
				ApplyParentLocation: applyLocation,
				SequenceIncrement:   seqIncrement,
			}

			var template io.Reader
			if templatePath != "" {
				tf, err := os.Open(templatePath)
				if err != nil {
					return fmt.Errorf("abrir plantilla %q: %w", templatePath, domain.ErrIO)
				}
				defer tf.Close()
				template = tf
			}

			out, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("crear %q: %w", output, domain.ErrIO)
			}
			defer out.Close()

			doc, err := d.generateUC.GenerateFile(cmd.Context(), req, template, out)
			if err != nil {
				return err
			}
			cmd.Printf("Generado: %s (%d partes)\n", output, doc.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "output_bom.xlsx", "Ruta del archivo de salida")
	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "Plantilla xlsx a usar (vacío = layout propio)")
	cmd.Flags().StringVar(&parentPartNo, "parent", "", "PartNo de la parte padre (nivel 0)")
	cmd.Flags().StringVar(&description, "description", "Top assembly", "Description de la parte padre")
	cmd.Flags().StringVar(&revision, "revision", "", "Revision de la parte padre")
	cmd.Flags().StringVar(&location, "location", "", "Location de la parte padre")
	cmd.Flags().IntVar(&level1, "children", 2, "Componentes de nivel 1")
	cmd.Flags().IntVar(&level2, "level2", 0, "Sub-componentes por cada nivel 1 fabricado")
	cmd.Flags().IntVar(&level3, "level3", 0, "Sub-componentes por cada nivel 2 fabricado")
	cmd.Flags().IntVar(&manufactured, "manufactured", 0, "Hijos de nivel 1 con Source F (Manufactured to Job)")
	cmd.Flags().BoolVar(&longPartNo, "long-partno", false, "Números de parte de 20-50 caracteres")
	cmd.Flags().BoolVar(&applyRevision, "apply-revision", false, "Aplicar Revision del padre a todos los hijos")
	cmd.Flags().BoolVar(&applyLocation, "apply-location", false, "Aplicar Location del padre a todos los hijos")
	cmd.Flags().IntVar(&seqIncrement, "seq-increment", 100, "Incremento de Sequence por nivel (1/10/100/1000/10000)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Semilla para datos reproducibles (0 = aleatoria)")
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "Campos a poblar en modo aleatorio (default PartNo,Description,Quantity,Cost)")
	_ = cmd.MarkFlagRequired("parent")

	return cmd
}
