package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bomgen/internal/application/usecase"
)

// TemplateHandler expone la descarga de la plantilla en blanco.
type TemplateHandler struct {
	uc *usecase.TemplateUseCase
}

// NewTemplateHandler construye el handler.
func NewTemplateHandler(uc *usecase.TemplateUseCase) *TemplateHandler {
	return &TemplateHandler{uc: uc}
}

// Download godoc
// @Summary      Descargar plantilla BOM en blanco
// @Tags         template
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Router       /api/bom/template [get]
func (h *TemplateHandler) Download(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.uc.CreateTemplate(c.Context(), &buf); err != nil {
		return respondError(c, err)
	}
	return sendAttachment(c, buf.Bytes(), "BOM_COMPARE_TEMPLATE.xlsx", xlsxContentType)
}
