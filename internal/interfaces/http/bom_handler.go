package http

import (
	"bytes"
	"fmt"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/bomgen/internal/application/dto"
	"github.com/jhoicas/bomgen/internal/application/usecase"
	"github.com/jhoicas/bomgen/internal/domain"
	"github.com/jhoicas/bomgen/internal/domain/entity"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType  = "application/pdf"
)

// BOMHandler maneja las peticiones HTTP de generación y comparación.
type BOMHandler struct {
	generateUC *usecase.GenerateUseCase
	compareUC  *usecase.CompareUseCase
	templateUC *usecase.TemplateUseCase
}

// NewBOMHandler construye el handler.
func NewBOMHandler(generateUC *usecase.GenerateUseCase, compareUC *usecase.CompareUseCase, templateUC *usecase.TemplateUseCase) *BOMHandler {
	return &BOMHandler{generateUC: generateUC, compareUC: compareUC, templateUC: templateUC}
}

// Generate godoc
// @Summary      Generar archivo BOM
// @Tags         bom
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        body  body  dto.GenerateRequest  true  "Configuración del generador"
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/bom/generate [post]
func (h *BOMHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	var buf bytes.Buffer
	doc, err := h.generateUC.GenerateFile(c.Context(), req, nil, &buf)
	if err != nil {
		return respondError(c, err)
	}

	filename := fmt.Sprintf("bom_%s_%s.xlsx", doc.Name, uuid.New().String()[:8])
	return sendAttachment(c, buf.Bytes(), filename, xlsxContentType)
}

// Compare godoc
// @Summary      Comparar dos archivos BOM
// @Tags         bom
// @Accept       multipart/form-data
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        baseline   formData  file    true   "BOM línea base"
// @Param        candidate  formData  file    true   "BOM candidato"
// @Param        format     query     string  false  "xlsx (default) o pdf"
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/bom/compare [post]
func (h *BOMHandler) Compare(c *fiber.Ctx) error {
	baseline, err := h.loadUpload(c, "baseline")
	if err != nil {
		return respondError(c, err)
	}
	candidate, err := h.loadUpload(c, "candidate")
	if err != nil {
		return respondError(c, err)
	}

	if c.Query("format") == "pdf" {
		data, err := h.compareUC.WritePDF(c.Context(), baseline, candidate)
		if err != nil {
			return respondError(c, err)
		}
		return sendAttachment(c, data, "bom_compare.pdf", pdfContentType)
	}

	var buf bytes.Buffer
	if _, err := h.compareUC.WriteReport(c.Context(), baseline, candidate, &buf); err != nil {
		return respondError(c, err)
	}
	return sendAttachment(c, buf.Bytes(), "bom_compare.xlsx", xlsxContentType)
}

// Summary godoc
// @Summary      Resumen JSON de la comparación (sin archivo)
// @Tags         bom
// @Accept       multipart/form-data
// @Produce      json
// @Param        baseline   formData  file  true  "BOM línea base"
// @Param        candidate  formData  file  true  "BOM candidato"
// @Success      200  {object}  dto.CompareSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/bom/compare/summary [post]
func (h *BOMHandler) Summary(c *fiber.Ctx) error {
	baseline, err := h.loadUpload(c, "baseline")
	if err != nil {
		return respondError(c, err)
	}
	candidate, err := h.loadUpload(c, "candidate")
	if err != nil {
		return respondError(c, err)
	}
	entries, err := h.compareUC.Compare(c.Context(), baseline, candidate)
	if err != nil {
		return respondError(c, err)
	}
	sum := entity.Summarize(entries)
	return c.JSON(dto.CompareSummaryResponse{
		Baseline:  baseline.Name,
		Candidate: candidate.Name,
		Added:     sum.Added,
		Removed:   sum.Removed,
		Changed:   sum.Changed,
		Unchanged: sum.Unchanged,
	})
}

// loadUpload lee y valida un BOM subido como multipart.
func (h *BOMHandler) loadUpload(c *fiber.Ctx, field string) (*entity.Document, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("archivo %q requerido: %w", field, domain.ErrValidation)
	}
	return h.loadMultipart(c, fh)
}

func (h *BOMHandler) loadMultipart(c *fiber.Ctx, fh *multipart.FileHeader) (*entity.Document, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("abrir %q: %w", fh.Filename, domain.ErrIO)
	}
	defer file.Close()
	return h.templateUC.Load(c.Context(), file, fh.Filename)
}

func sendAttachment(c *fiber.Ctx, data []byte, filename, contentType string) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}
