package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bin-inventory-api/internal/application/dto"
)

// LabelService hoja de etiquetas QR (labels.UseCase).
type LabelService interface {
	Download(ctx context.Context, materialID string, copies int) ([]byte, string, error)
}

// LabelHandler descarga de etiquetas de escaneo.
type LabelHandler struct {
	uc LabelService
}

// NewLabelHandler construye el handler.
func NewLabelHandler(uc LabelService) *LabelHandler {
	return &LabelHandler{uc: uc}
}

// Download godoc
// @Summary      Hoja de etiquetas QR de un material
// @Description  PDF A4 con los QR "{code}_IN" y "{code}_OUT" y la configuración de bins.
// @Tags         materials
// @Security     Bearer
// @Produce      application/pdf
// @Param        id      path   string  true   "ID del material"
// @Param        copies  query  int     false  "Pares de etiquetas (máx. 24)"  default(1)
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/labels.pdf [get]
func (h *LabelHandler) Download(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	pdf, filename, err := h.uc.Download(c.UserContext(), id, c.QueryInt("copies", 1))
	if err != nil {
		return writeDomainError(c, err)
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdf)
}
