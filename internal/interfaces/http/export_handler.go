package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/hugolinos1/freezy-api/internal/application/dto"
	"github.com/hugolinos1/freezy-api/internal/application/usecase"
	"github.com/hugolinos1/freezy-api/internal/domain"
)

// ExportHandler export CSV de l'inventaire (protégé).
type ExportHandler struct {
	uc *usecase.ExportUseCase
}

// NewExportHandler construit le handler.
func NewExportHandler(uc *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// CSV godoc
// @Summary      Exporter l'inventaire en CSV
// @Description  Colonnes séparées par des points-virgules, téléchargées en pièce jointe.
// @Tags         export
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string  "contenu CSV"
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/export/csv [get]
func (h *ExportHandler) CSV(c *fiber.Ctx) error {
	filename, content, err := h.uc.CSV(GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrEmptyInventory) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMPTY_INVENTORY", Message: "Aucun produit à exporter"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.SendString(content)
}
