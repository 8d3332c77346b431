package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hugolinos1/freezy-api/internal/application/dto"
	"github.com/hugolinos1/freezy-api/internal/domain/voice"
)

// VoiceHandler analyse de transcription vocale (protégé).
type VoiceHandler struct{}

// NewVoiceHandler construit le handler.
func NewVoiceHandler() *VoiceHandler {
	return &VoiceHandler{}
}

// Analyze godoc
// @Summary      Analyser une transcription vocale
// @Description  Déduit un brouillon de produit (nom, type, quantité, poids, tiroir) d'une phrase dictée en français.
// @Tags         voice
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VoiceAnalyzeRequest  true  "transcription"
// @Success      200   {object}  dto.VoiceDraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/voice/analyze [post]
func (h *VoiceHandler) Analyze(c *fiber.Ctx) error {
	var in dto.VoiceAnalyzeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if in.Transcript == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "transcript est requis"})
	}
	draft := voice.Analyze(in.Transcript)
	return c.JSON(dto.VoiceDraftResponse{
		Name:     draft.Name,
		Type:     draft.Type,
		Quantity: draft.Quantity,
		Weight:   draft.Weight,
		Drawer:   draft.Drawer,
	})
}
