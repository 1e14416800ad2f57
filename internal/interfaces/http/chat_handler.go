package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vstock/ventas-api/internal/application/chat"
	"github.com/vstock/ventas-api/internal/application/dto"
)

// ChatHandler expone las sesiones del chatbot de ventas.
type ChatHandler struct {
	store        *chat.SessionStore
	orchestrator *chat.Orchestrator
}

// NewChatHandler construye el handler de chat.
func NewChatHandler(store *chat.SessionStore, orchestrator *chat.Orchestrator) *ChatHandler {
	return &ChatHandler{store: store, orchestrator: orchestrator}
}

// CreateSession godoc
// @Summary      Abrir una sesión de chat
// @Tags         chat
// @Produce      json
// @Success      201  {object}  dto.ChatSessionResponse
// @Router       /api/chat/sessions [post]
func (h *ChatHandler) CreateSession(c *fiber.Ctx) error {
	session := h.store.Create()
	return c.Status(fiber.StatusCreated).JSON(dto.ChatSessionResponse{SessionID: session.ID})
}

// PostMessage godoc
// @Summary      Enviar un mensaje a la sesión
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "session_id"
// @Param        body  body  dto.ChatMessageRequest true  "message"
// @Success      200   {object}  dto.ChatMessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/chat/sessions/{id}/messages [post]
func (h *ChatHandler) PostMessage(c *fiber.Ctx) error {
	session, err := h.store.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	var in dto.ChatMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	turn, err := h.orchestrator.HandleMessage(c.Context(), session, in.Message)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ChatMessageResponse{
		SessionID: session.ID,
		Reply:     turn.Text,
		Chart:     toChartDTO(turn.Chart),
		Turns:     session.Len(),
	})
}

// GetSession godoc
// @Summary      Transcripción de la sesión
// @Tags         chat
// @Produce      json
// @Param        id  path  string  true  "session_id"
// @Success      200  {object}  dto.ChatSessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chat/sessions/{id} [get]
func (h *ChatHandler) GetSession(c *fiber.Ctx) error {
	session, err := h.store.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	turns := session.Turns()
	out := dto.ChatSessionResponse{
		SessionID: session.ID,
		Turns:     make([]dto.ChatTurnDTO, 0, len(turns)),
	}
	for _, t := range turns {
		out.Turns = append(out.Turns, dto.ChatTurnDTO{
			Role:  t.Role,
			Text:  t.Text,
			Chart: toChartDTO(t.Chart),
		})
	}
	return c.JSON(out)
}

// DeleteSession godoc
// @Summary      Cerrar y descartar la sesión
// @Tags         chat
// @Param        id  path  string  true  "session_id"
// @Success      204
// @Router       /api/chat/sessions/{id} [delete]
func (h *ChatHandler) DeleteSession(c *fiber.Ctx) error {
	h.store.Delete(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// toChartDTO serializa la tabla graficable; los montos viajan como string
// para no perder precisión decimal en JSON.
func toChartDTO(chart *chat.ChartTable) *dto.ChartDTO {
	if chart == nil {
		return nil
	}
	out := &dto.ChartDTO{
		Title:  chart.Title,
		Kind:   chart.Kind,
		XLabel: chart.XLabel,
		YLabel: chart.YLabel,
		Rows:   make([]dto.ChartRowDTO, 0, len(chart.Rows)),
	}
	for _, r := range chart.Rows {
		out.Rows = append(out.Rows, dto.ChartRowDTO{Label: r.Label, Value: r.Value.String()})
	}
	return out
}
