package dto

// ChatMessageRequest entrada de POST /api/chat/sessions/:id/messages.
type ChatMessageRequest struct {
	Message string `json:"message" validate:"required,min=1"`
}

// ChartRowDTO fila (etiqueta, valor) de la tabla graficable.
type ChartRowDTO struct {
	Label string `json:"label"`
	Value string `json:"value"` // decimal serializado como string
}

// ChartDTO payload graficable adjunto a una respuesta del chatbot.
type ChartDTO struct {
	Title  string        `json:"title"`
	Kind   string        `json:"kind"` // bar | line
	XLabel string        `json:"x_label"`
	YLabel string        `json:"y_label"`
	Rows   []ChartRowDTO `json:"rows"`
}

// ChatTurnDTO un turno de la transcripción.
type ChatTurnDTO struct {
	Role  string    `json:"role"` // user | assistant
	Text  string    `json:"text"`
	Chart *ChartDTO `json:"chart,omitempty"`
}

// ChatMessageResponse salida de un mensaje procesado.
type ChatMessageResponse struct {
	SessionID string    `json:"session_id"`
	Reply     string    `json:"reply"`
	Chart     *ChartDTO `json:"chart,omitempty"`
	Turns     int       `json:"turns"` // largo de la transcripción tras el mensaje
}

// ChatSessionResponse salida de crear/consultar una sesión.
type ChatSessionResponse struct {
	SessionID string        `json:"session_id"`
	Turns     []ChatTurnDTO `json:"turns,omitempty"`
}
