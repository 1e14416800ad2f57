package ports

import "context"

// CompletionTurn es un turno previo de la conversación que se envía al modelo.
type CompletionTurn struct {
	Role string // "user" | "assistant"
	Text string
}

// ChatCompleter define el puerto de salida hacia el servicio generativo de
// texto. Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta
// interfaz; la aplicación solo conoce este contrato, no la implementación.
type ChatCompleter interface {
	// Complete envía el historial previo más el mensaje nuevo y devuelve la
	// respuesta del modelo. El contexto debe llevar un timeout para evitar
	// bloqueos en llamadas externas.
	Complete(ctx context.Context, history []CompletionTurn, prompt string) (string, error)
}
