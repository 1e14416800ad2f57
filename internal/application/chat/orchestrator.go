package chat

import (
	"context"
	"strings"
	"time"

	"github.com/vstock/ventas-api/internal/application/ports"
	"github.com/vstock/ventas-api/internal/domain"
)

// llmTimeout acota cada llamada al servicio generativo; las latencias del
// modelo no deben bloquear los goroutines del servidor.
const llmTimeout = 10 * time.Second

// Orchestrator enruta cada mensaje de una sesión: las preguntas que
// mencionan "sales" van al dispatcher de consultas; el resto se reenvía al
// servicio generativo con la transcripción previa como contexto.
type Orchestrator struct {
	dispatcher *Dispatcher
	completer  ports.ChatCompleter
}

// NewOrchestrator construye el orquestador.
func NewOrchestrator(dispatcher *Dispatcher, completer ports.ChatCompleter) *Orchestrator {
	return &Orchestrator{dispatcher: dispatcher, completer: completer}
}

// HandleMessage procesa un mensaje del usuario dentro de una sesión:
//
//  1. Agrega el turno user a la transcripción.
//  2. Si el mensaje contiene "sales" (sin distinguir mayúsculas) lo resuelve
//     el dispatcher y el resumen (más la tabla, si hay) se agrega como turno
//     assistant.
//  3. En otro caso se envía la transcripción previa más el mensaje al
//     servicio generativo bajo un timeout de 10 s; su respuesta se agrega
//     como turno assistant.
//
// Cualquier fallo devuelve un error con clase; el turno user ya agregado se
// conserva (el usuario sí escribió el mensaje) pero no se agrega un turno
// assistant fallido.
func (o *Orchestrator) HandleMessage(ctx context.Context, session *Session, text string) (*Turn, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewValidationError("message must not be empty")
	}

	// Historial previo al mensaje nuevo, para el fallback generativo.
	history := session.Turns()
	session.Append(Turn{Role: RoleUser, Text: text})

	if strings.Contains(strings.ToLower(text), "sales") {
		answer, err := o.dispatcher.Dispatch(ctx, text)
		if err != nil {
			return nil, err
		}
		turn := Turn{Role: RoleAssistant, Text: answer.Text, Chart: answer.Chart}
		session.Append(turn)
		return &turn, nil
	}

	reply, err := o.complete(ctx, history, text)
	if err != nil {
		return nil, err
	}
	turn := Turn{Role: RoleAssistant, Text: reply}
	session.Append(turn)
	return &turn, nil
}

// complete llama al servicio generativo con timeout y frontera de error
// explícita: el fallo externo nunca se propaga crudo al usuario.
func (o *Orchestrator) complete(ctx context.Context, history []Turn, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	turns := make([]ports.CompletionTurn, 0, len(history))
	for _, t := range history {
		turns = append(turns, ports.CompletionTurn{Role: t.Role, Text: t.Text})
	}

	reply, err := o.completer.Complete(ctx, turns, prompt)
	if err != nil {
		return "", domain.NewExternalError("the assistant is unavailable right now", err)
	}
	return reply, nil
}
