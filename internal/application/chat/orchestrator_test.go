package chat_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vstock/ventas-api/internal/application/chat"
	"github.com/vstock/ventas-api/internal/application/ports"
	"github.com/vstock/ventas-api/internal/domain"
	"github.com/vstock/ventas-api/internal/domain/repository"
)

// fakeCompleter registra las llamadas al servicio generativo.
type fakeCompleter struct {
	reply   string
	err     error
	calls   int
	history []ports.CompletionTurn
}

func (f *fakeCompleter) Complete(_ context.Context, history []ports.CompletionTurn, _ string) (string, error) {
	f.calls++
	f.history = history
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newOrchestrator(repo *fakeSalesRepo, llm *fakeCompleter) *chat.Orchestrator {
	return chat.NewOrchestrator(chat.NewDispatcher(repo), llm)
}

// ──────────────────────────────────────────────────────────────────────────────
// Enrutamiento
// ──────────────────────────────────────────────────────────────────────────────

func TestHandleMessage_MencionaSales_NuncaLlamaAlLLM(t *testing.T) {
	llm := &fakeCompleter{reply: "no debería usarse"}
	repo := &fakeSalesRepo{byPeriod: map[repository.Granularity][]repository.LabeledAmount{
		repository.ByYear: {{Label: "2024", Amount: amt("100")}},
	}}
	o := newOrchestrator(repo, llm)
	s := chat.NewSessionStore().Create()

	turn, err := o.HandleMessage(context.Background(), s, "what are sales by year")
	require.NoError(t, err)
	assert.Equal(t, 0, llm.calls, "una pregunta con 'sales' jamás va al servicio generativo")
	assert.Equal(t, chat.RoleAssistant, turn.Role)
	require.NotNil(t, turn.Chart, "la tabla queda adjunta al turno assistant")
	assert.Equal(t, "Year", turn.Chart.XLabel)
}

func TestHandleMessage_SinSales_VaAlLLMConHistorial(t *testing.T) {
	llm := &fakeCompleter{reply: "hola!"}
	o := newOrchestrator(&fakeSalesRepo{}, llm)
	s := chat.NewSessionStore().Create()

	// Primer intercambio para poblar historial.
	_, err := o.HandleMessage(context.Background(), s, "hello")
	require.NoError(t, err)

	_, err = o.HandleMessage(context.Background(), s, "tell me a joke")
	require.NoError(t, err)
	assert.Equal(t, 2, llm.calls)
	// Al segundo mensaje el historial previo tiene user+assistant del primero.
	require.Len(t, llm.history, 2)
	assert.Equal(t, chat.RoleUser, llm.history[0].Role)
	assert.Equal(t, "hello", llm.history[0].Text)
	assert.Equal(t, chat.RoleAssistant, llm.history[1].Role)
}

func TestHandleMessage_MensajeVacio_Validacion(t *testing.T) {
	o := newOrchestrator(&fakeSalesRepo{}, &fakeCompleter{})
	s := chat.NewSessionStore().Create()

	_, err := o.HandleMessage(context.Background(), s, "   ")
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	assert.Equal(t, 0, s.Len(), "un mensaje vacío no toca la transcripción")
}

func TestHandleMessage_FalloDelLLM_ErrorExterno(t *testing.T) {
	llm := &fakeCompleter{err: errors.New("HTTP 500")}
	o := newOrchestrator(&fakeSalesRepo{}, llm)
	s := chat.NewSessionStore().Create()

	_, err := o.HandleMessage(context.Background(), s, "hello")
	require.Error(t, err)
	assert.Equal(t, domain.KindExternal, domain.KindOf(err))
	assert.NotContains(t, domain.UserMessage(err), "500", "sin detalle interno hacia el usuario")
	assert.Equal(t, 1, s.Len(), "el turno user se conserva aunque falle el modelo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Transcripción
// ──────────────────────────────────────────────────────────────────────────────

func TestHandleMessage_TranscripcionAlternada(t *testing.T) {
	llm := &fakeCompleter{reply: "ok"}
	o := newOrchestrator(&fakeSalesRepo{total: decimal.NewFromInt(7)}, llm)
	s := chat.NewSessionStore().Create()

	const n = 5
	for i := 0; i < n; i++ {
		// Mezclar rutas: pares al dispatcher, impares al LLM.
		msg := fmt.Sprintf("message %d", i)
		if i%2 == 0 {
			msg = fmt.Sprintf("total sales %d", i)
		}
		_, err := o.HandleMessage(context.Background(), s, msg)
		require.NoError(t, err)
	}

	turns := s.Turns()
	require.Len(t, turns, 2*n, "N mensajes producen exactamente 2N turnos")
	for i, turn := range turns {
		if i%2 == 0 {
			assert.Equal(t, chat.RoleUser, turn.Role, "turno %d debe ser user", i)
		} else {
			assert.Equal(t, chat.RoleAssistant, turn.Role, "turno %d debe ser assistant", i)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// SessionStore
// ──────────────────────────────────────────────────────────────────────────────

func TestSessionStore_CicloDeVida(t *testing.T) {
	st := chat.NewSessionStore()

	s := st.Create()
	require.NotEmpty(t, s.ID)

	got, err := st.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	st.Delete(s.ID)
	_, err = st.Get(s.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "la sesión cerrada se descarta")

	_, err = st.Get("no-such-session")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
