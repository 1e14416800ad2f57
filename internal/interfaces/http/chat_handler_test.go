package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vstock/ventas-api/internal/application/chat"
	"github.com/vstock/ventas-api/internal/application/dto"
	"github.com/vstock/ventas-api/internal/application/ports"
	"github.com/vstock/ventas-api/internal/domain/repository"
	apphttp "github.com/vstock/ventas-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// stubSalesRepo responde todas las agregaciones con datos fijos.
type stubSalesRepo struct{}

func (stubSalesRepo) TotalSales(context.Context, repository.SalesFilter) (decimal.Decimal, error) {
	return decimal.NewFromFloat(1234.5), nil
}

func (stubSalesRepo) GetMetrics(context.Context, repository.SalesFilter) (*repository.SalesMetrics, error) {
	return &repository.SalesMetrics{TotalSales: decimal.NewFromFloat(1234.5), UniqueLocations: 2, ExpectedRevenue: decimal.NewFromFloat(1234.5)}, nil
}

func (stubSalesRepo) SalesByLocation(context.Context, repository.SalesFilter) ([]repository.LabeledAmount, error) {
	return []repository.LabeledAmount{
		{Label: "Delhi", Amount: decimal.NewFromInt(1000)},
		{Label: "Mumbai", Amount: decimal.NewFromFloat(234.5)},
	}, nil
}

func (stubSalesRepo) SalesByProduct(context.Context, repository.SalesFilter) ([]repository.LabeledAmount, error) {
	return nil, nil
}

func (stubSalesRepo) SalesByPeriod(context.Context, repository.SalesFilter, repository.Granularity) ([]repository.LabeledAmount, error) {
	return nil, nil
}

func (stubSalesRepo) SalesByChannel(context.Context, repository.SalesFilter) ([]repository.LabeledAmount, error) {
	return nil, nil
}

func (stubSalesRepo) SalesByGender(context.Context, repository.SalesFilter) ([]repository.LabeledAmount, error) {
	return nil, nil
}

func (stubSalesRepo) SalesByAge(context.Context, repository.SalesFilter) ([]repository.LabeledAmount, error) {
	return nil, nil
}

func (stubSalesRepo) TopProductsByQuantity(context.Context, repository.SalesFilter) ([]repository.LabeledCount, error) {
	return nil, nil
}

// stubCompleter devuelve siempre la misma respuesta generativa.
type stubCompleter struct{ reply string }

func (s stubCompleter) Complete(context.Context, []ports.CompletionTurn, string) (string, error) {
	return s.reply, nil
}

func buildChatApp(t *testing.T) *fiber.App {
	t.Helper()
	store := chat.NewSessionStore()
	orchestrator := chat.NewOrchestrator(
		chat.NewDispatcher(stubSalesRepo{}),
		stubCompleter{reply: "hola"},
	)
	handler := apphttp.NewChatHandler(store, orchestrator)

	app := fiber.New()
	app.Post("/api/chat/sessions", handler.CreateSession)
	app.Post("/api/chat/sessions/:id/messages", handler.PostMessage)
	app.Get("/api/chat/sessions/:id", handler.GetSession)
	app.Delete("/api/chat/sessions/:id", handler.DeleteSession)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestChat_CicloDeSesionCompleto(t *testing.T) {
	app := buildChatApp(t)

	// Abrir sesión
	resp := postJSON(t, app, "/api/chat/sessions", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.ChatSessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	require.NotEmpty(t, created.SessionID)

	// Pregunta de ventas → dispatcher, con tabla graficable
	resp = postJSON(t, app, "/api/chat/sessions/"+created.SessionID+"/messages",
		`{"message":"show me sales by location"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var msg dto.ChatMessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&msg))
	resp.Body.Close()

	assert.Contains(t, msg.Reply, "Sales by location:")
	assert.Contains(t, msg.Reply, "$1,000.00")
	require.NotNil(t, msg.Chart)
	assert.Equal(t, "bar", msg.Chart.Kind)
	assert.Len(t, msg.Chart.Rows, 2)
	assert.Equal(t, 2, msg.Turns, "turno user + turno assistant")

	// Pregunta general → fallback generativo
	resp = postJSON(t, app, "/api/chat/sessions/"+created.SessionID+"/messages",
		`{"message":"what can you do?"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	msg = dto.ChatMessageResponse{} // el decode no limpia campos ausentes (chart omitempty)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&msg))
	resp.Body.Close()
	assert.Equal(t, "hola", msg.Reply)
	assert.Nil(t, msg.Chart)
	assert.Equal(t, 4, msg.Turns)

	// Transcripción completa en orden
	req := httptest.NewRequest(http.MethodGet, "/api/chat/sessions/"+created.SessionID, nil)
	getResp, err := app.Test(req, -1)
	require.NoError(t, err)
	var transcript dto.ChatSessionResponse
	require.NoError(t, json.NewDecoder(getResp.Body).Decode(&transcript))
	getResp.Body.Close()
	require.Len(t, transcript.Turns, 4)
	assert.Equal(t, "user", transcript.Turns[0].Role)
	assert.Equal(t, "assistant", transcript.Turns[1].Role)
	assert.NotNil(t, transcript.Turns[1].Chart)

	// Cerrar la sesión la descarta
	req = httptest.NewRequest(http.MethodDelete, "/api/chat/sessions/"+created.SessionID, nil)
	delResp, err := app.Test(req, -1)
	require.NoError(t, err)
	delResp.Body.Close()
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/chat/sessions/"+created.SessionID, nil)
	getResp, err = app.Test(req, -1)
	require.NoError(t, err)
	getResp.Body.Close()
	assert.Equal(t, http.StatusNotFound, getResp.StatusCode)
}

func TestChat_SesionInexistente_Retorna404(t *testing.T) {
	app := buildChatApp(t)
	resp := postJSON(t, app, "/api/chat/sessions/no-such-session/messages", `{"message":"hola"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestChat_MensajeVacio_Retorna400(t *testing.T) {
	app := buildChatApp(t)

	resp := postJSON(t, app, "/api/chat/sessions", "")
	var created dto.ChatSessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	resp = postJSON(t, app, "/api/chat/sessions/"+created.SessionID+"/messages", `{"message":"   "}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
