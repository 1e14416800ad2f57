// Package chat implementa el chatbot de ventas: el dispatcher de intenciones
// sobre la tabla de ventas, el formateador de resultados y el orquestador que
// decide entre consulta canned y el servicio generativo.
package chat

import (
	"sync"

	"github.com/google/uuid"

	"github.com/vstock/ventas-api/internal/domain"
)

// Roles de los turnos de la transcripción.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn es un turno de la conversación. Chart solo viene en turnos assistant
// que respondieron una consulta de ventas agrupada.
type Turn struct {
	Role  string
	Text  string
	Chart *ChartTable
}

// Session es la transcripción de una sesión interactiva. Vive en memoria:
// se crea al iniciar sesión de chat, se descarta al cerrarla y no sobrevive
// reinicios del proceso.
type Session struct {
	ID string

	mu    sync.Mutex
	turns []Turn
}

// Append agrega un turno al final de la transcripción.
func (s *Session) Append(t Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, t)
}

// Turns devuelve una copia de la transcripción en orden.
func (s *Session) Turns() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len devuelve el número de turnos.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}

// SessionStore guarda las sesiones activas del proceso, indexadas por ID.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore construye un store vacío.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Create abre una sesión nueva con ID aleatorio.
func (st *SessionStore) Create() *Session {
	s := &Session{ID: uuid.New().String()}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get devuelve la sesión o domain.ErrNotFound si no existe (o ya se cerró).
func (st *SessionStore) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// Delete cierra una sesión y descarta su transcripción.
func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}
