package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// ErrorKind clasifica los fallos en las tres familias que la capa HTTP y el
// chatbot necesitan distinguir: error del usuario, fallo de acceso a datos y
// fallo de un servicio externo. Un error de programación cae en KindInternal.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindDataAccess
	KindExternal
)

// Error es un error con clase. Detail es para el operador (logs); Msg es el
// texto apto para mostrar al usuario. Nunca se mezclan.
type Error struct {
	Kind   ErrorKind
	Msg    string // mensaje para el usuario
	Detail error  // causa interna, no se expone
}

func (e *Error) Error() string {
	if e.Detail != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Detail)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Detail }

// NewValidationError crea un error de validación con mensaje para el usuario.
func NewValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// NewDataAccessError envuelve un fallo de consulta/conexión a la base de datos.
func NewDataAccessError(msg string, cause error) *Error {
	return &Error{Kind: KindDataAccess, Msg: msg, Detail: cause}
}

// NewExternalError envuelve un fallo de un servicio externo (ej. el LLM).
func NewExternalError(msg string, cause error) *Error {
	return &Error{Kind: KindExternal, Msg: msg, Detail: cause}
}

// KindOf devuelve la clase de un error; KindInternal si no es un *Error.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// UserMessage devuelve el texto mostrable de un error con clase; para errores
// sin clasificar devuelve un genérico en lugar de filtrar detalle interno.
func UserMessage(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Msg
	}
	return "ocurrió un error inesperado"
}
