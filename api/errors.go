package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Kind classifies a backend failure into the buckets the pages care about.
type Kind int

const (
	KindUnknown Kind = iota
	KindAuth         // 401/403: session invalid or insufficient permission
	KindNotFound     // 404
	KindConflict     // 409: duplicate name
	KindServer       // 5xx
	KindConnectivity // transport failure, no response at all
)

// Error is the classified form every client method returns on failure.
type Error struct {
	Kind    Kind
	Status  int
	Message string // backend-supplied detail when present
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.Status, e.Message)
	}
	if e.Kind == KindConnectivity {
		return "api: connection failed"
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// UserMessage maps the taxonomy to the Spanish copy users see.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case KindAuth:
		return "No tienes autorización para realizar esta acción. Tu sesión puede haber expirado."
	case KindNotFound:
		return "El recurso solicitado no existe o fue eliminado."
	case KindConflict:
		return "Ya existe un registro con ese nombre. Elige otro título."
	case KindConnectivity:
		return "No se pudo conectar con el servidor. Verifica tu conexión."
	default:
		return "Ocurrió un error en el servidor. Intenta de nuevo más tarde."
	}
}

func classify(status int, body []byte) *Error {
	e := &Error{Status: status}
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		e.Kind = KindAuth
	case status == http.StatusNotFound:
		e.Kind = KindNotFound
	case status == http.StatusConflict:
		e.Kind = KindConflict
	case status >= 500:
		e.Kind = KindServer
	}

	var detail struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &detail) == nil {
		if detail.Message != "" {
			e.Message = detail.Message
		} else {
			e.Message = detail.Error
		}
	}
	return e
}

// AsError unwraps err into *Error; non-client errors come back as
// connectivity failures so callers always have a kind to branch on.
func AsError(err error) *Error {
	if apiErr, ok := err.(*Error); ok {
		return apiErr
	}
	return &Error{Kind: KindConnectivity, Message: err.Error()}
}

// IsAuth reports a 401/403 classification.
func IsAuth(err error) bool { return AsError(err).Kind == KindAuth }

// IsConflict reports a 409 classification.
func IsConflict(err error) bool { return AsError(err).Kind == KindConflict }

// IsNotFound reports a 404 classification.
func IsNotFound(err error) bool { return AsError(err).Kind == KindNotFound }
