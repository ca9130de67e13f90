package sdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrNotLoggedIn is returned when an operation needs a session and none is stored.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrEnrollmentIDMissing is returned when an enrollment is cancelled without its id.
	ErrEnrollmentIDMissing = errors.New("enrollment id is required")
)

// APIError is a failed backend call. Status 0 means the server could not be reached.
type APIError struct {
	Status int
	// Message is the backend-supplied message, if any.
	Message string
	// UserMessage is the human-readable text derived from Status and Message.
	UserMessage string
	Method      string
	URL         string
	Body        []byte
	Err         error
}

func (e *APIError) Error() string {
	var b strings.Builder
	if e.Method != "" {
		fmt.Fprintf(&b, "%s %s: ", e.Method, e.URL)
	}
	if e.Status == 0 {
		b.WriteString("transport failure")
	} else {
		fmt.Fprintf(&b, "status %d", e.Status)
	}
	if e.UserMessage != "" {
		fmt.Fprintf(&b, ": %s", e.UserMessage)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *APIError) Unwrap() error { return e.Err }

// NormalizeMessage maps a status code and optional backend message onto the
// message shown to the user.
func NormalizeMessage(status int, backendMessage string) string {
	withFallback := func(fallback string) string {
		if backendMessage != "" {
			return backendMessage
		}
		return fallback
	}

	switch status {
	case 0:
		return "No se puede conectar con el servidor"
	case http.StatusBadRequest:
		return withFallback("Solicitud incorrecta")
	case http.StatusUnauthorized:
		return "No autorizado"
	case http.StatusForbidden:
		return "No tienes permisos"
	case http.StatusNotFound:
		return withFallback("Recurso no encontrado")
	case http.StatusInternalServerError:
		return withFallback("Error del servidor")
	default:
		return withFallback(fmt.Sprintf("Error %d", status))
	}
}

// newAPIError builds the error for a non-2xx response body.
func newAPIError(method, url string, status int, body []byte) *APIError {
	msg := backendMessage(body)
	return &APIError{
		Status:      status,
		Message:     msg,
		UserMessage: NormalizeMessage(status, msg),
		Method:      method,
		URL:         url,
		Body:        body,
	}
}

// newTransportError builds the error for a request that never got a response.
func newTransportError(method, url string, err error) *APIError {
	return &APIError{
		UserMessage: NormalizeMessage(0, ""),
		Method:      method,
		URL:         url,
		Err:         err,
	}
}

func backendMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}

// UserMessage returns the user-facing message for err. Errors that did not come
// from the backend are rendered with their own text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage
	}
	return err.Error()
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// IsSessionInvalidating reports whether err is a 401 or 403 response, which
// clears the session.
func IsSessionInvalidating(err error) bool {
	return IsStatus(err, http.StatusUnauthorized) || IsStatus(err, http.StatusForbidden)
}

// IsSessionInvalidatingStatus reports whether status clears the session.
func IsSessionInvalidatingStatus(status int) bool {
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}
