package sdk

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// CourseStatus is the server-side lifecycle state of a course.
type CourseStatus string

const (
	CoursePending   CourseStatus = "PENDIENTE"
	CourseActive    CourseStatus = "ACTIVO"
	CourseInactive  CourseStatus = "INACTIVO"
	CourseCompleted CourseStatus = "COMPLETADO"
	CourseCancelled CourseStatus = "CANCELADO"
	CourseRejected  CourseStatus = "RECHAZADO"
)

// CourseStatuses lists every status in lifecycle order.
var CourseStatuses = []CourseStatus{
	CoursePending, CourseActive, CourseInactive, CourseCompleted, CourseCancelled, CourseRejected,
}

// Valid reports whether s is a known status.
func (s CourseStatus) Valid() bool {
	for _, known := range CourseStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Label returns the display text for the status.
func (s CourseStatus) Label() string {
	switch s {
	case CoursePending:
		return "Pendiente de aprobación"
	case CourseActive:
		return "Activo"
	case CourseInactive:
		return "Inactivo"
	case CourseCompleted:
		return "Completado"
	case CourseCancelled:
		return "Cancelado"
	case CourseRejected:
		return "Rechazado"
	}
	return string(s)
}

// Course is a course as served by /cursos.
type Course struct {
	ID          int64        `json:"id,omitempty"`
	Titulo      string       `json:"titulo"`
	Descripcion string       `json:"descripcion"`
	Estado      CourseStatus `json:"estado,omitempty"`
}

// User is a platform user as served by /usuarios.
// Rol is decoded from whichever role shape the backend returns.
type User struct {
	ID            int64  `json:"id,omitempty" mapstructure:"id"`
	Nombre        string `json:"nombre" mapstructure:"nombre"`
	Email         string `json:"email" mapstructure:"email"`
	Password      string `json:"password,omitempty" mapstructure:"password"`
	Rol           Role   `json:"rol,omitempty" mapstructure:"-"`
	Telefono      string `json:"telefono,omitempty" mapstructure:"telefono"`
	FechaRegistro string `json:"fechaRegistro,omitempty" mapstructure:"-"`
}

// UnmarshalJSON accepts every role encoding handled by ExtractRole.
func (u *User) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var decoded User
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &decoded,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("decode user: %w", err)
	}
	if role, ok := ExtractRole(raw); ok {
		decoded.Rol = role
	}
	// Dates may arrive as arrays; only the string form is kept.
	if date, ok := raw["fechaRegistro"].(string); ok {
		decoded.FechaRegistro = date
	}

	*u = decoded
	return nil
}

// UserInput is the body for user create and update. Rol carries the bare
// role name (ESTUDIANTE, DOCENTE, ADMIN).
type UserInput struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Rol      string `json:"rol,omitempty"`
	Telefono string `json:"telefono,omitempty"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nombre   string `json:"nombre"`
	Role     Role   `json:"role"`
}

// AuthResponse is returned by /auth/login and /auth/register.
// Every field is optional.
type AuthResponse struct {
	Token     string `json:"token,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	UserID    int64  `json:"userId,omitempty"`
	UserName  string `json:"userName,omitempty"`
	UserEmail string `json:"userEmail,omitempty"`
	UserRole  string `json:"userRole,omitempty"`
}

// MessageResponse is the {message} or {error} body of action endpoints.
type MessageResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ApprovalStats holds the course approval counters.
type ApprovalStats struct {
	Pendientes int `json:"pendientes"`
	Aprobados  int `json:"aprobados"`
	Rechazados int `json:"rechazados"`
}

// Enrollment links a user to a course.
type Enrollment struct {
	ID      int64  `json:"id,omitempty"`
	Usuario User   `json:"usuario"`
	Curso   Course `json:"curso"`
}
