package cmdutil

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
)

// Minimum field lengths of the forms.
const (
	MinCourseTitle       = 3
	MinCourseDescription = 10
	MinUserName          = 3
	MinUserPassword      = 6
	MinLoginPassword     = 4
)

var phonePattern = regexp.MustCompile(`^\d{9,15}$`)

// FieldError is a form field that failed validation.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Message: "Este campo es obligatorio"}
	}
	return nil
}

func minLength(field, value string, n int) error {
	if err := required(field, value); err != nil {
		return err
	}
	if utf8.RuneCountInString(value) < n {
		return &FieldError{Field: field, Message: fmt.Sprintf("Mínimo %d caracteres", n)}
	}
	return nil
}

// ValidateEmail accepts a bare address such as ana@example.com.
func ValidateEmail(field, value string) error {
	if err := required(field, value); err != nil {
		return err
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || addr.Name != "" {
		return &FieldError{Field: field, Message: "Email inválido"}
	}
	return nil
}

// ValidateLogin checks the login form.
func ValidateLogin(email, password string) error {
	if err := ValidateEmail("email", email); err != nil {
		return err
	}
	return minLength("password", password, MinLoginPassword)
}

// ValidateRegistration checks the registration form.
func ValidateRegistration(nombre, email, password, confirm string) error {
	if err := minLength("nombre", nombre, MinUserName); err != nil {
		return err
	}
	if err := ValidateEmail("email", email); err != nil {
		return err
	}
	if err := minLength("password", password, MinLoginPassword); err != nil {
		return err
	}
	if password != confirm {
		return &FieldError{Field: "confirmPassword", Message: "Las contraseñas no coinciden"}
	}
	return nil
}

// ValidateCourse checks the course form.
func ValidateCourse(course sdk.Course) error {
	if err := minLength("titulo", course.Titulo, MinCourseTitle); err != nil {
		return err
	}
	if err := minLength("descripcion", course.Descripcion, MinCourseDescription); err != nil {
		return err
	}
	if course.Estado != "" && !course.Estado.Valid() {
		return &FieldError{Field: "estado", Message: fmt.Sprintf("Estado desconocido %q", course.Estado)}
	}
	return nil
}

// ValidateUser checks the user form. The password is only required when
// creating; when editing an empty password keeps the current one.
func ValidateUser(in sdk.UserInput, creating bool) error {
	if err := minLength("nombre", in.Nombre, MinUserName); err != nil {
		return err
	}
	if err := ValidateEmail("email", in.Email); err != nil {
		return err
	}
	if creating || in.Password != "" {
		if err := minLength("password", in.Password, MinUserPassword); err != nil {
			return err
		}
	}
	if in.Rol != "" {
		if _, ok := sdk.NormalizeRole(in.Rol); !ok {
			return &FieldError{Field: "rol", Message: fmt.Sprintf("Rol desconocido %q", in.Rol)}
		}
	}
	if in.Telefono != "" && !phonePattern.MatchString(in.Telefono) {
		return &FieldError{Field: "telefono", Message: "Formato inválido"}
	}
	return nil
}
