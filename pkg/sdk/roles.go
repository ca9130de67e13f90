package sdk

import (
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Role is one of the three platform roles.
type Role string

const (
	RoleEstudiante Role = "ROLE_ESTUDIANTE"
	RoleDocente    Role = "ROLE_DOCENTE"
	RoleAdmin      Role = "ROLE_ADMIN"
)

const rolePrefix = "ROLE_"

// Roles lists every valid role.
var Roles = []Role{RoleEstudiante, RoleDocente, RoleAdmin}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleEstudiante, RoleDocente, RoleAdmin:
		return true
	}
	return false
}

// Bare returns the role name without the ROLE_ prefix (e.g. "ADMIN").
func (r Role) Bare() string {
	return strings.TrimPrefix(string(r), rolePrefix)
}

// Label returns the display name for the role.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Administrador"
	case RoleDocente:
		return "Docente"
	case RoleEstudiante:
		return "Estudiante"
	}
	return "Usuario"
}

// NormalizeRole maps a bare or prefixed role name onto its canonical form.
// "admin", "ADMIN" and "ROLE_ADMIN" all yield RoleAdmin.
func NormalizeRole(raw string) (Role, bool) {
	name := strings.ToUpper(strings.TrimSpace(raw))
	if name == "" {
		return "", false
	}
	if !strings.HasPrefix(name, rolePrefix) {
		name = rolePrefix + name
	}
	role := Role(name)
	if !role.Valid() {
		return "", false
	}
	return role, true
}

// roleShape recognises one way the backend has encoded a user's role.
type roleShape struct {
	name  string
	match func(user map[string]any) (string, bool)
}

var (
	roleStringFields = []string{"rol", "role", "userRole"}
	roleObjectFields = []string{"rol", "role"}
	roleArrayFields  = []string{"roles", "authorities"}
)

// roleShapes are tried in order; the first shape producing a known role wins.
var roleShapes = []roleShape{
	{name: "string", match: matchRoleString},
	{name: "object", match: matchRoleObject},
	{name: "array", match: matchRoleArray},
}

// ExtractRole finds the role of a decoded user record.
func ExtractRole(user map[string]any) (Role, bool) {
	if len(user) == 0 {
		return "", false
	}
	for _, shape := range roleShapes {
		raw, ok := shape.match(user)
		if !ok {
			continue
		}
		if role, ok := NormalizeRole(raw); ok {
			return role, true
		}
	}
	return "", false
}

func matchRoleString(user map[string]any) (string, bool) {
	for _, field := range roleStringFields {
		if s, ok := user[field].(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

func matchRoleObject(user map[string]any) (string, bool) {
	for _, field := range roleObjectFields {
		if name, ok := roleObjectName(user[field]); ok {
			return name, true
		}
	}
	return "", false
}

func matchRoleArray(user map[string]any) (string, bool) {
	for _, field := range roleArrayFields {
		items, ok := user[field].([]any)
		if !ok || len(items) == 0 {
			continue
		}
		if s, ok := items[0].(string); ok && s != "" {
			return s, true
		}
		if name, ok := roleObjectName(items[0]); ok {
			return name, true
		}
	}
	return "", false
}

// namedRole covers the field names used by the backend for role objects.
type namedRole struct {
	Nombre    string `mapstructure:"nombre"`
	Name      string `mapstructure:"name"`
	RoleName  string `mapstructure:"roleName"`
	Authority string `mapstructure:"authority"`
}

func roleObjectName(v any) (string, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	var role namedRole
	if err := mapstructure.Decode(obj, &role); err != nil {
		return "", false
	}
	for _, name := range []string{role.Nombre, role.Name, role.RoleName, role.Authority} {
		if name != "" {
			return name, true
		}
	}
	return "", false
}
