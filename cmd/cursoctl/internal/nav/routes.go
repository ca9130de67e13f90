package nav

import "github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"

// View paths referenced outside the route table.
const (
	PathRoot      = "/"
	PathLogin     = sdk.LoginPath
	PathRegister  = "/register"
	PathDashboard = "/dashboard"
)

// Route is one entry of the view table.
type Route struct {
	Pattern string
	// Redirect sends the navigation elsewhere without running guards.
	Redirect string
	// Auth requires an authenticated session.
	Auth bool
	// Roles, when non-empty, is the set of roles allowed past the role guard.
	Roles []sdk.Role
	Title string
}

var (
	adminOnly       = []sdk.Role{sdk.RoleAdmin}
	courseManagers  = []sdk.Role{sdk.RoleAdmin, sdk.RoleDocente}
	studentsOnly    = []sdk.Role{sdk.RoleEstudiante}
	enrolledViewers = []sdk.Role{sdk.RoleEstudiante, sdk.RoleDocente}
)

// DefaultRoutes is the view table of the application.
var DefaultRoutes = []Route{
	{Pattern: PathRoot, Redirect: PathLogin},
	{Pattern: PathLogin, Title: "Iniciar sesión"},
	{Pattern: PathRegister, Title: "Registro"},
	{Pattern: PathDashboard, Auth: true, Title: "Dashboard"},

	{Pattern: "/usuarios", Auth: true, Roles: adminOnly, Title: "Usuarios"},
	{Pattern: "/usuarios/nuevo", Auth: true, Roles: adminOnly, Title: "Nuevo usuario"},
	{Pattern: "/usuarios/editar/{id}", Auth: true, Roles: adminOnly, Title: "Editar usuario"},

	{Pattern: "/cursos", Auth: true, Roles: courseManagers, Title: "Cursos"},
	{Pattern: "/cursos/crear", Auth: true, Roles: courseManagers, Title: "Crear curso"},
	{Pattern: "/cursos/editar/{id}", Auth: true, Roles: courseManagers, Title: "Editar curso"},

	{Pattern: "/aprobacion-cursos", Auth: true, Roles: adminOnly, Title: "Aprobación de cursos"},
	{Pattern: "/cursos-disponibles", Auth: true, Roles: studentsOnly, Title: "Cursos disponibles"},
	{Pattern: "/mis-cursos", Auth: true, Roles: enrolledViewers, Title: "Mis cursos"},
	{Pattern: "/curso-detalle/{id}", Auth: true, Title: "Detalle del curso"},
}

// FallbackPath receives navigations to unknown paths.
const FallbackPath = PathDashboard
