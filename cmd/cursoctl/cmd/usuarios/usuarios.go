package usuarios

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
)

// UsuariosCmd is the parent command for user administration
var UsuariosCmd = &cobra.Command{
	Use:   "usuarios",
	Short: "Administer user accounts",
	Long:  `Administrator commands to list, create, edit and delete users.`,
}

var (
	userNombre   string
	userEmail    string
	userPassword string
	userRol      string
	userTelefono string
)

func init() {
	UsuariosCmd.AddCommand(listCmd)
	UsuariosCmd.AddCommand(createCmd)
	UsuariosCmd.AddCommand(editCmd)
	UsuariosCmd.AddCommand(deleteCmd)

	for _, c := range []*cobra.Command{createCmd, editCmd} {
		c.Flags().StringVar(&userNombre, "nombre", "", "Full name (minimum 3 characters)")
		c.Flags().StringVar(&userEmail, "email", "", "Email address")
		c.Flags().StringVar(&userPassword, "password", "", "Password (minimum 6 characters)")
		c.Flags().StringVar(&userRol, "rol", "", "Role: ESTUDIANTE, DOCENTE or ADMIN")
		c.Flags().StringVar(&userTelefono, "telefono", "", "Phone number, 9 to 15 digits")
	}
}

func printUsers(w io.Writer, users []sdk.User) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNOMBRE\tEMAIL\tROL\tTELEFONO\tREGISTRO")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", u.ID, u.Nombre, u.Email, u.Rol.Label(), dash(u.Telefono), dash(u.FechaRegistro))
	}
	return tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// inputFrom builds the update body for an existing user, overlaying the
// flags the user set.
func inputFrom(current sdk.User, changed func(string) bool) sdk.UserInput {
	in := sdk.UserInput{
		Nombre:   current.Nombre,
		Email:    current.Email,
		Telefono: current.Telefono,
	}
	if current.Rol != "" {
		in.Rol = current.Rol.Bare()
	}
	if changed("nombre") {
		in.Nombre = userNombre
	}
	if changed("email") {
		in.Email = userEmail
	}
	if changed("password") {
		in.Password = userPassword
	}
	if changed("rol") {
		in.Rol = userRol
	}
	if changed("telefono") {
		in.Telefono = userTelefono
	}
	return in
}
