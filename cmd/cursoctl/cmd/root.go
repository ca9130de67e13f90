package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/aprobacion"
	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/auth"
	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/cmdutil"
	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/cursos"
	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/miscursos"
	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/usuarios"
	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/internal/client"
	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/internal/config"
	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/internal/logging"
)

var (
	serverURL      string
	bearerToken    string
	nonInteractive bool
	debug          bool
)

var rootCmd = &cobra.Command{
	Use:   "cursoctl",
	Short: "Curso Online CLI - course catalogue and enrollment client",
	Long: `cursoctl is the command-line client for the Curso Online platform.
Students browse and enroll in courses, teachers manage their courses and
administrators manage users and approve new courses.

Every command opens one view of the platform; the view is only shown when
the stored session is logged in with a role allowed to see it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings()
		if err != nil {
			return err
		}
		applyFlagOverrides(cmd, &settings)

		logger := logging.NewSlog(logging.New(os.Stderr, settings.Debug))
		provider := client.NewProvider(client.ProviderOptions{
			ServerURL:  settings.ServerURL,
			SessionDir: settings.SessionDir,
			Logger:     logger,
		})
		if settings.Token != "" {
			provider.SetBearerToken(settings.Token)
		}

		cfg := &config.GlobalConfig{Settings: settings, ClientProvider: provider}
		cmd.SetContext(config.InjectConfig(cmd.Context(), cfg))

		router, err := provider.Router()
		if err != nil {
			return err
		}
		// Keep the in-memory auth state in step with invalidations from the first request on.
		if _, err := provider.Auth(); err != nil {
			return err
		}
		_, err = cmdutil.Open(cmd, router, args)
		return err
	},
}

func applyFlagOverrides(cmd *cobra.Command, s *config.Settings) {
	flags := cmd.Flags()
	if flags.Changed("server") {
		s.ServerURL = serverURL
	}
	if flags.Changed("token") {
		s.Token = bearerToken
	}
	if flags.Changed("non-interactive") {
		s.NonInteractive = nonInteractive
	}
	if flags.Changed("debug") {
		s.Debug = debug
	}
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "Curso Online API server URL (also set via CURSO_SERVER_URL)")
	rootCmd.PersistentFlags().StringVar(&bearerToken, "token", "", "Bearer token used instead of the stored session (also set via CURSO_TOKEN)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts (also set via CURSO_NON_INTERACTIVE=1)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging (also set via CURSO_DEBUG=1)")

	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(cursos.CursosCmd)
	rootCmd.AddCommand(miscursos.MisCursosCmd)
	rootCmd.AddCommand(aprobacion.AprobacionCmd)
	rootCmd.AddCommand(usuarios.UsuariosCmd)
}
