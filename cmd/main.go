package main

import (
	"fmt"
	"os"
	"strings"

	"hospital-records/cmd/bootstrap"
	"hospital-records/internal/delivery/http/handler"
	"hospital-records/internal/infrastructure/database"
	"hospital-records/pkg/jwt"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hospital-records",
		Short: "Patient visit records API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	app, err := bootstrap.New()
	if err != nil {
		return err
	}
	app.Run()
	return nil
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	for _, direction := range []database.MigrationDirection{database.MigrateUp, database.MigrateDown} {
		short := "Apply pending migrations"
		if direction == database.MigrateDown {
			short = "Roll back the most recent migration"
		}
		cmd.AddCommand(&cobra.Command{
			Use:   string(direction),
			Short: short,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, _, err := bootstrap.LoadConfig()
				if err != nil {
					return err
				}
				return database.RunMigrations(cfg.DB, direction)
			},
		})
	}

	return cmd
}

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Work with appointment QR tokens",
	}

	var patientID int64
	issueCmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a QR token for an existing patient visit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if patientID <= 0 {
				return fmt.Errorf("--patient-id must be a positive visit id")
			}

			cfg, _, err := bootstrap.LoadConfig()
			if err != nil {
				return err
			}

			token, err := jwt.NewJWTService(cfg.JWT).GenerateAppointmentToken(patientID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, token)
			fmt.Fprintln(out, strings.TrimRight(cfg.App.PublicBaseURL, "/")+handler.QRPathPrefix+token)
			return nil
		},
	}
	issueCmd.Flags().Int64Var(&patientID, "patient-id", 0, "visit id the token grants access to")
	cmd.AddCommand(issueCmd)

	return cmd
}
