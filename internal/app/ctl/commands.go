package ctl

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Apurer/pet-adoption-center/internal/platform/migrations"
)

// MigrateCmd applies the schema of every bounded context.
func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context(), true, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.cleanup()
			if err := migrations.Run(e.db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s schema up to date\n", okMark)
			return nil
		},
	}
}

// AdminCmd groups staff account maintenance.
func AdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage staff accounts",
	}
	cmd.AddCommand(adminBootstrapCmd())
	cmd.AddCommand(adminListCmd())
	return cmd
}

func adminBootstrapCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Create the first super admin when no admin exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context(), true, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.cleanup()
			if email == "" {
				email = e.cfg.BootstrapAdminEmail
			}
			if password == "" {
				password = e.cfg.BootstrapAdminPassword
			}
			if email == "" || password == "" {
				return fmt.Errorf("--email and --password (or BOOTSTRAP_ADMIN_*) are required")
			}
			created, err := e.services.Admins.EnsureBootstrap(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if !created {
				fmt.Fprintf(cmd.OutOrStdout(), "%s admins already exist, nothing to do\n", skipMark)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s super admin %s created\n", okMark, email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email of the super admin")
	cmd.Flags().StringVar(&password, "password", "", "initial password")
	return cmd
}

func adminListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List staff accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context(), true, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.cleanup()
			admins, err := e.services.Admins.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, a := range admins {
				state := color.New(color.FgGreen).Sprint("active")
				if !a.IsActive {
					state = color.New(color.FgRed).Sprint("inactive")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-4d %-32s %-12s %s\n", a.ID, a.Email, a.Role, state)
			}
			return nil
		},
	}
}

// TokensCmd groups token revocation maintenance.
func TokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Maintain revoked tokens",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "purge",
		Short: "Delete revocations of tokens that have already expired",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context(), true, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.cleanup()
			removed, err := e.services.Revocation.PurgeExpired(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s purged %d expired revocations\n", okMark, removed)
			return nil
		},
	})
	return cmd
}

// PolicyCmd reports the adoption policy the current environment selects.
func PolicyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Inspect the adoption policy",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the variant selected by ADOPTION_POLICY",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd.Context(), false, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.cleanup()
			policy := e.services.Adoptions.Policy()
			fmt.Fprintf(cmd.OutOrStdout(), "variant: %s\nreturns: %t\n", policy.Variant, policy.AllowReturn)
			return nil
		},
	})
	return cmd
}
