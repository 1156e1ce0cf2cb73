package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/producer-console/pkg/rbac"
)

// roleCmd represents the role command
var roleCmd = &cobra.Command{
	Use:   "role",
	Short: "Inspect and switch the session role",
	Long:  `Inspect and switch the role of the console session.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// roleShowCmd represents the role show command
var roleShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the session role and its permissions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		sess := a.service.Session()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "user:   %s\n", sess.UserID)
		fmt.Fprintf(out, "tenant: %s\n", sess.TenantID)
		fmt.Fprintf(out, "role:   %s\n", sess.Role)
		for _, p := range a.service.Permissions() {
			fmt.Fprintf(out, "  - %s\n", p)
		}
		return nil
	},
}

// roleSwitchCmd represents the role switch command
var roleSwitchCmd = &cobra.Command{
	Use:   "switch <role>",
	Short: "Switch the session role",
	Long: `Switch the session role and persist it to role_file.

A running server watching the same role file adopts the new role.

Example:
  consolectl role switch viewer`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if a.roles == nil {
			logger.Warn("role_file is not configured; the role will not outlive this command")
		}

		next, err := a.service.SwitchRole(cmd.Context(), rbac.Role(args[0]))
		if err != nil {
			return fmt.Errorf("%w (known roles: %v)", err, a.service.Roles())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "role: %s\n", next.Role)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(roleCmd)
	roleCmd.AddCommand(roleShowCmd)
	roleCmd.AddCommand(roleSwitchCmd)
}
