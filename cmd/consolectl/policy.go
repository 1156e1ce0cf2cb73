package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// policyCmd represents the policy command
var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Inspect the role table",
	Long:  `Inspect the role assignment table.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// policyShowCmd represents the policy show command
var policyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective role table",
	Long: `Print the effective role table as a policy document.

The table is read from policy_file when it is configured and is otherwise
the built-in admin, compliance and viewer grants.

Example:
  consolectl policy show > policy.yml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		table, err := loadTable(cfg)
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(table)
		if err != nil {
			return fmt.Errorf("failed to render role table: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(policyCmd)
	policyCmd.AddCommand(policyShowCmd)
}
