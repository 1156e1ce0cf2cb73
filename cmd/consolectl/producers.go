package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/producer-console/pkg/query"
)

// producersCmd represents the producers command
var producersCmd = &cobra.Command{
	Use:   "producers",
	Short: "Query producers",
	Long:  `Query the producers of the session's tenant.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// producersListCmd represents the producers list command
var producersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List producers matching a filter",
	Long: `List one page of producers matching a filter.

Statuses and types may be repeated or comma-separated. Page sizes are
clamped to max_page_size and page numbers below 1 select the first page.

Example:
  consolectl producers list --search ana
  consolectl producers list --status "In Review" --type individual --coverage=false`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		values := make(map[string][]string)
		if search, _ := flags.GetString("search"); search != "" {
			values["search"] = []string{search}
		}
		if statuses, _ := flags.GetStringSlice("status"); len(statuses) > 0 {
			values["status"] = statuses
		}
		if types, _ := flags.GetStringSlice("type"); len(types) > 0 {
			values["type"] = types
		}
		if flags.Changed("coverage") {
			coverage, _ := flags.GetBool("coverage")
			values["coverage"] = []string{fmt.Sprint(coverage)}
		}
		view := a.service.NewView(a.cfg.DefaultPageSize)
		if flags.Changed("page-size") {
			size, _ := flags.GetInt("page-size")
			view.SetPageSize(size)
		}
		view.SetFilter(query.ParseFilter(values))
		number, _ := flags.GetInt("page")
		view.SetPageNumber(number)

		listing, err := a.service.ListView(cmd.Context(), view)
		if err != nil {
			return err
		}

		if output, _ := flags.GetString("output"); output == "json" {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(listing)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTYPE\tFARMS\tSERASA\tEUDR\tSTATUS\tACTIONS")
		for _, p := range listing.Items {
			actions := make([]string, 0, len(listing.Actions[p.ID]))
			for _, action := range listing.Actions[p.ID] {
				actions = append(actions, action.String())
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
				p.ID, p.Name, p.Type, p.NumberOfFarms, p.Serasa, p.EUDR, p.Status, strings.Join(actions, ","))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "page %d of %d (%d producers)\n", listing.PageNumber, listing.TotalPages, listing.Total)
		return nil
	},
}

// producersCountsCmd represents the producers counts command
var producersCountsCmd = &cobra.Command{
	Use:   "counts",
	Short: "Show the status tab totals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		counts, err := a.service.Counts(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "In Processing: %d\nApproved:      %d\n", counts.InProcessing, counts.Approved)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(producersCmd)
	producersCmd.AddCommand(producersListCmd)
	producersCmd.AddCommand(producersCountsCmd)

	producersListCmd.Flags().StringP("search", "s", "", "Case-insensitive name search")
	producersListCmd.Flags().StringSlice("status", nil, "Statuses to include")
	producersListCmd.Flags().StringSlice("type", nil, "Producer types to include")
	producersListCmd.Flags().Bool("coverage", false, "Only producers with (true) or without (false) EUDR coverage")
	producersListCmd.Flags().IntP("page", "p", 1, "Page number")
	producersListCmd.Flags().Int("page-size", 10, "Page size")
	producersListCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}
