package cli

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/armoury/internal/api/response"
)

func newEquipmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equipment",
		Short: "Commands spanning armour and weapons",
	}

	cmd.AddCommand(newEquipmentSearchCmd())
	cmd.AddCommand(newEquipmentCostsCmd())

	return cmd
}

func newEquipmentSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Find armour and weapons whose name contains the given text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.EquipmentSearch

			query := url.Values{"name": {args[0]}}
			if err := client.Get(cmd.Context(), "/api/v1/equipment/search", query, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newEquipmentCostsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "costs",
		Short: "Show the price list of all equipment",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.EquipmentCosts

			if err := client.Get(cmd.Context(), "/api/v1/equipment/costs", nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}
