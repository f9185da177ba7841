package cli

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/armoury/internal/api/response"
	"github.com/mcoot/armoury/internal/model"
)

func newWeaponsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "weapons",
		Aliases: []string{"weapon"},
		Short:   "Weapon catalogue commands",
	}

	cmd.AddCommand(newWeaponsListCmd())
	cmd.AddCommand(newWeaponsTableCmd())
	cmd.AddCommand(newWeaponsGetCmd())
	cmd.AddCommand(newWeaponsSearchCmd())
	cmd.AddCommand(newWeaponsByTypeCmd())
	cmd.AddCommand(newWeaponsPropertiesCmd())
	cmd.AddCommand(newWeaponsPropertyCmd())

	return cmd
}

func newWeaponsListCmd() *cobra.Command {
	var category, property string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List weapons, optionally filtered by category and property",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if category != "" {
				query.Set("category", category)
			}
			if property != "" {
				query.Set("property", property)
			}

			var result response.WeaponList

			if err := client.Get(cmd.Context(), "/api/v1/weapons", query, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category: simple, martial, melee, ranged")
	cmd.Flags().StringVar(&property, "property", "", "Filter by property tag, e.g. finesse")

	return cmd
}

func newWeaponsTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Show the weapon table with damage and ranges folded into properties",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.WeaponTable

			if err := client.Get(cmd.Context(), "/api/v1/weapons/table", nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newWeaponsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a weapon by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result model.Weapon

			if err := client.Get(cmd.Context(), "/api/v1/weapons/"+segment(args[0]), nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newWeaponsSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Find weapons whose name contains the given text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.WeaponList

			query := url.Values{"name": {args[0]}}
			if err := client.Get(cmd.Context(), "/api/v1/weapons/search", query, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newWeaponsByTypeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "by-type",
		Short: "List weapons grouped by type",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.WeaponsByType

			if err := client.Get(cmd.Context(), "/api/v1/weapons/by-type", nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newWeaponsPropertiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "properties",
		Short: "List the rules text of every weapon property",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.WeaponProperties

			if err := client.Get(cmd.Context(), "/api/v1/weapons/properties", nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newWeaponsPropertyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "property <name>",
		Short: "Show the rules text of a weapon property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result model.WeaponProperty

			if err := client.Get(cmd.Context(), "/api/v1/weapons/properties/"+segment(args[0]), nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}
