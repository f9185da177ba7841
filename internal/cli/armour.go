package cli

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/armoury/internal/api/response"
	"github.com/mcoot/armoury/internal/model"
)

func newArmourCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "armour",
		Short: "Armour catalogue commands",
	}

	cmd.AddCommand(newArmourListCmd())
	cmd.AddCommand(newArmourGetCmd())
	cmd.AddCommand(newArmourSearchCmd())
	cmd.AddCommand(newArmourDescribeCmd())
	cmd.AddCommand(newArmourByTypeCmd())

	return cmd
}

func newArmourListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all armour",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.ArmourList

			if err := client.Get(cmd.Context(), "/api/v1/armour", nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newArmourGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get armour by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result model.Armour

			if err := client.Get(cmd.Context(), "/api/v1/armour/"+segment(args[0]), nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newArmourSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Find armour whose name contains the given text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.ArmourList

			query := url.Values{"name": {args[0]}}
			if err := client.Get(cmd.Context(), "/api/v1/armour/search", query, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newArmourDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <name>",
		Short: "Show the rules text of an armour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.ArmourDescription

			path := "/api/v1/armour/" + segment(args[0]) + "/description"
			if err := client.Get(cmd.Context(), path, nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newArmourByTypeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "by-type",
		Short: "List armour grouped by type",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.ArmourByType

			if err := client.Get(cmd.Context(), "/api/v1/armour/by-type", nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}
