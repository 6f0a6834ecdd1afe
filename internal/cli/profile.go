package cli

import (
	"fmt"

	"github.com/moshiurrahman/portfolio-api/internal/profile"
	"github.com/spf13/cobra"
)

// ProfileCmd returns the profile command group
func ProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the assistant profile document",
	}

	cmd.AddCommand(profileValidateCmd())
	return cmd
}

func profileValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate the profile JSON document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "data/profile.json"
			if len(args) == 1 {
				path = args[0]
			}

			doc, err := profile.Load(path)
			if err != nil {
				return fmt.Errorf("profile invalid: %w", err)
			}

			fmt.Printf("profile ok: %s (%d bytes)\n", path, len(doc.Raw()))
			return nil
		},
	}
	return cmd
}
