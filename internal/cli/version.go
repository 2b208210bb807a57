package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/menagerie/pkg/menagerie"
)

const modulePath = "github.com/mesh-intelligence/menagerie"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the menagerie version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "menagerie v%s\nmodule: %s\n", menagerie.Version, modulePath)
			return nil
		},
	}
}
