package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/menagerie/pkg/types"
)

func newTreeCmd(e *env) *cobra.Command {
	var (
		species string
		age     int
	)

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Construct a tree and call one of its behaviors",
	}
	cmd.PersistentFlags().StringVar(&species, "species", "", "tree species")
	cmd.PersistentFlags().IntVar(&age, "age", 0, "age in years (must be greater than 0)")
	_ = cmd.MarkPersistentFlagRequired("age")

	behavior := func(use, short string, render func(*types.ConcreteTree, types.Phrasebook) string) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := types.NewConcreteTree(species, age)
				if err != nil {
					return err
				}
				return e.writeBehavior(cmd.OutOrStdout(), "tree", use, render(t, e.phrasebook))
			},
		}
	}

	cmd.AddCommand(behavior("grow", "Note that the tree keeps growing", (*types.ConcreteTree).GrowIn))
	cmd.AddCommand(behavior("fruit", "Note that the tree bears fruit", (*types.ConcreteTree).ProduceFruitIn))
	return cmd
}
