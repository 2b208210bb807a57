package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/menagerie/pkg/types"
)

func newProfileCmd(e *env) *cobra.Command {
	var (
		username  string
		followers int
	)

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Construct a social media profile and call one of its behaviors",
	}
	cmd.PersistentFlags().StringVar(&username, "username", "", "profile username")
	cmd.PersistentFlags().IntVar(&followers, "followers", 0, "follower count (must not be negative)")

	behavior := func(use, short string, render func(*types.ConcreteSocialMediaProfile, types.Phrasebook, string) string) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := types.NewConcreteSocialMediaProfile(username, followers)
				if err != nil {
					return err
				}
				name := cmd.Name()
				return e.writeBehavior(cmd.OutOrStdout(), "profile", name, render(p, e.phrasebook, args[0]))
			},
		}
	}

	cmd.AddCommand(behavior("post <message>", "Publish a message from the profile", (*types.ConcreteSocialMediaProfile).PostUpdateIn))
	cmd.AddCommand(behavior("interact <action>", "Describe the profile performing an action", (*types.ConcreteSocialMediaProfile).InteractIn))
	return cmd
}
