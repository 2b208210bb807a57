package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/menagerie/pkg/types"
)

type bookFlags struct {
	title  string
	author string
	pages  int
}

func newBookCmd(e *env) *cobra.Command {
	var f bookFlags

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Construct a book and call one of its behaviors",
	}
	cmd.PersistentFlags().StringVar(&f.title, "title", "", "book title")
	cmd.PersistentFlags().StringVar(&f.author, "author", "", "book author")
	cmd.PersistentFlags().IntVar(&f.pages, "pages", 0, "number of pages (must be greater than 0)")
	_ = cmd.MarkPersistentFlagRequired("pages")

	behavior := func(use, short string, render func(*types.ConcreteBook, types.Phrasebook) string) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				b, err := types.NewConcreteBook(f.title, f.author, f.pages)
				if err != nil {
					return err
				}
				return e.writeBehavior(cmd.OutOrStdout(), "book", use, render(b, e.phrasebook))
			},
		}
	}

	cmd.AddCommand(behavior("read", "Describe reading the book", (*types.ConcreteBook).ReadIn))
	cmd.AddCommand(behavior("summary", "Print a short summary of the book", (*types.ConcreteBook).SummaryIn))
	return cmd
}
