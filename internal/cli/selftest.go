package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/menagerie/internal/selftest"
)

// errSelfTestFailed is returned when at least one example did not produce
// its expected output.
var errSelfTestFailed = errors.New("selftest failed")

func newSelfTestCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the documented examples and report PASS/FAIL for each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runSelfTest(cmd.OutOrStdout())
		},
	}
}

func (e *env) runSelfTest(w io.Writer) error {
	report := selftest.Run(e.phrasebook.Name, e.examples(e.phrasebook), e.logger)

	var err error
	if e.flags.jsonMode {
		err = report.WriteJSON(w)
	} else {
		err = report.WriteText(w)
	}
	if err != nil {
		return sysErr(fmt.Errorf("write report: %w", err))
	}

	if !report.OK() {
		return fmt.Errorf("%w: %d of %d examples", errSelfTestFailed, report.Failed(), len(report.Results))
	}
	return nil
}
