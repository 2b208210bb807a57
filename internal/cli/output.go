package cli

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// behaviorOutput is the JSON shape of a single behavior call.
type behaviorOutput struct {
	Family   string `json:"family"`
	Behavior string `json:"behavior"`
	Locale   string `json:"locale"`
	Output   string `json:"output"`
}

// writeBehavior prints the text produced by a behavior, as a bare line or
// as JSON depending on --json.
func (e *env) writeBehavior(w io.Writer, family, behavior, text string) error {
	e.logger.Debug("behavior",
		zap.String("family", family),
		zap.String("behavior", behavior))

	if !e.flags.jsonMode {
		_, err := fmt.Fprintln(w, text)
		return err
	}
	out, err := json.MarshalIndent(behaviorOutput{
		Family:   family,
		Behavior: behavior,
		Locale:   e.phrasebook.Name,
		Output:   text,
	}, "", "  ")
	if err != nil {
		return sysErr(fmt.Errorf("marshal JSON: %w", err))
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
