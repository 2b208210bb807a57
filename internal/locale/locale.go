// Package locale maps BCP 47 language tags to entity phrasebooks.
package locale

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/mesh-intelligence/menagerie/pkg/types"
)

// supported and phrasebooks are index-aligned; the first entry is the
// matcher's fallback.
var (
	supported   = []language.Tag{language.English, language.Russian}
	phrasebooks = []types.Phrasebook{types.English, types.Russian}
	matcher     = language.NewMatcher(supported)
)

// Resolve returns the phrasebook that best serves tag. Regional variants
// such as "en-GB" or "ru-RU" resolve to their base language. An empty tag
// returns ErrLocaleEmpty; a malformed or unsupported tag returns
// ErrLocaleUnknown.
func Resolve(tag string) (types.Phrasebook, error) {
	if tag == "" {
		return types.Phrasebook{}, types.ErrLocaleEmpty
	}
	t, err := language.Parse(tag)
	if err != nil {
		return types.Phrasebook{}, fmt.Errorf("%w: %q: %v", types.ErrLocaleUnknown, tag, err)
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return types.Phrasebook{}, fmt.Errorf("%w: %q", types.ErrLocaleUnknown, tag)
	}
	return phrasebooks[idx], nil
}

// Supported returns the names of the available phrasebooks.
func Supported() []string {
	names := make([]string, len(phrasebooks))
	for i, p := range phrasebooks {
		names[i] = p.Name
	}
	return names
}
