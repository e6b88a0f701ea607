package config

import (
	"github.com/sahilm/fuzzy"

	glinterrors "github.com/alexisbeaulieu97/glint/pkg/errors"
)

const maxSuggestions = 3

// animationSource implements fuzzy.Source over animation ids.
type animationSource []Animation

func (s animationSource) String(i int) string { return s[i].ID }
func (s animationSource) Len() int            { return len(s) }

// Find returns the animation with the given id. Unknown ids yield a
// PresetNotFoundError listing the closest ids.
func (p *Preset) Find(id string) (Animation, error) {
	for _, anim := range p.Animations {
		if anim.ID == id {
			return anim, nil
		}
	}
	return Animation{}, glinterrors.NewPresetNotFoundError(id, p.Suggest(id))
}

// Suggest ranks animation ids by fuzzy similarity to query.
func (p *Preset) Suggest(query string) []string {
	if query == "" {
		return nil
	}
	matches := fuzzy.FindFrom(query, animationSource(p.Animations))
	suggestions := make([]string, 0, min(len(matches), maxSuggestions))
	for _, match := range matches {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, match.Str)
	}
	return suggestions
}

// IDs lists animation ids in document order.
func (p *Preset) IDs() []string {
	ids := make([]string, 0, len(p.Animations))
	for _, anim := range p.Animations {
		ids = append(ids, anim.ID)
	}
	return ids
}
