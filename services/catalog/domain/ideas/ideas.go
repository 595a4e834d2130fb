// Package ideas narrows catalog rollups to curated themes ("idées"): a preset
// pairs a set of categories with free-text keywords, and a group passes when
// either matches. Coarse, recall-oriented filtering — substring matches may
// include the odd unrelated compound word, and that is accepted.
package ideas

import (
	"errors"
	"strings"

	"github.com/itsklemy/cercle-backend/services/catalog/domain/keys"
	"github.com/itsklemy/cercle-backend/services/catalog/domain/rollup"
)

// ErrUnknownPreset is returned when a preset key does not exist.
var ErrUnknownPreset = errors.New("unknown idea preset")

// Preset is a curated category+keyword filter.
type Preset struct {
	Key        string   `json:"key"`
	Label      string   `json:"label"`
	Categories []string `json:"categories"`
	// Keywords are lowercase free text; they are normalized the same way as
	// title keys before matching.
	Keywords []string `json:"keywords"`
}

// presets is the fixed curated list shown on the ideas screen.
var presets = []Preset{
	{
		Key:        "sport-ce-soir",
		Label:      "Sport ce soir",
		Categories: []string{"sport"},
		Keywords:   []string{"ballon", "raquette", "vélo", "paddle", "kayak"},
	},
	{
		Key:        "soiree-raclette",
		Label:      "Soirée raclette",
		Categories: []string{"cuisine"},
		Keywords:   []string{"raclette", "fondue", "crêpière", "plancha"},
	},
	{
		Key:        "bricolage-du-weekend",
		Label:      "Bricolage du week-end",
		Categories: []string{"bricolage"},
		Keywords:   []string{"perceuse", "échelle", "ponceuse", "scie", "échafaudage"},
	},
	{
		Key:        "week-end-camping",
		Label:      "Week-end camping",
		Categories: []string{},
		Keywords:   []string{"tente", "réchaud", "glacière", "sac de couchage", "lampe"},
	},
	{
		Key:        "jardin-au-printemps",
		Label:      "Jardin au printemps",
		Categories: []string{"jardin"},
		Keywords:   []string{"tondeuse", "taille-haie", "brouette", "motoculteur"},
	},
}

// All returns the curated preset list.
func All() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// Find returns the preset with the given key, or ErrUnknownPreset.
func Find(key string) (Preset, error) {
	for _, p := range presets {
		if p.Key == key {
			return p, nil
		}
	}
	return Preset{}, ErrUnknownPreset
}

// Apply filters groups through preset. A nil preset passes the input through
// unchanged. A group is kept when its category belongs to the preset's
// category set — this short-circuits the keyword check — or when its title
// key contains any normalized keyword as a substring.
func Apply(groups []rollup.Group, preset *Preset) []rollup.Group {
	if preset == nil {
		return groups
	}

	categories := make(map[string]struct{}, len(preset.Categories))
	for _, c := range preset.Categories {
		categories[c] = struct{}{}
	}

	normalized := make([]string, 0, len(preset.Keywords))
	for _, kw := range preset.Keywords {
		if k := keys.Normalize(kw); k != "" {
			normalized = append(normalized, k)
		}
	}

	out := make([]rollup.Group, 0, len(groups))
	for _, g := range groups {
		if _, ok := categories[g.Category]; ok {
			out = append(out, g)
			continue
		}
		for _, kw := range normalized {
			if strings.Contains(g.TitleKey, kw) {
				out = append(out, g)
				break
			}
		}
	}
	return out
}
