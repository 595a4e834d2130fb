package keys

import (
	"sync"
	"unicode"
	"unicode/utf8"
)

// starterLabels is the curated catalog of display labels for common shared
// items. Labels keep their correct accents and casing; lookup goes through
// Normalize so any user spelling of a known item maps back to the curated form.
var starterLabels = []string{
	"Perceuse",
	"Visseuse",
	"Échelle",
	"Escabeau",
	"Ponceuse",
	"Scie sauteuse",
	"Échafaudage",
	"Nettoyeur haute pression",
	"Aspirateur",
	"Appareil à raclette",
	"Appareil à fondue",
	"Crêpière",
	"Plancha",
	"Barbecue",
	"Friteuse",
	"Robot pâtissier",
	"Tondeuse",
	"Taille-haie",
	"Débroussailleuse",
	"Brouette",
	"Motoculteur",
	"Vélo",
	"Vélo d'appartement",
	"Tente",
	"Sac de couchage",
	"Glacière",
	"Réchaud",
	"Paddle",
	"Kayak",
	"Raquette de tennis",
	"Ballon de foot",
	"Table de ping-pong",
	"Sono",
	"Enceinte bluetooth",
	"Vidéoprojecteur",
	"Remorque",
	"Porte-vélos",
	"Coffre de toit",
	"Siège auto",
	"Lit parapluie",
	"Chaise haute",
	"Machine à coudre",
}

var (
	labelIndexOnce sync.Once
	labelIndex     map[string]string
)

// CuratedLabel returns the curated display label whose normalized form
// matches key, and whether such a label exists.
func CuratedLabel(key string) (string, bool) {
	labelIndexOnce.Do(func() {
		labelIndex = make(map[string]string, len(starterLabels))
		for _, label := range starterLabels {
			labelIndex[Normalize(label)] = label
		}
	})
	label, ok := labelIndex[key]
	return label, ok
}

// LabelForKey returns the curated display label for key when one exists,
// otherwise the key itself with its first letter capitalized.
func LabelForKey(key string) string {
	if label, ok := CuratedLabel(key); ok {
		return label
	}
	return capitalizeFirst(key)
}

// capitalizeFirst uppercases the first rune of s.
func capitalizeFirst(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
