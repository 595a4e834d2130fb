package keys

import (
	"testing"
)

func TestNormalize_basic(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Perceuse", "perceuse"},
		{"trims whitespace", "  tondeuse  ", "tondeuse"},
		{"strips accents", "Échelle", "echelle"},
		{"strips cedilla", "Glaçière", "glaciere"},
		{"collapses inner whitespace", "table   de  ping-pong", "table de ping-pong"},
		{"apostrophe becomes space", "vélo d'appartement", "velo d appartement"},
		{"curly apostrophe becomes space", "vélo d’appartement", "velo d appartement"},
		{"drops punctuation", "perceuse (neuve)!", "perceuse neuve"},
		{"keeps digits", "tente 4 places", "tente 4 place"},
		{"keeps slash", "sono/dj", "sono/dj"},
		{"keeps hyphen", "taille-haie", "taille-haie"},
		{"empty input", "", ""},
		{"whitespace only", "   \t ", ""},
		{"punctuation only", "!!!", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalize_singularization(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plural loses trailing s", "perceuses", "perceuse"},
		{"accented plural", "échelles", "echelle"},
		{"short words keep their s", "bus", "bus"},
		{"aux plural is exempt", "chevaux", "chevaux"},
		{"travaux is exempt", "travaux", "travaux"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalize_chevauxNeverStripped(t *testing.T) {
	got := Normalize("Chevaux")
	if got != Normalize("chevaux") {
		t.Fatalf("case must not matter: %q vs %q", got, Normalize("chevaux"))
	}
	if got == "chevau" {
		t.Fatal("the aux exemption failed: got the naively-stripped form")
	}
}

func TestNormalize_accentInsensitive(t *testing.T) {
	a := Normalize("Échelle")
	b := Normalize("echelle")
	c := Normalize("echelles")
	if a != b || b != c {
		t.Fatalf("expected identical keys, got %q / %q / %q", a, b, c)
	}
}

func TestNormalize_deterministic(t *testing.T) {
	inputs := []string{"Perceuse", "échelles", "Vélo d’appartement", "chevaux", ""}
	for _, in := range inputs {
		first := Normalize(in)
		for i := 0; i < 5; i++ {
			if got := Normalize(in); got != first {
				t.Fatalf("Normalize(%q) not deterministic: %q then %q", in, first, got)
			}
		}
	}
}

func TestNormalize_idempotent(t *testing.T) {
	inputs := []string{
		"Perceuse", "échelles", "Vélo d’appartement", "chevaux",
		"table   de ping-pong", "tente 4 places", "sono/dj", "",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestDedupeTitles(t *testing.T) {
	t.Run("removes duplicates by key keeping first-seen order", func(t *testing.T) {
		got := DedupeTitles([]string{"Perceuse", "perceuses", "Échelle", "echelle", "Tente"})
		want := []string{"perceuse", "echelle", "tente"}
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
			}
		}
	})

	t.Run("drops empty and malformed titles", func(t *testing.T) {
		got := DedupeTitles([]string{"", "  ", "!!!", "Perceuse"})
		if len(got) != 1 || got[0] != "perceuse" {
			t.Fatalf("expected [perceuse], got %v", got)
		}
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		if got := DedupeTitles(nil); len(got) != 0 {
			t.Fatalf("expected empty, got %v", got)
		}
	})
}
