package titleclean

import (
	"testing"

	"shelves/internal/config"
)

func newDefaultCleaner(t *testing.T, whitelist ...string) *Cleaner {
	t.Helper()
	cleaner, err := New(Options{OnlySoundtracks: true, Whitelist: whitelist})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return cleaner
}

func TestCleanStripsSoundtrackSuffix(t *testing.T) {
	cleaner := newDefaultCleaner(t)

	cases := []struct {
		in   string
		want string
	}{
		{"Tron: Legacy (Original Motion Picture Soundtrack)", "Tron: Legacy"},
		{"Interstellar - Original Motion Picture Soundtrack", "Interstellar"},
		{"Drive [Original Movie Soundtrack]", "Drive"},
		{"The Last of Us Original Score", "The Last of Us"},
	}
	for _, tc := range cases {
		got, changed := cleaner.Clean(tc.in, []string{"album; soundtrack"})
		if !changed {
			t.Errorf("Clean(%q) reported no change", tc.in)
			continue
		}
		if got != tc.want {
			t.Errorf("Clean(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCleanLeavesNonSoundtracksAlone(t *testing.T) {
	cleaner := newDefaultCleaner(t)

	title := "Greatest Movie Themes Soundtrack"
	got, changed := cleaner.Clean(title, []string{"album"})
	if changed || got != title {
		t.Errorf("non-soundtrack release changed: %q -> %q", title, got)
	}
}

func TestCleanAllReleasesWhenGateDisabled(t *testing.T) {
	cleaner, err := New(Options{OnlySoundtracks: false})
	if err != nil {
		t.Fatal(err)
	}

	got, changed := cleaner.Clean("Arrival (Original Soundtrack)", nil)
	if !changed || got != "Arrival" {
		t.Errorf("Clean = %q, %v; want Arrival, true", got, changed)
	}
}

func TestCleanRespectsWhitelist(t *testing.T) {
	title := "Music from the Motion Picture"
	cleaner := newDefaultCleaner(t, title)

	got, changed := cleaner.Clean(title, []string{"soundtrack"})
	if changed || got != title {
		t.Errorf("whitelisted title changed: %q -> %q", title, got)
	}
}

func TestCleanWhitelistIsCaseAndNormalizationInsensitive(t *testing.T) {
	cleaner := newDefaultCleaner(t, "AMÉLIE SOUNDTRACK")

	got, changed := cleaner.Clean("Amélie Soundtrack", []string{"soundtrack"})
	if changed {
		t.Errorf("whitelisted title changed to %q", got)
	}
}

func TestCleanCollapsesWhitespace(t *testing.T) {
	cleaner := newDefaultCleaner(t)

	got, changed := cleaner.Clean("Dune   (Original  Soundtrack)", []string{"soundtrack"})
	if !changed || got != "Dune" {
		t.Errorf("Clean = %q, %v; want Dune, true", got, changed)
	}
}

func TestCleanNeverEmptiesTitle(t *testing.T) {
	cleaner := newDefaultCleaner(t)

	title := "Original Soundtrack"
	got, changed := cleaner.Clean(title, []string{"soundtrack"})
	if changed || got != title {
		t.Errorf("title reduced to nothing should pass through, got %q", got)
	}
}

func TestNewRejectsInvalidPattern(t *testing.T) {
	if _, err := New(Options{Pattern: "("}); err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}

func TestNewFromConfigFallsBackOnBadPattern(t *testing.T) {
	cfg := config.Default()
	cfg.TitleCleaner.Pattern = "("

	cleaner := NewFromConfig(&cfg, nil)
	if cleaner == nil {
		t.Fatal("NewFromConfig returned nil")
	}
	got, changed := cleaner.Clean("Heat (Original Soundtrack)", []string{"soundtrack"})
	if !changed || got != "Heat" {
		t.Errorf("fallback cleaner Clean = %q, %v", got, changed)
	}
}

func TestNewFromConfigDisabledPassesThrough(t *testing.T) {
	cfg := config.Default()
	cfg.TitleCleaner.Enabled = false

	cleaner := NewFromConfig(&cfg, nil)
	title := "Heat (Original Soundtrack)"
	got, changed := cleaner.Clean(title, []string{"soundtrack"})
	if changed || got != title {
		t.Errorf("disabled cleaner changed title: %q -> %q", title, got)
	}
}

func TestApplyRewritesAlbumKey(t *testing.T) {
	cleaner := newDefaultCleaner(t)

	metadata := map[string]string{
		"album":       "Blade Runner (Original Soundtrack)",
		"releasetype": "album; soundtrack",
	}
	cleaner.Apply(metadata)
	if metadata["album"] != "Blade Runner" {
		t.Errorf("album = %q, want Blade Runner", metadata["album"])
	}

	// No album key: nothing to do.
	cleaner.Apply(map[string]string{"artist": "Vangelis"})
}
