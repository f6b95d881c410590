package shelf

import (
	"path/filepath"
	"testing"
)

func newTestClassifier(baseDir string) *Classifier {
	return NewClassifier(baseDir, DefaultName, defaultsPlausibility(), nil)
}

func TestClassifyFirstComponentUnderBase(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "music")
	c := newTestClassifier(base)

	path := filepath.Join(base, "Incoming", "Artist", "Album", "01 Track.flac")
	if got := c.Classify(path); got != "Incoming" {
		t.Errorf("Classify = %q, want Incoming", got)
	}
}

func TestClassifyFileDirectlyInBase(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "music")
	c := newTestClassifier(base)

	if got := c.Classify(filepath.Join(base, "loose-track.mp3")); got != DefaultName {
		t.Errorf("Classify = %q, want %q for file in base directory", got, DefaultName)
	}
}

func TestClassifyImplausibleNameFallsBackToDefault(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "music")
	c := newTestClassifier(base)

	path := filepath.Join(base, "Pink Floyd - The Wall", "01 In the Flesh.flac")
	if got := c.Classify(path); got != DefaultName {
		t.Errorf("Classify = %q, want %q for implausible folder name", got, DefaultName)
	}
}

func TestClassifyKnownNameSurvivesHeuristics(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "music")
	p := Plausibility{
		Defaults: []string{DefaultName},
		Known:    func(name string) bool { return name == "Vol. Favorites" },
	}
	c := NewClassifier(base, DefaultName, p, nil)

	path := filepath.Join(base, "Vol. Favorites", "Artist", "Album", "track.flac")
	if got := c.Classify(path); got != "Vol. Favorites" {
		t.Errorf("Classify = %q, want the registered shelf name", got)
	}
}

func TestClassifyOutsideBaseUsesFallback(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "music")
	c := newTestClassifier(base)

	path := filepath.Join(string(filepath.Separator), "backup", "Jazz", "Artist", "Album", "track.flac")
	if got := c.Classify(path); got != "Jazz" {
		t.Errorf("Classify = %q, want fallback-detected Jazz", got)
	}
}

func TestClassifyNoBaseDirFallbackOffsets(t *testing.T) {
	c := newTestClassifier("")

	// Four or more components: shelf sits four from the end.
	path := filepath.Join("Rock", "Artist", "Album", "track.flac")
	if got := c.Classify(path); got != "Rock" {
		t.Errorf("Classify = %q, want Rock", got)
	}

	// Exactly three components: shelf sits three from the end.
	path = filepath.Join("Jazz", "Album", "track.flac")
	if got := c.Classify(path); got != "Jazz" {
		t.Errorf("Classify = %q, want Jazz", got)
	}

	// Too short to guess.
	if got := c.Classify("track.flac"); got != DefaultName {
		t.Errorf("Classify = %q, want %q for a bare filename", got, DefaultName)
	}
}

func TestClassifyFallbackRejectsSuspiciousGuess(t *testing.T) {
	c := newTestClassifier("")

	path := filepath.Join("Artist - Album", "Artist", "Album", "track.flac")
	if got := c.Classify(path); got != DefaultName {
		t.Errorf("Classify = %q, want %q", got, DefaultName)
	}
}

func TestClassifyNeverPanicsOnOddInput(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "music")
	c := newTestClassifier(base)

	for _, path := range []string{"", ".", "..", "///", base} {
		got := c.Classify(path)
		if got == "" {
			t.Errorf("Classify(%q) returned empty shelf", path)
		}
	}
}
