package shelf

import (
	"strings"
	"testing"
)

func defaultsPlausibility() Plausibility {
	return Plausibility{Defaults: []string{DefaultName, IncomingName}}
}

func TestCheckAcceptsDefaults(t *testing.T) {
	p := defaultsPlausibility()
	for _, name := range []string{"Standard", "Incoming"} {
		if ok, reason := p.Check(name); !ok {
			t.Errorf("Check(%q) rejected a default shelf: %s", name, reason)
		}
	}
}

func TestCheckAcceptsKnownNames(t *testing.T) {
	// "Pink Floyd - The Wall" would normally trip the separator heuristic,
	// but a registered name is never rejected.
	p := Plausibility{
		Defaults: []string{DefaultName},
		Known:    func(name string) bool { return name == "Pink Floyd - The Wall" },
	}
	if ok, _ := p.Check("Pink Floyd - The Wall"); !ok {
		t.Error("known names must always be plausible")
	}
}

func TestCheckRejectsArtistAlbumSeparator(t *testing.T) {
	ok, reason := defaultsPlausibility().Check("Pink Floyd - The Wall")
	if ok {
		t.Fatal("artist-album string should be implausible")
	}
	if !strings.Contains(reason, "' - '") {
		t.Errorf("reason should mention the ' - ' separator, got %q", reason)
	}
}

func TestCheckRejectsLongNames(t *testing.T) {
	name := strings.Repeat("x", MaxNameLength+1)
	ok, reason := defaultsPlausibility().Check(name)
	if ok {
		t.Fatal("over-long name should be implausible")
	}
	if !strings.Contains(reason, "too long") {
		t.Errorf("reason = %q", reason)
	}
}

func TestCheckRejectsTooManyWords(t *testing.T) {
	ok, reason := defaultsPlausibility().Check("one two three four")
	if ok {
		t.Fatal("four-word name should be implausible")
	}
	if !strings.Contains(reason, "too many words (4)") {
		t.Errorf("reason = %q", reason)
	}
}

func TestCheckRejectsAlbumIndicators(t *testing.T) {
	for _, name := range []string{"Greatest Hits Vol. 2", "Disc 1", "Best Of CD"} {
		ok, reason := defaultsPlausibility().Check(name)
		if ok {
			t.Errorf("Check(%q) should be implausible", name)
			continue
		}
		if !strings.Contains(reason, "album indicator") {
			t.Errorf("Check(%q) reason = %q", name, reason)
		}
	}
}

func TestCheckAccumulatesReasons(t *testing.T) {
	name := "Some Artist - A Very Long Album Title Vol. 3"
	ok, reason := defaultsPlausibility().Check(name)
	if ok {
		t.Fatal("name should be implausible")
	}
	if strings.Count(reason, ";") < 2 {
		t.Errorf("expected multiple joined reasons, got %q", reason)
	}
}

func TestCheckAcceptsShortNames(t *testing.T) {
	for _, name := range []string{"Jazz", "Kids Music", "Lossless"} {
		if ok, reason := defaultsPlausibility().Check(name); !ok {
			t.Errorf("Check(%q) = implausible (%s), want plausible", name, reason)
		}
	}
}
