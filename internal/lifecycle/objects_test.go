package lifecycle

import "testing"

type fakeTrack struct {
	tags map[string]string
}

func (f *fakeTrack) Metadata() map[string]string { return f.tags }

type fakeAlbum struct {
	tags  map[string]string
	files []HasMetadata
}

func (f *fakeAlbum) Metadata() map[string]string { return f.tags }
func (f *fakeAlbum) ChildFiles() []HasMetadata   { return f.files }

func TestSetShelfRecursiveOnTrack(t *testing.T) {
	track := &fakeTrack{tags: map[string]string{}}

	if touched := SetShelfRecursive(track, "Jazz"); touched != 1 {
		t.Errorf("touched = %d, want 1", touched)
	}
	if track.tags[TagKey] != "Jazz" {
		t.Errorf("tag = %q, want Jazz", track.tags[TagKey])
	}
}

func TestSetShelfRecursiveOnAlbumWithFiles(t *testing.T) {
	first := &fakeTrack{tags: map[string]string{}}
	second := &fakeTrack{tags: map[string]string{}}
	album := &fakeAlbum{
		tags:  map[string]string{},
		files: []HasMetadata{first, second},
	}

	if touched := SetShelfRecursive(album, "Incoming"); touched != 3 {
		t.Errorf("touched = %d, want album plus two files", touched)
	}
	for i, track := range []*fakeTrack{first, second} {
		if track.tags[TagKey] != "Incoming" {
			t.Errorf("file %d tag = %q, want Incoming", i, track.tags[TagKey])
		}
	}
	if album.tags[TagKey] != "Incoming" {
		t.Errorf("album tag = %q, want Incoming", album.tags[TagKey])
	}
}

func TestSetShelfRecursiveOnUnsupportedObject(t *testing.T) {
	if touched := SetShelfRecursive(struct{}{}, "Jazz"); touched != 0 {
		t.Errorf("touched = %d, want 0 for an object with no capabilities", touched)
	}
	if touched := SetShelfRecursive(nil, "Jazz"); touched != 0 {
		t.Errorf("touched = %d, want 0 for nil", touched)
	}
}
