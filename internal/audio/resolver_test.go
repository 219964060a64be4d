package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fundalabs/funda/internal/model"
)

// fakeResources is an in-memory ResourceRepository.
type fakeResources struct {
	downloaded map[string]bool
	err        error
}

func (f *fakeResources) Upsert(resource *model.UnitResource) error { return nil }

func (f *fakeResources) Downloaded(unitID uint, language string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.downloaded[language], nil
}

func writeLocalClip(t *testing.T, dir, language, filename string) string {
	t.Helper()
	langDir := filepath.Join(dir, language)
	if err := os.MkdirAll(langDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(langDir, filename)
	if err := os.WriteFile(path, []byte("mp3"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveLocalHit(t *testing.T) {
	dir := t.TempDir()
	path := writeLocalClip(t, dir, "zu", "sawubona.mp3")

	r := NewResolver(dir, "http://backend.example", &fakeResources{downloaded: map[string]bool{"zu": true}})
	loc, err := r.Resolve(1, "zu", "sawubona.mp3")
	if err != nil {
		t.Fatal(err)
	}
	if loc.Source != SourceLocal || loc.Path != path {
		t.Fatalf("got %+v, want local %s", loc, path)
	}
}

func TestResolveFlagSetButFileMissing(t *testing.T) {
	// The downloaded flag is advisory: a missing file falls back to remote.
	r := NewResolver(t.TempDir(), "http://backend.example", &fakeResources{downloaded: map[string]bool{"zu": true}})
	loc, err := r.Resolve(1, "zu", "missing.mp3")
	if err != nil {
		t.Fatal(err)
	}
	if loc.Source != SourceRemote {
		t.Fatalf("got %+v, want remote fallback", loc)
	}
	if loc.URL != "http://backend.example/api/word/audio/get/missing.mp3" {
		t.Errorf("URL = %s", loc.URL)
	}
}

func TestResolveFlagUnset(t *testing.T) {
	dir := t.TempDir()
	writeLocalClip(t, dir, "zu", "sawubona.mp3")

	// Flag off for the language means remote, even though the file exists.
	r := NewResolver(dir, "http://backend.example", &fakeResources{})
	loc, err := r.Resolve(1, "zu", "sawubona.mp3")
	if err != nil {
		t.Fatal(err)
	}
	if loc.Source != SourceRemote {
		t.Fatalf("got %+v, want remote", loc)
	}
}

func TestResolveFlagLookupErrorDegradesToRemote(t *testing.T) {
	r := NewResolver(t.TempDir(), "http://backend.example", &fakeResources{err: errors.New("db down")})
	loc, err := r.Resolve(1, "zu", "sawubona.mp3")
	if err != nil {
		t.Fatal(err)
	}
	if loc.Source != SourceRemote {
		t.Fatalf("got %+v, want remote on flag lookup failure", loc)
	}
}

func TestResolveRejectsEmptyFilename(t *testing.T) {
	r := NewResolver(t.TempDir(), "http://backend.example", &fakeResources{})
	if _, err := r.Resolve(1, "zu", ""); err == nil {
		t.Fatal("expected error for empty filename")
	}
}

func TestResolvePathLikeFilenameNeverLocal(t *testing.T) {
	dir := t.TempDir()
	writeLocalClip(t, dir, "zu", "sawubona.mp3")

	r := NewResolver(dir, "http://backend.example", &fakeResources{downloaded: map[string]bool{"zu": true}})
	loc, err := r.Resolve(1, "zu", "../zu/sawubona.mp3")
	if err != nil {
		t.Fatal(err)
	}
	if loc.Source != SourceRemote {
		t.Fatalf("got %+v, want remote for path-like filename", loc)
	}
	if loc.URL != "http://backend.example/api/word/audio/get/sawubona.mp3" {
		t.Errorf("URL = %s", loc.URL)
	}
}

func TestRemoteURLEmptyWithoutBase(t *testing.T) {
	r := NewResolver(t.TempDir(), "", &fakeResources{})
	if got := r.RemoteURL("x.mp3"); got != "" {
		t.Errorf("RemoteURL = %q, want empty without a remote base", got)
	}
}
