package audio

import (
	"testing"
)

func TestPlayReplacesActivePlayback(t *testing.T) {
	dir := t.TempDir()
	writeLocalClip(t, dir, "zu", "a.mp3")
	writeLocalClip(t, dir, "zu", "b.mp3")
	resolver := NewResolver(dir, "http://backend.example", &fakeResources{downloaded: map[string]bool{"zu": true}})

	m := NewManager()
	m.Play("session-1", resolver, 1, "zu", []string{"a.mp3"})
	pb := m.Play("session-1", resolver, 1, "zu", []string{"b.mp3"})

	active, ok := m.Active("session-1")
	if !ok {
		t.Fatal("expected an active playback")
	}
	if active != pb {
		t.Fatal("expected the second playback to replace the first")
	}
	if len(active.Clips) != 1 || active.Clips[0].Source != SourceLocal {
		t.Fatalf("unexpected clips: %+v", active.Clips)
	}
}

func TestPlaySkipsUnresolvableClips(t *testing.T) {
	dir := t.TempDir()
	writeLocalClip(t, dir, "zu", "a.mp3")
	resolver := NewResolver(dir, "http://backend.example", &fakeResources{downloaded: map[string]bool{"zu": true}})

	m := NewManager()
	pb := m.Play("session-1", resolver, 1, "zu", []string{"a.mp3", "", "c.mp3"})

	if len(pb.Clips) != 2 {
		t.Fatalf("clips = %d, want 2 (local hit plus remote fallback)", len(pb.Clips))
	}
	if len(pb.Skipped) != 1 || pb.Skipped[0] != "" {
		t.Fatalf("skipped = %v, want the empty filename only", pb.Skipped)
	}
}

func TestStopAndStopAll(t *testing.T) {
	resolver := NewResolver(t.TempDir(), "http://backend.example", &fakeResources{})
	m := NewManager()

	m.Play("session-1", resolver, 1, "zu", []string{"a.mp3"})
	m.Play("session-2", resolver, 1, "zu", []string{"b.mp3"})

	m.Stop("session-1")
	if _, ok := m.Active("session-1"); ok {
		t.Fatal("expected session-1 playback stopped")
	}
	if _, ok := m.Active("session-2"); !ok {
		t.Fatal("expected session-2 playback still active")
	}

	m.StopAll()
	if _, ok := m.Active("session-2"); ok {
		t.Fatal("expected all playbacks stopped")
	}
}
