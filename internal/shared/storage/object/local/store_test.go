package local

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
)

func TestSaveOpenRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	key, size, mimeType, err := store.Save(ctx, "project", "hero image.PNG", bytes.NewReader([]byte("fake png bytes")))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if size != int64(len("fake png bytes")) {
		t.Fatalf("expected size %d, got %d", len("fake png bytes"), size)
	}
	if mimeType == "" {
		t.Fatal("expected a detected mime type")
	}
	if !strings.HasPrefix(key, "project/") {
		t.Fatalf("expected namespaced key, got %q", key)
	}

	rc, err := store.Open(ctx, key)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "fake png bytes" {
		t.Fatalf("round trip mismatch: %q", data)
	}
}

func TestViewURLMapsToFilesPath(t *testing.T) {
	store := New(t.TempDir())
	if got := store.ViewURL("project/abc_hero.png"); got != "/files/project/abc_hero.png" {
		t.Fatalf("ViewURL = %q", got)
	}
	if got := store.ViewURL("/project/abc_hero.png"); got != "/files/project/abc_hero.png" {
		t.Fatalf("ViewURL with leading slash = %q", got)
	}
}

func TestOpenRejectsTraversal(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Open(context.Background(), "../../etc/passwd"); err == nil {
		t.Fatal("expected traversal key to be rejected")
	}
}

func TestDeleteMissingIsNoError(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Delete(context.Background(), "project/never-existed.png"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}
