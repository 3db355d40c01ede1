package filesystem

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/afero"
)

func TestLocalStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	store, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}

	info, err := os.Stat(store.Dir())
	if err != nil || !info.IsDir() {
		t.Fatalf("expected upload directory to exist, err=%v", err)
	}
}

func TestLocalStore_SaveAndOverwrite(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	path, err := store.Save(ctx, "notes.csv", strings.NewReader("x,y"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if path != filepath.Join(store.Dir(), "notes.csv") {
		t.Errorf("unexpected path %s", path)
	}

	if _, err := store.Save(ctx, "notes.csv", strings.NewReader("a,b,c")); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "a,b,c" {
		t.Errorf("expected overwritten content, got %q", data)
	}

	entries, err := os.ReadDir(store.Dir())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected no leftover temp files, found %d entries", len(entries))
	}
}

func TestLocalStore_RejectsUnsafeNames(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"../escape.txt", "a/b.txt", "", ".hidden"} {
		if _, err := store.Save(context.Background(), name, strings.NewReader("x")); err == nil {
			t.Errorf("expected Save(%q) to fail", name)
		}
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestLocalStore_WriteFailureLeavesNothing(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := store.Save(context.Background(), "broken.txt", failingReader{}); err == nil {
		t.Fatal("expected Save to fail")
	}

	entries, _ := os.ReadDir(store.Dir())
	if len(entries) != 0 {
		t.Errorf("expected empty directory after failed write, found %d entries", len(entries))
	}
}

func TestLocalStore_CanceledContext(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Save(ctx, "late.txt", strings.NewReader("data"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.Dir(), "late.txt")); !os.IsNotExist(err) {
		t.Error("canceled write must not create the destination file")
	}
}

func TestLocalStore_ConcurrentWritersLastWins(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	payloads := []string{"aaaa", "bbbb", "cccc", "dddd"}
	var wg sync.WaitGroup
	for _, p := range payloads {
		wg.Add(1)
		go func(p string) {
			defer wg.Done()
			if _, err := store.Save(context.Background(), "race.txt", strings.NewReader(p)); err != nil {
				t.Errorf("Save failed: %v", err)
			}
		}(p)
	}
	wg.Wait()

	data, err := os.ReadFile(filepath.Join(store.Dir(), "race.txt"))
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, p := range payloads {
		if string(data) == p {
			found = true
		}
	}
	if !found {
		t.Errorf("expected one complete payload, got %q", data)
	}
}

func TestLocalStore_Open(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.Save(context.Background(), "good.json", strings.NewReader(`{"a":1}`)); err != nil {
		t.Fatal(err)
	}

	f, info, err := store.Open("good.json")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	if info.Size() != 7 {
		t.Errorf("unexpected size %d", info.Size())
	}
	data, _ := io.ReadAll(f)
	if string(data) != `{"a":1}` {
		t.Errorf("unexpected content %q", data)
	}

	if _, _, err := store.Open("../good.json"); !os.IsNotExist(err) {
		t.Errorf("expected not-exist for unsafe name, got %v", err)
	}
	if _, _, err := store.Open("missing.txt"); !os.IsNotExist(err) {
		t.Errorf("expected not-exist for missing file, got %v", err)
	}
}

func TestLocalStore_MemFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := NewLocalStoreWithFs(fs, "/data/uploads")
	if err != nil {
		t.Fatal(err)
	}

	for _, content := range []string{"first", "second"} {
		if _, err := store.Save(context.Background(), "notes.txt", strings.NewReader(content)); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	data, err := afero.ReadFile(fs, "/data/uploads/notes.txt")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("expected overwrite, got %q", data)
	}

	entries, err := afero.ReadDir(fs, "/data/uploads")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected a single file, found %d entries", len(entries))
	}
}
