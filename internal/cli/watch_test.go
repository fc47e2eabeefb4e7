package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRecorder collects watcher runs for assertions
type runRecorder struct {
	mu   sync.Mutex
	runs []error
}

func (r *runRecorder) record(_ GenerationSummary, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, err)
}

func (r *runRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.runs)
}

func (r *runRecorder) last() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs[len(r.runs)-1]
}

func startWatcher(t *testing.T, root string) *runRecorder {
	t.Helper()

	watcher, err := NewWatcher(NewGenerator(loadConfig(t, root), nil, nil), Config{})
	require.NoError(t, err)
	watcher.SetDebounce(20 * time.Millisecond)

	recorder := &runRecorder{}
	watcher.OnRun(recorder.record)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- watcher.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("watcher did not stop")
		}
	})

	require.Eventually(t, func() bool { return recorder.count() >= 1 }, 5*time.Second, 10*time.Millisecond)
	return recorder
}

func TestWatcher_RegeneratesOnChange(t *testing.T) {
	root := writeProject(t, counterProject)
	recorder := startWatcher(t, root)
	require.NoError(t, recorder.last())

	stub := filepath.Join(root, "target", "roast", "java", "Counter.java")
	assert.NotContains(t, readFile(t, stub), "double")

	lib := filepath.Join(root, "src", "lib.rs")
	updated := readFile(t, lib) + "\nimpl Counter {\n    pub fn ratio(&self) -> f64 { 0.5 }\n}\n"
	require.NoError(t, os.WriteFile(lib, []byte(updated), 0644))

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(stub)
		return err == nil && strings.Contains(string(data), "public native double ratio();")
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatcher_KeepsRunningAfterFailure(t *testing.T) {
	root := writeProject(t, counterProject)
	recorder := startWatcher(t, root)

	broken := filepath.Join(root, "src", "broken.rs")
	require.NoError(t, os.WriteFile(broken, []byte("impl Counter {\n    pub fn bad(&self) -> Vec<String> { Vec::new() }\n}\n"), 0644))
	require.Eventually(t, func() bool { return recorder.count() >= 2 && recorder.last() != nil }, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, os.Remove(broken))
	require.Eventually(t, func() bool { return recorder.last() == nil }, 5*time.Second, 20*time.Millisecond)
}

func TestWatcher_HandleEvent(t *testing.T) {
	root := writeProject(t, counterProject)
	watcher, err := NewWatcher(NewGenerator(loadConfig(t, root), nil, nil), Config{})
	require.NoError(t, err)
	defer watcher.watcher.Close()

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"rust write", fsnotify.Event{Name: filepath.Join(root, "src", "lib.rs"), Op: fsnotify.Write}, true},
		{"rust remove", fsnotify.Event{Name: filepath.Join(root, "src", "old.rs"), Op: fsnotify.Remove}, true},
		{"chmod only", fsnotify.Event{Name: filepath.Join(root, "src", "lib.rs"), Op: fsnotify.Chmod}, false},
		{"other extension", fsnotify.Event{Name: filepath.Join(root, "src", "notes.txt"), Op: fsnotify.Write}, false},
		{"generated output", fsnotify.Event{Name: filepath.Join(root, "src", "generated", "counter.rs"), Op: fsnotify.Write}, false},
		{"build output", fsnotify.Event{Name: filepath.Join(root, "src", "target", "x.rs"), Op: fsnotify.Create}, false},
		{"hidden dir", fsnotify.Event{Name: filepath.Join(root, "src", ".cache", "x.rs"), Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, watcher.handleEvent(tt.event))
		})
	}
}
