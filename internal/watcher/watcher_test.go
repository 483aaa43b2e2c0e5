package watcher_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/EugeneDevastator/TraVis/internal/pubsub"
	"github.com/EugeneDevastator/TraVis/internal/watcher"
)

func startWatcher(t *testing.T, dir string) (*watcher.Watcher, <-chan pubsub.Event[string]) {
	t.Helper()
	broker := pubsub.NewBroker[string]()
	t.Cleanup(broker.Close)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	events := broker.Subscribe(ctx)

	w, err := watcher.New(watcher.Config{Dir: dir, DebounceDur: 50 * time.Millisecond}, broker)
	require.NoError(t, err, "failed to create watcher")
	t.Cleanup(func() { _ = w.Stop() })

	require.NoError(t, w.Start(), "failed to start watcher")
	return w, events
}

func TestWatcher_DebounceManyCreates(t *testing.T) {
	dir := t.TempDir()
	_, events := startWatcher(t, dir)

	for i := 0; i < 10; i++ {
		err := os.WriteFile(filepath.Join(dir, fmt.Sprintf("file%d.txt", i)), []byte("x"), 0o644)
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case ev := <-events:
		require.Equal(t, pubsub.TopicDirChanged, ev.Topic)
		require.Equal(t, dir, ev.Payload)
	case <-time.After(time.Second):
		t.Fatal("expected notification but got timeout")
	}

	select {
	case <-events:
		t.Fatal("unexpected second notification")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_IgnoresContentWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("initial"), 0o644))

	_, events := startWatcher(t, dir)

	require.NoError(t, os.WriteFile(path, []byte("changed"), 0o644))

	select {
	case <-events:
		t.Fatal("content write should not change the listing")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_Remove(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "old.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, events := startWatcher(t, dir)
	require.NoError(t, os.Remove(path))

	select {
	case ev := <-events:
		require.Equal(t, dir, ev.Payload)
	case <-time.After(time.Second):
		t.Fatal("expected notification for removal")
	}
}

func TestWatcher_Retarget(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	w, events := startWatcher(t, first)
	require.NoError(t, w.Retarget(second))
	require.Equal(t, second, w.Dir())

	require.NoError(t, os.WriteFile(filepath.Join(first, "ignored.txt"), []byte("x"), 0o644))
	select {
	case <-events:
		t.Fatal("old directory should no longer be watched")
	case <-time.After(200 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(filepath.Join(second, "seen.txt"), []byte("x"), 0o644))
	select {
	case ev := <-events:
		require.Equal(t, second, ev.Payload)
	case <-time.After(time.Second):
		t.Fatal("expected notification from new directory")
	}
}

func TestWatcher_RetargetMissingDir(t *testing.T) {
	w, _ := startWatcher(t, t.TempDir())

	err := w.Retarget(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	require.Empty(t, w.Dir())
}

func TestWatcher_StartMissingDir(t *testing.T) {
	w, err := watcher.New(watcher.DefaultConfig(filepath.Join(t.TempDir(), "missing")), pubsub.NewBroker[string]())
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	require.Error(t, w.Start())
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w, _ := startWatcher(t, t.TempDir())
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}

func TestWatcher_StartIdleThenRetarget(t *testing.T) {
	w, events := startWatcher(t, "")
	require.Empty(t, w.Dir())

	dir := t.TempDir()
	require.NoError(t, w.Retarget(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x"), 0o644))

	select {
	case ev := <-events:
		require.Equal(t, dir, ev.Payload)
	case <-time.After(time.Second):
		t.Fatal("expected notification after retarget")
	}
}

func TestWatcher_RetargetEmptyPauses(t *testing.T) {
	dir := t.TempDir()
	w, events := startWatcher(t, dir)

	require.NoError(t, w.Retarget(""))
	require.Empty(t, w.Dir())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644))

	select {
	case ev := <-events:
		t.Fatalf("unexpected notification for %s", ev.Payload)
	case <-time.After(200 * time.Millisecond):
	}
}
