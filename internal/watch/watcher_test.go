package watch_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"camroll/internal/watch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherLifecycle(t *testing.T) {
	w, err := watch.New()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, w.AddDirectory(dir))
	assert.Equal(t, []string{dir}, w.Directories())

	require.NoError(t, w.Start())
	assert.True(t, w.IsRunning())
	assert.Error(t, w.Start(), "double start must fail")

	w.Stop()
	assert.False(t, w.IsRunning())
	// Stopping twice is harmless.
	w.Stop()
}

func TestWatcherRejectsFileAsDirectory(t *testing.T) {
	w, err := watch.New()
	require.NoError(t, err)
	defer w.Stop()

	file := filepath.Join(t.TempDir(), "a.cr2")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	assert.Error(t, w.AddDirectory(file))
	assert.Error(t, w.AddDirectory(filepath.Join(t.TempDir(), "missing")))
}

func TestWatcherDeliversArrivals(t *testing.T) {
	w, err := watch.New()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, w.AddDirectory(dir))
	require.NoError(t, w.Start())
	defer w.Stop()

	path := filepath.Join(dir, "IMG001.CR2")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	select {
	case arrival := <-w.Arrivals():
		assert.Equal(t, path, arrival.Path)
		assert.False(t, arrival.Info.IsDir())
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for arrival event")
	}
}

func TestWatcherStopDuringBurstClosesArrivals(t *testing.T) {
	w, err := watch.New()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, w.AddDirectory(dir))
	require.NoError(t, w.Start())

	// Keep events flowing while Stop runs, so a delivery can be in flight
	// inside the event loop at the moment of shutdown.
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for i := 0; i < 50; i++ {
			name := filepath.Join(dir, "IMG"+string(rune('A'+i%26))+".CR2")
			if os.WriteFile(name, []byte("x"), 0644) != nil {
				return
			}
		}
	}()

	time.Sleep(10 * time.Millisecond)
	w.Stop()

	// The event loop owns the channel close; drain until it happens.
	deadline := time.After(3 * time.Second)
	for {
		select {
		case _, ok := <-w.Arrivals():
			if !ok {
				<-writerDone
				return
			}
		case <-deadline:
			t.Fatal("arrivals channel never closed after Stop")
		}
	}
}

func TestRunSettledCoalescesBursts(t *testing.T) {
	arrivals := make(chan watch.FileArrival)
	runs := make(chan struct{}, 4)

	done := make(chan struct{})
	go func() {
		watch.RunSettled(arrivals, 50*time.Millisecond, nil, func() {
			runs <- struct{}{}
		})
		close(done)
	}()

	for i := 0; i < 3; i++ {
		arrivals <- watch.FileArrival{Path: "IMG.CR2"}
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case <-runs:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a single settled run")
	}
	assert.Empty(t, runs, "burst must coalesce into one run")

	close(arrivals)
	<-done
}

func TestRunSettledFiltersUnacceptedPaths(t *testing.T) {
	arrivals := make(chan watch.FileArrival)
	runs := make(chan struct{}, 1)

	go watch.RunSettled(arrivals, 20*time.Millisecond, func(path string) bool {
		return filepath.Ext(path) == ".cr2"
	}, func() {
		runs <- struct{}{}
	})

	arrivals <- watch.FileArrival{Path: "notes.txt"}

	select {
	case <-runs:
		t.Fatal("rejected path must not trigger a run")
	case <-time.After(100 * time.Millisecond):
	}
	close(arrivals)
}
