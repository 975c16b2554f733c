package camera

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// replace writes data next to path and renames it over path, the way most
// editors save.
func replace(t *testing.T, path, data string) {
	t.Helper()
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(data), 0o644))
	require.NoError(t, os.Rename(tmp, path))
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camera.toml")
	require.NoError(t, os.WriteFile(path, []byte("step = 1.0\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var logs bytes.Buffer
	ch, err := Watch(ctx, path, slog.New(slog.NewTextHandler(&logs, nil)))
	require.NoError(t, err)

	// a broken edit is skipped, the following good one comes through
	replace(t, path, "step = \n")
	replace(t, path, "step = 0.75\n")

	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg, ok := <-ch:
			require.True(t, ok, "watcher closed early")
			if cfg.Step != 0.75 {
				continue
			}
			cancel()
			for range ch {
			}
			return
		case <-timeout:
			t.Fatal("no config reload observed")
		}
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "camera.toml"), nil)
	assert.Error(t, err)
}
