package tailer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, tl *Tailer) string {
	t.Helper()
	select {
	case line, ok := <-tl.Lines():
		require.True(t, ok, "lines channel closed")
		return line
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for line")
		return ""
	}
}

func TestTailer_FromStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logfile.log")
	require.NoError(t, os.WriteFile(path, []byte("first\r\nsecond\n"), 0644))

	cfg := DefaultConfig()
	cfg.FromStart = true
	tl, err := New(context.Background(), path, cfg)
	require.NoError(t, err)
	defer tl.Stop()

	assert.Equal(t, "first", receive(t, tl))
	assert.Equal(t, "second", receive(t, tl))
}

func TestTailer_FollowsAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logfile.log")
	require.NoError(t, os.WriteFile(path, []byte("old line\n"), 0644))

	tl, err := New(context.Background(), path, DefaultConfig())
	require.NoError(t, err)
	defer tl.Stop()

	// Give the poller time to settle at the end of the file.
	time.Sleep(300 * time.Millisecond)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.WriteString("new ")
	require.NoError(t, err)
	time.Sleep(600 * time.Millisecond)
	_, err = f.WriteString("line\n")
	require.NoError(t, err)

	assert.Equal(t, "new line", receive(t, tl))
}

func TestTailer_MissingFile(t *testing.T) {
	_, err := New(context.Background(), filepath.Join(t.TempDir(), "missing.log"), DefaultConfig())
	require.Error(t, err)
}

func TestTailer_StopClosesChannels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logfile.log")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	tl, err := New(context.Background(), path, DefaultConfig())
	require.NoError(t, err)

	_ = tl.Stop()
	_ = tl.Stop() // second call is a no-op

	_, ok := <-tl.Lines()
	assert.False(t, ok)
	_, ok = <-tl.Errors()
	assert.False(t, ok)
}
