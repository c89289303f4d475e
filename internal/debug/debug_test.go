package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSetOutput_WritesAtLevel(t *testing.T) {
	t.Cleanup(func() { _ = Close() })

	buf := &bytes.Buffer{}
	SetOutput(buf, zerolog.DebugLevel, false)

	l := Logger()
	l.Debug().Int("trap", 3).Msg("trap pushed")
	require.Contains(t, buf.String(), `"message":"trap pushed"`)
	require.Contains(t, buf.String(), `"level":"debug"`)
}

func TestSetOutput_FiltersBelowLevel(t *testing.T) {
	t.Cleanup(func() { _ = Close() })

	buf := &bytes.Buffer{}
	SetOutput(buf, zerolog.InfoLevel, false)

	l := Logger()
	l.Debug().Msg("hidden")
	require.Empty(t, buf.String())
}

func TestInit_AppendsToFile(t *testing.T) {
	t.Cleanup(func() { _ = Close() })

	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	require.NoError(t, Init(path))

	l := Logger()
	l.Debug().Str("to", "file").Msg("hello")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"to":"file"`)
}

func TestInit_EmptyPath(t *testing.T) {
	require.Error(t, Init(""))
}

func TestClose_SilencesLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutput(buf, zerolog.DebugLevel, false)
	require.NoError(t, Close())

	l := Logger()
	l.Debug().Msg("after close")
	require.Empty(t, buf.String())
}

func TestSetOutput_RacesFirstLogger(t *testing.T) {
	t.Setenv(EnvVar, filepath.Join(t.TempDir(), "env.log"))
	t.Cleanup(func() {
		envOnce = sync.Once{}
		_ = Close()
	})

	for i := 0; i < 200; i++ {
		envOnce = sync.Once{}

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = Logger()
		}()
		go func() {
			defer wg.Done()
			SetOutput(&bytes.Buffer{}, zerolog.DebugLevel, false)
		}()

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatalf("Logger and SetOutput deadlocked on iteration %d", i)
		}
	}
}
