package logger_test

import (
	"bytes"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/diffy/internal/adapters/logger"
	"go.trai.ch/diffy/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing into a buffer without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		goldenName string
	}{
		{name: "simple message", msg: "some message", goldenName: "info_basic"},
		{name: "empty message", msg: "", goldenName: "info_empty"},
		{name: "multiline message", msg: "line1\nline2", goldenName: "info_multiline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Info(tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("some warning")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Debug(t *testing.T) {
	t.Run("hidden by default", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.Debug("request finished")

		assert.Empty(t, buf.String())
	})

	t.Run("shown when verbose", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.SetVerbose(true)
		lg.Debug("request finished")

		g := goldie.New(t)
		g.Assert(t, "debug_verbose", buf.Bytes())
	})

	t.Run("verbosity survives output switch", func(t *testing.T) {
		lg, _ := newTestLogger(t)
		lg.SetVerbose(true)

		buf := &bytes.Buffer{}
		lg.SetOutput(buf)
		lg.Debug("request finished")

		assert.Contains(t, buf.String(), "request finished")
	})

	t.Run("verbose can be turned off", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.SetVerbose(true)
		lg.SetVerbose(false)
		lg.Debug("request finished")

		assert.Empty(t, buf.String())
	})
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 3: cannot unmarshal"),
			goldenName: "error_multiline",
		},
		{
			name:       "two level chain",
			err:        zerr.Wrap(errors.New("underlying cause"), "wrapped message"),
			goldenName: "error_chain_zerr_two",
		},
		{
			name: "metadata at every level",
			err: zerr.With(
				zerr.Wrap(
					zerr.With(zerr.New("unexpected status"), "status_code", 404),
					domain.ErrEnvVarPushFailed.Error(),
				),
				"name", domain.EnvVarAPIKey,
			),
			goldenName: "error_chain_metadata",
		},
		{
			name: "missing prerequisites",
			err: zerr.With(
				domain.ErrPrerequisiteMissing,
				"missing", []string{domain.CircleTokenMarker, domain.SiteNameMarker},
			),
			goldenName: "error_prerequisite",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String(), "Expected no output for nil error")
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(zerr.With(zerr.Wrap(errors.New("connection refused"), "lookup failed"), "host", "github.com"))

	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, "lookup failed")
	assert.Contains(t, out, "github.com")
	assert.NotContains(t, out, "✗")

	buf.Reset()
	lg.SetJSON(false)
	lg.Error(errors.New("back to pretty"))
	assert.Contains(t, buf.String(), "✗ Error: back to pretty")
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	require.NotPanics(t, func() {
		lg := logger.New().(*logger.Logger)
		lg.SetOutput(nil)
	})
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, _ := newTestLogger(t)

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(4)
		go func() {
			defer wg.Done()
			lg.Info("concurrent info")
		}()
		go func() {
			defer wg.Done()
			lg.Debug("concurrent debug")
		}()
		go func() {
			defer wg.Done()
			lg.SetVerbose(true)
		}()
		go func() {
			defer wg.Done()
			lg.Error(errors.New("concurrent error"))
		}()
	}
	wg.Wait()
}
