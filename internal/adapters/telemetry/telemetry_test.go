package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/diffy/internal/adapters/telemetry"
	"go.trai.ch/diffy/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestOTelTracer_SpanReachesBridge(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var lines []string
	log.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		lines = append(lines, msg)
	}).Times(1)

	tracer := telemetry.NewOTelTracer("test", telemetry.NewBridge(log))
	_, span := tracer.Start(context.Background(), "diffy.list_projects")
	span.SetAttribute("page", 2)
	span.End()

	require.NoError(t, tracer.Shutdown(context.Background()))
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "diffy.list_projects page=2 ("), lines[0])
	assert.NotContains(t, lines[0], "failed")
}

func TestOTelTracer_RecordError(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var line string
	log.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		line = msg
	})

	tracer := telemetry.NewOTelTracer("test", telemetry.NewBridge(log))
	_, span := tracer.Start(context.Background(), "github.current_login")
	span.RecordError(errors.New("HTTP 401"))
	span.End()

	assert.Contains(t, line, "github.current_login")
	assert.Contains(t, line, "failed: HTTP 401")
}

func TestOTelSpan_SetAttribute(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "string", value: "mysite", want: "k=mysite"},
		{name: "int", value: 42, want: "k=42"},
		{name: "int64", value: int64(7), want: "k=7"},
		{name: "bool", value: true, want: "k=true"},
		{name: "stringer", value: time.Second, want: "k=1s"},
		{name: "other", value: 1.5, want: "k=1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			log := mocks.NewMockLogger(ctrl)

			var line string
			log.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
				line = msg
			})

			tracer := telemetry.NewOTelTracer("test", telemetry.NewBridge(log))
			_, span := tracer.Start(context.Background(), "span")
			span.SetAttribute("k", tt.value)
			span.End()

			assert.Contains(t, line, tt.want)
		})
	}
}

func TestBridge_NilLogger(t *testing.T) {
	bridge := telemetry.NewBridge(nil)

	tp := sdktrace.NewTracerProvider()
	_, span := tp.Tracer("test").Start(context.Background(), "test-span")
	span.SetStatus(codes.Error, "boom")
	span.End()

	if roSpan, ok := span.(sdktrace.ReadOnlySpan); ok {
		assert.NotPanics(t, func() { bridge.OnEnd(roSpan) })
	}
	assert.NoError(t, bridge.ForceFlush(context.Background()))
	assert.NoError(t, bridge.Shutdown(context.Background()))
}

func TestFormatSpan(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		attrs   map[string]string
		failure string
		want    string
	}{
		{
			name:    "plain",
			elapsed: 1500 * time.Microsecond,
			want:    "diffy.validate_key (2ms)",
		},
		{
			name:    "sorted attributes",
			elapsed: 12 * time.Millisecond,
			attrs:   map[string]string{"site": "mysite", "name": "DIFFY_API_KEY"},
			want:    "circleci.set_env_var name=DIFFY_API_KEY site=mysite (12ms)",
		},
		{
			name:    "failure",
			elapsed: time.Second,
			failure: "status 500",
			want:    "diffy.validate_key (1s) failed: status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name := "diffy.validate_key"
			if tt.attrs != nil {
				name = "circleci.set_env_var"
			}
			assert.Equal(t, tt.want, telemetry.FormatSpan(name, tt.elapsed, tt.attrs, tt.failure))
		})
	}
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	gotCtx, span := tracer.Start(ctx, "anything")
	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()

	assert.Equal(t, ctx, gotCtx)
	assert.NoError(t, tracer.Shutdown(ctx))
}
