package telemetry

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/diffy/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor and reports finished spans as
// debug log lines.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{
		logger: logger,
	}
}

// OnStart does nothing; spans are reported once they end.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil {
		return
	}
	if !s.SpanContext().IsValid() {
		return
	}

	b.logger.Debug(FormatSpan(s.Name(), s.EndTime().Sub(s.StartTime()), spanAttributes(s), spanError(s)))
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// FormatSpan renders a finished span as a single line.
func FormatSpan(name string, elapsed time.Duration, attrs map[string]string, failure string) string {
	var sb strings.Builder
	sb.WriteString(name)

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%s", k, attrs[k])
	}

	fmt.Fprintf(&sb, " (%s)", elapsed.Round(time.Millisecond))
	if failure != "" {
		sb.WriteString(" failed: ")
		sb.WriteString(failure)
	}

	return sb.String()
}

func spanAttributes(s sdktrace.ReadOnlySpan) map[string]string {
	attrs := make(map[string]string, len(s.Attributes()))
	for _, kv := range s.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	return attrs
}

func spanError(s sdktrace.ReadOnlySpan) string {
	if s.Status().Code != codes.Error {
		return ""
	}
	if s.Status().Description == "" {
		return "unknown error"
	}
	return s.Status().Description
}
