package tracing

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func readRecords(t *testing.T, path string) []StepRecord {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	var records []StepRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec StepRecord
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
		records = append(records, rec)
	}
	require.NoError(t, scanner.Err())
	return records
}

func TestFileExporter_WritesRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "traces.jsonl")
	exporter, err := NewFileExporter(path)
	require.NoError(t, err)

	traceID := trace.TraceID{1, 2, 3}
	parent := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: trace.SpanID{9}})
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	stubs := tracetest.SpanStubs{
		{
			Name:        SpanAdvance,
			SpanContext: trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: trace.SpanID{1}}),
			Parent:      parent,
			StartTime:   start,
			EndTime:     start.Add(1500 * time.Microsecond),
			Status:      sdktrace.Status{Code: codes.Ok},
			Attributes:  []attribute.KeyValue{attribute.String(AttrInput, "0:Disk")},
		},
		{
			Name:      SpanCurrentView,
			StartTime: start,
			EndTime:   start,
			Status:    sdktrace.Status{Code: codes.Error, Description: "boom"},
		},
	}
	require.NoError(t, exporter.ExportSpans(context.Background(), stubs.Snapshots()))
	require.NoError(t, exporter.Shutdown(context.Background()))

	records := readRecords(t, path)
	require.Len(t, records, 2)

	require.Equal(t, SpanAdvance, records[0].Name)
	require.Equal(t, parent.SpanID().String(), records[0].ParentID)
	require.Equal(t, "OK", records[0].Status)
	require.InDelta(t, 1.5, records[0].DurationMs, 0.001)
	require.Equal(t, "0:Disk", records[0].Attributes[AttrInput])

	require.Equal(t, "ERROR", records[1].Status)
	require.Equal(t, "boom", records[1].Message)
	require.Empty(t, records[1].ParentID)
	require.Nil(t, records[1].Attributes)
}

func TestFileExporter_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traces.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"earlier"}`+"\n"), 0o600))

	exporter, err := NewFileExporter(path)
	require.NoError(t, err)
	stub := tracetest.SpanStub{Name: "later", StartTime: time.Now(), EndTime: time.Now()}
	require.NoError(t, exporter.ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{stub.Snapshot()}))
	require.NoError(t, exporter.Shutdown(context.Background()))

	records := readRecords(t, path)
	require.Len(t, records, 2)
	require.Equal(t, "earlier", records[0].Name)
	require.Equal(t, "later", records[1].Name)
}

func TestFileExporter_AfterShutdown(t *testing.T) {
	exporter, err := NewFileExporter(filepath.Join(t.TempDir(), "traces.jsonl"))
	require.NoError(t, err)

	require.NoError(t, exporter.Shutdown(context.Background()))
	require.NoError(t, exporter.Shutdown(context.Background()))

	stub := tracetest.SpanStub{Name: "late"}
	err = exporter.ExportSpans(context.Background(), []sdktrace.ReadOnlySpan{stub.Snapshot()})
	require.ErrorContains(t, err, "trace file is closed")
}
