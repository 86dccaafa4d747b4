package advanced

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpaulkeeler/voronoi-uniform/dbg"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, h.Enabled(context.Background(), level), "level %v", level)
	}
	assert.NoError(t, h.Handle(context.Background(), slog.Record{}))
	assert.IsType(t, nopHandler{}, h.WithAttrs([]slog.Attr{slog.String("key", "val")}))
	assert.IsType(t, nopHandler{}, h.WithGroup("group"))
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	require.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelWarn))
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	tess, generators := fixtureTessellation("square", "collinear")
	_, err := SampleCells(tess, generators, NewSource(1), SkipDegenerate())
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.Contains(out, "bounded cell"), out)
	assert.True(t, strings.Contains(out, "unbounded cell"), out)
	assert.True(t, strings.Contains(out, "skipping degenerate cell"), out)
	assert.True(t, strings.Contains(out, "sampled bounded cells"), out)

	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

// Debug names are only generated for records that a handler will write.
func TestSilentLoggerNamesNothing(t *testing.T) {
	dbg.Reset()
	t.Cleanup(dbg.Reset)

	tess, generators := fixtureTessellation("square", "collinear", "hexagon")
	_, err := SampleCells(tess, generators, NewSource(1), SkipDegenerate())
	require.NoError(t, err)
	_, err = SampleCellsParallel(tess, generators, CellStreams(1), 2, SkipDegenerate())
	require.NoError(t, err)
	assert.Zero(t, dbg.Len())
}
