package hepvec

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hepvec/blobstore"
	"github.com/hupe1980/hepvec/columnar"
	"github.com/hupe1980/hepvec/object"
)

func TestConfigure_Metrics(t *testing.T) {
	m := &BasicMetricsCollector{}
	Configure(WithMetricsCollector(m))
	t.Cleanup(func() { Configure() })

	v := object.FromXYZ(3, 4, 12)
	assert.InDelta(t, 13.0, v.Mag(), 1e-12)
	_, err := v.Add(object.FromXYZT(1, 1, 1, 1))
	require.NoError(t, err)
	col, err := columnar.FromFields(columnar.F("x", 1, 2), columnar.F("y", 3, 4))
	require.NoError(t, err)
	_, err = v.Add(col)
	require.NoError(t, err)

	stats := m.GetStats()
	assert.GreaterOrEqual(t, stats.DispatchCount, int64(3))
	assert.Zero(t, stats.DispatchErrors)
	assert.GreaterOrEqual(t, stats.ByBackend["object"], int64(2))
	assert.GreaterOrEqual(t, stats.ByBackend["columnar"], int64(1))

	Configure()
	_ = v.Mag()
	assert.Equal(t, stats.DispatchCount, m.GetStats().DispatchCount)
}

func TestConfigure_Errors(t *testing.T) {
	m := &BasicMetricsCollector{}
	Configure(WithMetricsCollector(m))
	t.Cleanup(func() { Configure() })

	_, err := object.FromXY(1, 2).Equal(object.FromXYZ(1, 2, 3))
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	var de *DimensionError
	assert.True(t, errors.As(err, &de))
	assert.GreaterOrEqual(t, m.GetStats().DispatchErrors, int64(1))
}

func TestConfigure_Logger(t *testing.T) {
	var buf bytes.Buffer
	Configure(WithLogger(NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	t.Cleanup(func() { Configure() })

	_ = object.FromXY(3, 4).Rho()
	assert.Contains(t, buf.String(), "dispatch completed")
	assert.Contains(t, buf.String(), "op=rho")
	assert.Contains(t, buf.String(), "backend=object")
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	m := &BasicMetricsCollector{}
	var buf bytes.Buffer
	Configure(
		WithMetricsCollector(m),
		WithLogger(NewLogger(slog.NewTextHandler(&buf, nil))),
	)
	t.Cleanup(func() { Configure() })

	v, err := columnar.FromFields(columnar.F("x", 1, 2), columnar.F("y", 3, 4), columnar.F("z", 5, 6))
	require.NoError(t, err)

	store := blobstore.NewMemoryStore()
	require.NoError(t, Save(ctx, store, "a", v))
	got, err := Load(ctx, store, "a")
	require.NoError(t, err)
	assert.Equal(t, v.Class(), got.Class())

	_, err = Load(ctx, store, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	stats := m.GetStats()
	assert.Equal(t, int64(1), stats.SaveCount)
	assert.Equal(t, int64(2), stats.LoadCount)
	assert.Equal(t, int64(1), stats.LoadErrors)
	assert.Contains(t, buf.String(), "array saved")
	assert.Contains(t, buf.String(), "load failed")
}

func TestObj(t *testing.T) {
	_, err := Obj(object.F("x", 1), object.F("rho", 1))
	assert.ErrorIs(t, err, ErrAmbiguousCoordinates)

	_, err = Obj(object.F("x", 1))
	assert.ErrorIs(t, err, ErrUnrecognizedCoordinates)

	var ce *CoordinateError
	assert.True(t, errors.As(err, &ce))
}

func TestApplyOptions(t *testing.T) {
	o := applyOptions(nil)
	assert.IsType(t, NoopMetricsCollector{}, o.metricsCollector)
	assert.NotNil(t, o.logger)

	o = applyOptions([]Option{WithLogger(nil), WithMetricsCollector(nil)})
	assert.IsType(t, NoopMetricsCollector{}, o.metricsCollector)
	assert.False(t, o.logger.Enabled(context.Background(), slog.LevelError))

	o = applyOptions([]Option{WithLogLevel(slog.LevelWarn)})
	assert.True(t, o.logger.Enabled(context.Background(), slog.LevelWarn))
	assert.False(t, o.logger.Enabled(context.Background(), slog.LevelInfo))
}
