package coords

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGather(t *testing.T) {
	tests := []struct {
		name     string
		fields   []Field[float64]
		sys      System
		momentum bool
	}{
		{"xy", []Field[float64]{Named("x", 3.0), Named("y", 4.0)}, Sys2D(XY), false},
		{"rhophi", []Field[float64]{Named("rho", 1.0), Named("phi", 0.1)}, Sys2D(RhoPhi), false},
		{"xyeta", []Field[float64]{Named("x", 1.0), Named("y", 1.0), Named("eta", 0.5)}, Sys3D(XY, Eta), false},
		{"pxpy", []Field[float64]{Named("px", 3.0), Named("py", 4.0)}, Sys2D(XY), true},
		{"ptphi mass", []Field[float64]{Named("pt", 3.0), Named("phi", 4.0), Named("pz", 1.0), Named("mass", 0.1)}, Sys4D(RhoPhi, Z, Tau), true},
		{"energy", []Field[float64]{Named("x", 1.0), Named("y", 1.0), Named("theta", 1.0), Named("E", 3.0)}, Sys4D(XY, Theta, T), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Gather(tt.fields...)
			require.NoError(t, err)
			assert.Equal(t, tt.sys, g.Groups.System())
			assert.Equal(t, tt.momentum, g.Momentum)
			assert.Empty(t, g.Extras)
		})
	}
}

func TestGather_Values(t *testing.T) {
	g, err := Gather(Named("pt", 5.0), Named("phi", 0.25), Named("eta", 1.5), Named("M", 0.14))
	require.NoError(t, err)
	assert.Equal(t, AzimuthalRhoPhi[float64]{Rho: 5, Phi: 0.25}, g.Groups.Az)
	assert.Equal(t, LongitudinalEta[float64]{Eta: 1.5}, g.Groups.Lon)
	assert.Equal(t, TemporalTau[float64]{Tau: 0.14}, g.Groups.Temp)
}

func TestGather_Extras(t *testing.T) {
	g, err := Gather(Named("x", 1.0), Named("charge", -1.0), Named("y", 2.0))
	require.NoError(t, err)
	assert.Equal(t, []Field[float64]{Named("charge", -1.0)}, g.Extras)
}

func TestGather_Errors(t *testing.T) {
	tests := []struct {
		name   string
		fields []Field[float64]
		target error
		msg    string
	}{
		{"xy and rho", []Field[float64]{Named("x", 1.0), Named("y", 1.0), Named("rho", 1.0)}, ErrAmbiguousCoordinates, "specify x= and y= or rho= and phi=, but not both"},
		{"z and eta", []Field[float64]{Named("x", 1.0), Named("y", 1.0), Named("z", 1.0), Named("eta", 1.0)}, ErrAmbiguousCoordinates, "specify z= or theta= or eta=, but not more than one"},
		{"t and tau", []Field[float64]{Named("x", 1.0), Named("y", 1.0), Named("z", 1.0), Named("t", 1.0), Named("tau", 1.0)}, ErrAmbiguousCoordinates, "specify t= or tau=, but not more than one"},
		{"alias duplicate", []Field[float64]{Named("x", 1.0), Named("px", 1.0), Named("y", 1.0)}, ErrAmbiguousCoordinates, "duplicate coordinates (through momentum-aliases): px"},
		{"energy twice", []Field[float64]{Named("x", 1.0), Named("y", 1.0), Named("z", 1.0), Named("E", 1.0), Named("energy", 2.0)}, ErrAmbiguousCoordinates, "duplicate coordinates (through momentum-aliases): energy"},
		{"x only", []Field[float64]{Named("x", 1.0)}, ErrUnrecognizedCoordinates, ""},
		{"time without longitudinal", []Field[float64]{Named("x", 1.0), Named("y", 1.0), Named("t", 1.0)}, ErrUnrecognizedCoordinates, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Gather(tt.fields...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target))
			var ce *CoordinateError
			require.True(t, errors.As(err, &ce))
			if tt.msg != "" {
				assert.Equal(t, tt.msg, err.Error())
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	g, m, ok := Canonical("energy")
	assert.True(t, ok)
	assert.True(t, m)
	assert.Equal(t, "t", g)

	g, m, ok = Canonical("rho")
	assert.True(t, ok)
	assert.False(t, m)
	assert.Equal(t, "rho", g)

	_, _, ok = Canonical("charge")
	assert.False(t, ok)
}

func TestAllowedCombinations(t *testing.T) {
	s := AllowedCombinations()
	assert.Contains(t, s, "(x= y=)")
	assert.Contains(t, s, "(rho= phi= eta= tau=)")
}
