package gm

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSim2FromJSON(t *testing.T) {
	path := writeJSON(t, "a_Sim2_b.json",
		`{"R": [1.0, 0.0, 0.0, 1.0], "t": [3930.0, 3240.0], "s": 1.6666666666666667}`)

	aSb, err := Sim2FromJSON(path)
	require.NoError(t, err)

	require.Equal(t, IdentityMat(), aSb.Rotation())
	require.Equal(t, Vec{X: 3930, Y: 3240}, aSb.Translation())
	require.InDelta(t, 1.6666666666666667, aSb.Scale(), 1e-12)
}

func TestSim2FromJSON_IntegerValues(t *testing.T) {
	// integers are valid JSON numbers and normalize to float64
	path := writeJSON(t, "int.json", `{"R": [0, 1, 1, 0], "t": [-5, 5], "s": 2}`)

	aSb, err := Sim2FromJSON(path)
	require.NoError(t, err)
	require.Equal(t, Mat{XAxis: Vec{Y: 1}, YAxis: Vec{X: 1}}, aSb.Rotation())
	require.Equal(t, Vec{X: -5, Y: 5}, aSb.Translation())
	require.Equal(t, 2.0, aSb.Scale())
}

func TestSim2FromJSON_ZeroScale(t *testing.T) {
	path := writeJSON(t, "invalid.json", `{"R": [1, 0, 0, 1], "t": [0, 0], "s": 0.0}`)

	_, err := Sim2FromJSON(path)
	require.ErrorIs(t, err, ErrZeroScale)
}

func TestSim2FromJSON_MissingScale(t *testing.T) {
	path := writeJSON(t, "noscale.json", `{"R": [1, 0, 0, 1], "t": [0, 0]}`)

	_, err := Sim2FromJSON(path)
	require.ErrorIs(t, err, ErrZeroScale)
}

func TestSim2FromJSON_MalformedFields(t *testing.T) {
	t.Run("short R", func(t *testing.T) {
		path := writeJSON(t, "r.json", `{"R": [1, 0, 0], "t": [0, 0], "s": 1}`)
		_, err := Sim2FromJSON(path)
		require.ErrorIs(t, err, ErrFieldShape)
	})

	t.Run("long t", func(t *testing.T) {
		path := writeJSON(t, "t.json", `{"R": [1, 0, 0, 1], "t": [0, 0, 0], "s": 1}`)
		_, err := Sim2FromJSON(path)
		require.ErrorIs(t, err, ErrFieldShape)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Sim2FromJSON(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})
}

func TestSim2_SaveAsJSON(t *testing.T) {
	rotation := Mat{XAxis: Vec{Y: 1}, YAxis: Vec{X: 1}}
	bSc, err := NewSim2(rotation, Vec{X: -5, Y: 5}, 0.1)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "b_Sim2_c.json")
	require.NoError(t, bSc.SaveAsJSON(path))

	buf, err := os.ReadFile(path)
	require.NoError(t, err)

	var wire struct {
		R []float64 `json:"R"`
		T []float64 `json:"t"`
		S float64   `json:"s"`
	}
	require.NoError(t, json.Unmarshal(buf, &wire))

	require.Equal(t, []float64{0, 1, 1, 0}, wire.R)
	require.Equal(t, []float64{-5, 5}, wire.T)
	require.Equal(t, 0.1, wire.S)
}

func TestSim2_JSONRoundTrip(t *testing.T) {
	rotation := RotationMat(DegToRad(72.5))
	bSc, err := NewSim2(rotation, Vec{X: -5, Y: 5}, 0.1)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "roundtrip.json")
	require.NoError(t, bSc.SaveAsJSON(path))

	loaded, err := Sim2FromJSON(path)
	require.NoError(t, err)

	// equality is exact, the wire format must not lose precision
	require.True(t, bSc.Equal(loaded))
}
