package gm

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrFieldShape is returned when a serialized Sim2 carries an R or t
// field with the wrong number of values.
var ErrFieldShape = errors.New("gm: malformed Sim2 field")

// sim2JSON is the wire form of a Sim2: a flat object with the rotation
// matrix flattened in row major order, the translation vector and the
// scale. Integer and float values are both accepted and normalized to
// float64 by the decoder.
type sim2JSON struct {
	R []float64 `json:"R"`
	T []float64 `json:"t"`
	S float64   `json:"s"`
}

// Sim2FromJSON reads a similarity transform from the JSON file at the
// given path. A zero or missing scale value fails with ErrZeroScale,
// exactly like direct construction would.
func Sim2FromJSON(path string) (Sim2, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Sim2{}, fmt.Errorf("read Sim2: %w", err)
	}

	var wire sim2JSON
	if err := json.Unmarshal(buf, &wire); err != nil {
		return Sim2{}, fmt.Errorf("parse Sim2 from %q: %w", path, err)
	}

	if len(wire.R) != 4 {
		return Sim2{}, fmt.Errorf("%w: R must hold 4 values, got %d", ErrFieldShape, len(wire.R))
	}

	if len(wire.T) != 2 {
		return Sim2{}, fmt.Errorf("%w: t must hold 2 values, got %d", ErrFieldShape, len(wire.T))
	}

	rotation := Mat{
		XAxis: Vec{X: wire.R[0], Y: wire.R[1]},
		YAxis: Vec{X: wire.R[2], Y: wire.R[3]},
	}

	return NewSim2(rotation, Vec{X: wire.T[0], Y: wire.T[1]}, wire.S)
}

// SaveAsJSON writes the transform to the file at the given path, using
// the same flat three key layout that Sim2FromJSON reads. Loading the
// written file reproduces the transform exactly.
func (s Sim2) SaveAsJSON(path string) error {
	wire := sim2JSON{
		R: []float64{s.rotation.XAxis.X, s.rotation.XAxis.Y, s.rotation.YAxis.X, s.rotation.YAxis.Y},
		T: []float64{s.translation.X, s.translation.Y},
		S: s.scale,
	}

	buf, err := json.Marshal(wire)
	if err != nil {
		return fmt.Errorf("marshal Sim2: %w", err)
	}

	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("write Sim2: %w", err)
	}

	return nil
}
