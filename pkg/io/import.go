package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/infiniscroll/pkg/errors"
	"github.com/matzehuels/infiniscroll/pkg/geom"
	"github.com/matzehuels/infiniscroll/pkg/scenario"
)

// ReadJSON decodes a JSON trace from r.
//
// ReadJSON returns an error if:
//   - The JSON is malformed
//   - The direction is not "horizontal" or "vertical"
//   - Frame steps do not strictly increase
//   - A frame's visible indices are not strictly consecutive
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*scenario.Trace, error) {
	var t scenario.Trace
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := validate(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ImportJSON reads a JSON trace file at path.
//
// It returns the same validation errors as [ReadJSON], wrapped with the
// file path.
func ImportJSON(path string) (*scenario.Trace, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "trace not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	t, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func validate(t *scenario.Trace) error {
	if _, err := geom.ParseDirection(t.Direction); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "trace direction")
	}
	for i, f := range t.Frames {
		if i > 0 && f.Step <= t.Frames[i-1].Step {
			return errors.New(errors.ErrCodeInvalidInput, "frame %d: step %d does not follow %d", i, f.Step, t.Frames[i-1].Step)
		}
		for j := 1; j < len(f.Visible); j++ {
			if f.Visible[j].Index != f.Visible[j-1].Index+1 {
				return errors.New(errors.ErrCodeInvalidInput, "frame %d: visible index %d does not follow %d",
					i, f.Visible[j].Index, f.Visible[j-1].Index)
			}
		}
	}
	return nil
}
