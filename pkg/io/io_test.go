package io

import (
	"bytes"
	"context"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/infiniscroll/pkg/errors"
	"github.com/matzehuels/infiniscroll/pkg/scenario"
)

func replay(t *testing.T) *scenario.Trace {
	t.Helper()
	s, err := scenario.Parse([]byte(`
direction = "horizontal"
[viewport]
width = 300
height = 100
[[steps]]
action = "scroll_by"
delta = 30
`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	tr, err := scenario.Replay(context.Background(), s)
	if err != nil {
		t.Fatalf("Replay() error: %v", err)
	}
	return tr
}

func TestExportImport(t *testing.T) {
	tr := replay(t)
	path := filepath.Join(t.TempDir(), "trace.json")
	if err := ExportJSON(tr, path); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error: %v", err)
	}
	if got.ID != tr.ID || len(got.Frames) != len(tr.Frames) {
		t.Fatalf("ImportJSON() = %s with %d frames, want %s with %d", got.ID, len(got.Frames), tr.ID, len(tr.Frames))
	}
	if !slices.Equal(got.Last().Indices(), tr.Last().Indices()) {
		t.Errorf("last frame = %v, want %v", got.Last().Indices(), tr.Last().Indices())
	}
	if !got.CreatedAt.Equal(tr.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, tr.CreatedAt)
	}
}

func TestWriteJSONIndents(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(replay(t), &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"frames\": [") {
		t.Errorf("output not indented:\n%s", buf.String())
	}
}

func TestReadJSONRejects(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"malformed", `{"frames": [`},
		{"direction", `{"direction": "up"}`},
		{"steps", `{"direction": "vertical", "frames": [{"step": 1}, {"step": 1}]}`},
		{"gap", `{"direction": "vertical", "frames": [{"step": 0, "visible": [{"index": 2}, {"index": 4}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadJSON(strings.NewReader(tt.src)); err == nil {
				t.Error("ReadJSON() error = nil")
			}
		})
	}
}

func TestImportJSONMissing(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportJSON() error = %v, want ErrCodeFileNotFound", err)
	}
}
