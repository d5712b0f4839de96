package scenario

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/infiniscroll/pkg/errors"
)

func TestParseDefaults(t *testing.T) {
	s, err := Parse([]byte(`
[insets]
left = 10
right = 30
`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if s.Name != DefaultName {
		t.Errorf("Name = %q, want %q", s.Name, DefaultName)
	}
	if s.Direction != "vertical" {
		t.Errorf("Direction = %q, want vertical", s.Direction)
	}
	if s.Viewport.Width != DefaultWidth || s.Viewport.Height != DefaultHeight {
		t.Errorf("Viewport = %+v, want %vx%v", s.Viewport, DefaultWidth, DefaultHeight)
	}
	if !slices.Equal(s.Items.Sizes, []float64{DefaultItemSize}) {
		t.Errorf("Items.Sizes = %v, want [%v]", s.Items.Sizes, DefaultItemSize)
	}
	if s.Items.Cross != 280 {
		t.Errorf("Items.Cross = %v, want 280", s.Items.Cross)
	}
}

func TestParseHorizontalCross(t *testing.T) {
	s, err := Parse([]byte(`
direction = "Horizontal"
[viewport]
width = 300
height = 120
[insets]
top = 20
`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if s.Direction != "horizontal" {
		t.Errorf("Direction = %q, want horizontal", s.Direction)
	}
	if s.Items.Cross != 100 {
		t.Errorf("Items.Cross = %v, want 100", s.Items.Cross)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code errors.Code
		msg  string
	}{
		{"syntax", `name = `, errors.ErrCodeInvalidScenario, "decode"},
		{"unknown key", "nmae = \"x\"", errors.ErrCodeInvalidScenario, "nmae"},
		{"direction", `direction = "diagonal"`, errors.ErrCodeInvalidDirection, ""},
		{"spacing", `spacing = -1`, errors.ErrCodeInvalidConfig, ""},
		{"viewport", "[viewport]\nwidth = -5", errors.ErrCodeInvalidScenario, "viewport"},
		{"inset", "[insets]\ntop = -1", errors.ErrCodeInvalidInput, ""},
		{"item size", "[items]\nsizes = [100, -3]", errors.ErrCodeInvalidSize, ""},
		{"action", "[[steps]]\naction = \"jump\"", errors.ErrCodeInvalidScenario, "step 1"},
		{"position", "[[steps]]\naction = \"scroll_to\"\nposition = \"middle\"", errors.ErrCodeInvalidScenario, "step 1"},
		{"resize", "[[steps]]\naction = \"resize\"", errors.ErrCodeInvalidScenario, "positive"},
		{"insets step", "[[steps]]\naction = \"insets\"", errors.ErrCodeInvalidScenario, "insets"},
		{"repeat", "[[steps]]\naction = \"scroll_by\"\nrepeat = -2", errors.ErrCodeInvalidScenario, "repeat"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if err == nil {
				t.Fatal("Parse() error = nil")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %v, want %v (err: %v)", got, tt.code, err)
			}
			if tt.msg != "" && !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q does not mention %q", err, tt.msg)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.toml")
	if err := os.WriteFile(path, []byte("name = \"list\"\n[[steps]]\naction = \"scroll\"\noffset = 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Name != "list" || len(s.Steps) != 1 || s.Steps[0].Offset != 40 {
		t.Errorf("Load() = %+v", s)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want ErrCodeFileNotFound", err)
	}
}

func TestHashChangesWithContent(t *testing.T) {
	a, _ := Parse([]byte(`spacing = 4`))
	b, _ := Parse([]byte(`spacing = 4`))
	c, _ := Parse([]byte(`spacing = 5`))
	if a.Hash() != b.Hash() {
		t.Error("equal scenarios hash differently")
	}
	if a.Hash() == c.Hash() {
		t.Error("different scenarios hash equally")
	}
}

func TestActionNames(t *testing.T) {
	names := ActionNames()
	if len(names) != len(ValidActions) || !slices.IsSorted(names) {
		t.Errorf("ActionNames() = %v", names)
	}
}
