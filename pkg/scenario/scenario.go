// Package scenario drives the engine from scripted scroll sessions.
//
// A scenario is a TOML file describing a scroll container (direction,
// viewport, insets, item sizes) and a list of steps a user performs on it.
// The [Runner] replays the steps against an in-memory [Host] and records a
// [Trace]: the visible window, offset and delegate notifications after every
// step. Traces are cached by scenario content.
//
// # File format
//
//	name = "carousel"
//	direction = "horizontal"
//	spacing = 8
//	paging = true
//
//	[viewport]
//	width = 320
//	height = 200
//
//	[items]
//	sizes = [300]
//
//	[[steps]]
//	action = "fling"
//	velocity = 1.2
//
//	[[steps]]
//	action = "scroll_to"
//	index = -12
//	position = "center"
//	animated = true
//
// # Usage
//
//	s, err := scenario.Load("examples/scenarios/carousel.toml")
//	if err != nil {
//	    return err
//	}
//	runner := scenario.NewRunner(c, nil, logger)
//	trace, cached, err := runner.Run(ctx, s, scenario.RunOptions{})
package scenario

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/infiniscroll/pkg/cache"
	"github.com/matzehuels/infiniscroll/pkg/engine"
	"github.com/matzehuels/infiniscroll/pkg/errors"
	"github.com/matzehuels/infiniscroll/pkg/geom"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWidth is the default viewport width in points.
	DefaultWidth = 320.0

	// DefaultHeight is the default viewport height in points.
	DefaultHeight = 480.0

	// DefaultItemSize is the main-axis length used when no sizes are given.
	DefaultItemSize = 100.0

	// DefaultName names scenarios that do not set one.
	DefaultName = "untitled"
)

// Step actions.
const (
	ActionLayout     = "layout"
	ActionScroll     = "scroll"
	ActionScrollBy   = "scroll_by"
	ActionScrollTo   = "scroll_to"
	ActionFling      = "fling"
	ActionResize     = "resize"
	ActionInsets     = "insets"
	ActionInvalidate = "invalidate"
	ActionReload     = "reload"
	ActionSelect     = "select"
	ActionPaging     = "paging"
	ActionTrack      = "track"
)

// ValidActions is the set of supported step actions.
var ValidActions = map[string]bool{
	ActionLayout:     true,
	ActionScroll:     true,
	ActionScrollBy:   true,
	ActionScrollTo:   true,
	ActionFling:      true,
	ActionResize:     true,
	ActionInsets:     true,
	ActionInvalidate: true,
	ActionReload:     true,
	ActionSelect:     true,
	ActionPaging:     true,
	ActionTrack:      true,
}

// =============================================================================
// Scenario
// =============================================================================

// Scenario is a scripted scroll session.
type Scenario struct {
	Name          string  `toml:"name" json:"name"`
	Description   string  `toml:"description" json:"description,omitempty"`
	Direction     string  `toml:"direction" json:"direction"`
	Spacing       float64 `toml:"spacing" json:"spacing"`
	Paging        bool    `toml:"paging" json:"paging"`
	ContentExtent float64 `toml:"content_extent" json:"content_extent"`

	Viewport Viewport `toml:"viewport" json:"viewport"`
	Insets   Insets   `toml:"insets" json:"insets"`
	Items    Items    `toml:"items" json:"items"`
	Steps    []Step   `toml:"steps" json:"steps"`
}

// Viewport is the scroll container size.
type Viewport struct {
	Width  float64 `toml:"width" json:"width"`
	Height float64 `toml:"height" json:"height"`
}

// Insets are content insets in points.
type Insets struct {
	Top    float64 `toml:"top" json:"top"`
	Left   float64 `toml:"left" json:"left"`
	Bottom float64 `toml:"bottom" json:"bottom"`
	Right  float64 `toml:"right" json:"right"`
}

func (in Insets) toGeom() geom.Insets {
	return geom.Insets{Top: in.Top, Left: in.Left, Bottom: in.Bottom, Right: in.Right}
}

// Items describes item sizes. Main-axis lengths cycle through Sizes by index,
// negative indices included; Cross is the cross-axis size of every item and
// defaults to the inset-adjusted viewport.
type Items struct {
	Sizes []float64 `toml:"sizes" json:"sizes"`
	Cross float64   `toml:"cross" json:"cross"`
}

// Step is one user or host action. Only the fields relevant to Action are
// read.
type Step struct {
	Action string `toml:"action" json:"action"`

	// scroll: absolute main-axis offset; scroll_by: delta per repeat.
	Offset float64 `toml:"offset" json:"offset,omitempty"`
	Delta  float64 `toml:"delta" json:"delta,omitempty"`
	Repeat int     `toml:"repeat" json:"repeat,omitempty"`

	// scroll_to
	Index    int    `toml:"index" json:"index,omitempty"`
	Position string `toml:"position" json:"position,omitempty"`
	Animated bool   `toml:"animated" json:"animated,omitempty"`

	// fling: main-axis velocity in points per millisecond.
	Velocity float64 `toml:"velocity" json:"velocity,omitempty"`

	// resize
	Width  float64 `toml:"width" json:"width,omitempty"`
	Height float64 `toml:"height" json:"height,omitempty"`

	// insets
	Insets *Insets `toml:"insets" json:"insets,omitempty"`

	// invalidate, reload: replacement item sizes.
	Sizes []float64 `toml:"sizes" json:"sizes,omitempty"`

	// select: point in viewport coordinates.
	X float64 `toml:"x" json:"x,omitempty"`
	Y float64 `toml:"y" json:"y,omitempty"`

	// paging, track
	Enabled bool `toml:"enabled" json:"enabled,omitempty"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "scenario not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes, defaults and validates a scenario. Unknown keys are
// rejected so typos do not silently change a run.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "decode scenario")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidScenario, "unknown keys: %s", strings.Join(keys, ", "))
	}
	s.SetDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// SetDefaults fills in unset fields. It is idempotent.
func (s *Scenario) SetDefaults() {
	if s.Name == "" {
		s.Name = DefaultName
	}
	if s.Direction == "" {
		s.Direction = geom.Vertical.String()
	}
	if s.ContentExtent == 0 {
		s.ContentExtent = engine.DefaultContentExtent
	}
	if s.Viewport.Width == 0 {
		s.Viewport.Width = DefaultWidth
	}
	if s.Viewport.Height == 0 {
		s.Viewport.Height = DefaultHeight
	}
	if len(s.Items.Sizes) == 0 {
		s.Items.Sizes = []float64{DefaultItemSize}
	}
	if s.Items.Cross == 0 {
		if s.horizontal() {
			s.Items.Cross = s.Viewport.Height - s.Insets.Top - s.Insets.Bottom
		} else {
			s.Items.Cross = s.Viewport.Width - s.Insets.Left - s.Insets.Right
		}
	}
	if d, err := geom.ParseDirection(s.Direction); err == nil {
		s.Direction = d.String()
	}
}

// Validate checks the scenario for values the engine cannot lay out.
func (s *Scenario) Validate() error {
	dir, err := geom.ParseDirection(s.Direction)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDirection, err, "invalid direction")
	}
	if err := errors.ValidateSpacing(s.Spacing); err != nil {
		return err
	}
	if err := errors.ValidateContentExtent(s.ContentExtent); err != nil {
		return err
	}
	if s.Viewport.Width <= 0 || s.Viewport.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidScenario, "viewport must have a positive size, got %vx%v",
			s.Viewport.Width, s.Viewport.Height)
	}
	if err := validateInsets(s.Insets); err != nil {
		return err
	}
	if err := validateSizes(s.Items.Sizes, s.Items.Cross, dir); err != nil {
		return err
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScenario, err, "step %d (%s)", i+1, st.Action)
		}
	}
	return nil
}

func (st Step) validate() error {
	if !ValidActions[st.Action] {
		return fmt.Errorf("unknown action %q", st.Action)
	}
	switch st.Action {
	case ActionScrollBy:
		if st.Repeat < 0 {
			return fmt.Errorf("repeat cannot be negative")
		}
	case ActionScrollTo:
		if _, err := engine.ParseScrollPosition(st.Position); err != nil {
			return err
		}
	case ActionResize:
		if st.Width <= 0 || st.Height <= 0 {
			return fmt.Errorf("resize needs a positive width and height")
		}
	case ActionInsets:
		if st.Insets == nil {
			return fmt.Errorf("insets action needs an [steps.insets] table")
		}
		return validateInsets(*st.Insets)
	}
	for _, v := range st.Sizes {
		if err := errors.ValidateNonNegative("size", v); err != nil {
			return err
		}
	}
	return nil
}

func validateInsets(in Insets) error {
	for _, v := range [...]float64{in.Top, in.Left, in.Bottom, in.Right} {
		if err := errors.ValidateNonNegative("inset", v); err != nil {
			return err
		}
	}
	return nil
}

func validateSizes(sizes []float64, cross float64, dir geom.Direction) error {
	for i, l := range sizes {
		w, h := l, cross
		if dir == geom.Vertical {
			w, h = cross, l
		}
		if err := errors.ValidateItemSize(i, w, h); err != nil {
			return err
		}
	}
	return nil
}

// Hash returns a content hash of the defaulted scenario, used as cache key.
func (s *Scenario) Hash() string {
	data, _ := json.Marshal(s)
	return cache.Hash(data)
}

// EngineOptions returns the engine options the scenario describes.
func (s *Scenario) EngineOptions() []engine.Option {
	dir, _ := geom.ParseDirection(s.Direction)
	return []engine.Option{
		engine.WithDirection(dir),
		engine.WithSpacing(s.Spacing),
		engine.WithContentExtent(s.ContentExtent),
		engine.WithPaging(s.Paging),
	}
}

// ActionNames returns the supported actions in sorted order.
func ActionNames() []string {
	names := make([]string, 0, len(ValidActions))
	for a := range ValidActions {
		names = append(names, a)
	}
	slices.Sort(names)
	return names
}

func (s *Scenario) horizontal() bool {
	d, err := geom.ParseDirection(s.Direction)
	return err == nil && d == geom.Horizontal
}
