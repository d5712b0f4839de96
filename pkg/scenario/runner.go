package scenario

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/infiniscroll/pkg/buildinfo"
	"github.com/matzehuels/infiniscroll/pkg/cache"
	"github.com/matzehuels/infiniscroll/pkg/engine"
	"github.com/matzehuels/infiniscroll/pkg/geom"
)

// Runner replays scenarios with caching.
//
// The Runner holds no run state; one Runner can serve concurrent runs of
// different scenarios.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// RunOptions control a single run.
type RunOptions struct {
	// Refresh skips the cache lookup. The fresh trace is still stored.
	Refresh bool
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Run replays s and returns its trace. The second result reports whether the
// trace came from the cache.
func (r *Runner) Run(ctx context.Context, s *Scenario, opts RunOptions) (*Trace, bool, error) {
	s.SetDefaults()
	if err := s.Validate(); err != nil {
		return nil, false, fmt.Errorf("invalid scenario: %w", err)
	}

	key := r.Keyer.TraceKey(s.Hash(), cache.TraceKeyOpts{Version: buildinfo.Version})
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var t Trace
			if err := json.Unmarshal(data, &t); err == nil {
				r.Logger.Info("trace cache hit", "scenario", s.Name, "frames", len(t.Frames))
				return &t, true, nil
			}
		}
	}

	start := time.Now()
	t, err := r.replay(ctx, s)
	if err != nil {
		return nil, false, err
	}
	r.Logger.Info("replayed scenario",
		"scenario", s.Name,
		"steps", t.Stats.Steps,
		"cells", t.Stats.CellsCreated,
		"duration", time.Since(start))

	if data, err := json.Marshal(t); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TraceTTL); err != nil {
			r.Logger.Warn("failed to cache trace", "error", err)
		}
	}
	return t, false, nil
}

// Replay is like Run without caching.
func Replay(ctx context.Context, s *Scenario) (*Trace, error) {
	t, _, err := NewRunner(nil, nil, log.New(io.Discard)).Run(ctx, s, RunOptions{Refresh: true})
	return t, err
}

func (r *Runner) replay(ctx context.Context, s *Scenario) (*Trace, error) {
	h, d, err := NewSession(s, r.Logger)
	if err != nil {
		return nil, err
	}

	t := newTrace(s)
	if err := h.Layout(); err != nil {
		return nil, fmt.Errorf("initial layout: %w", err)
	}
	r.record(t, h, d, 0, ActionLayout, nil)

	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		selected, err := Apply(h, d, st)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, st.Action, err)
		}
		r.record(t, h, d, i+1, st.Action, selected)
	}
	t.Stats.Steps = len(s.Steps)
	return t, nil
}

func (r *Runner) record(t *Trace, h *Host, d *Recorder, step int, action string, selected *int) {
	f := snapshot(h, step, action, d.Drain())
	f.Selected = selected
	t.Frames = append(t.Frames, f)
	t.Stats.observe(h.Engine(), len(f.Visible))
	r.Logger.Debug("step", "n", step, "action", action, "offset", f.Offset, "visible", f.Indices())
}

// NewSession builds an engine and host for s without laying out. The
// returned delegate records notifications for [Apply].
func NewSession(s *Scenario, logger *log.Logger) (*Host, *Recorder, error) {
	dir, err := geom.ParseDirection(s.Direction)
	if err != nil {
		return nil, nil, err
	}
	d := NewRecorder(dir, s.Items.Sizes, s.Items.Cross)
	opts := s.EngineOptions()
	if logger != nil {
		opts = append(opts, engine.WithLogger(logger))
	}
	e, err := engine.New(d, opts...)
	if err != nil {
		return nil, nil, err
	}
	if err := e.Register(CellType, func() any { return &Label{} }); err != nil {
		return nil, nil, err
	}
	vp := engine.Viewport{
		Size:   geom.Size{W: s.Viewport.Width, H: s.Viewport.Height},
		Insets: s.Insets.toGeom(),
	}
	return NewHost(e, vp), d, nil
}

// Apply performs one step on h. For select steps it returns the selected
// index, or nil when the tap missed.
func Apply(h *Host, d *Recorder, st Step) (*int, error) {
	switch st.Action {
	case ActionLayout:
		return nil, h.Layout()
	case ActionScroll:
		return nil, h.ScrollTo(st.Offset)
	case ActionScrollBy:
		for range max(st.Repeat, 1) {
			if err := h.ScrollBy(st.Delta); err != nil {
				return nil, err
			}
		}
		return nil, nil
	case ActionScrollTo:
		pos, err := engine.ParseScrollPosition(st.Position)
		if err != nil {
			return nil, err
		}
		_, err = h.ScrollToItem(st.Index, pos, st.Animated)
		return nil, err
	case ActionFling:
		_, err := h.Fling(st.Velocity)
		return nil, err
	case ActionResize:
		return nil, h.Resize(geom.Size{W: st.Width, H: st.Height})
	case ActionInsets:
		return nil, h.SetInsets(st.Insets.toGeom())
	case ActionInvalidate:
		d.SetSizes(st.Sizes)
		return nil, h.Invalidate()
	case ActionReload:
		d.SetSizes(st.Sizes)
		return nil, h.Reload()
	case ActionSelect:
		if idx, ok := h.Select(st.X, st.Y); ok {
			return &idx, nil
		}
		return nil, nil
	case ActionPaging:
		return nil, h.SetPaging(st.Enabled)
	case ActionTrack:
		return nil, h.Track(st.Enabled)
	}
	return nil, fmt.Errorf("unknown action %q", st.Action)
}
