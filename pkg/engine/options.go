package engine

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/infiniscroll/pkg/geom"
)

// DefaultContentExtent is the main-axis size of the virtual content area.
const DefaultContentExtent = 50000

// Option configures an [Engine].
type Option func(*config)

type config struct {
	direction geom.Direction
	spacing   float64
	extent    float64
	paging    bool
	logger    *log.Logger
}

func defaultConfig() config {
	return config{
		direction: geom.Vertical,
		extent:    DefaultContentExtent,
	}
}

// WithDirection sets the scroll axis. The default is vertical.
func WithDirection(d geom.Direction) Option { return func(c *config) { c.direction = d } }

// WithSpacing sets the gap between adjacent items along the main axis.
func WithSpacing(s float64) Option { return func(c *config) { c.spacing = s } }

// WithContentExtent sets the main-axis size of the virtual content area.
func WithContentExtent(e float64) Option { return func(c *config) { c.extent = e } }

// WithPaging enables page-snap mode.
func WithPaging(enabled bool) Option { return func(c *config) { c.paging = enabled } }

// WithLogger sets the logger used for debug output. Passing nil keeps the
// default, which discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
