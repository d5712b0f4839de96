package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/infiniscroll/pkg/geom"
	"github.com/matzehuels/infiniscroll/pkg/scenario"
)

// browseOptions holds the flags of the browse command.
type browseOptions struct {
	scenario   string
	horizontal bool
	paging     bool
	spacing    float64
	sizes      []float64
	sizesSet   bool
}

// browseCommand creates the interactive browse command.
func (c *CLI) browseCommand() *cobra.Command {
	var opts browseOptions

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Scroll an infinite list in the terminal",
		Long: `Browse opens an endless list in the terminal, driven by the engine exactly
as a scroll view would drive it. One terminal row (or column, with
--horizontal) is one point.

Start from a scenario file with --scenario to reuse its direction, spacing
and item sizes.`,
		Example: `  infiniscroll browse
  infiniscroll browse --horizontal --paging --sizes 24
  infiniscroll browse --scenario examples/scenarios/feed.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.sizesSet = cmd.Flags().Changed("sizes")
			s, err := browseScenario(opts)
			if err != nil {
				return err
			}
			m, err := NewBrowseModel(s, c)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.scenario, "scenario", "s", "", "scenario file to take the layout from")
	cmd.Flags().BoolVar(&opts.horizontal, "horizontal", false, "scroll horizontally")
	cmd.Flags().BoolVar(&opts.paging, "paging", false, "snap to items when flinging")
	cmd.Flags().Float64Var(&opts.spacing, "spacing", 1, "spacing between items")
	cmd.Flags().Float64SliceVar(&opts.sizes, "sizes", []float64{3, 5, 2, 4}, "item lengths, cycled by index")

	return cmd
}

// browseScenario returns the layout to browse: the scenario file when given,
// otherwise one built from flags. Steps are ignored.
func browseScenario(opts browseOptions) (*scenario.Scenario, error) {
	if opts.scenario != "" {
		s, err := scenario.Load(opts.scenario)
		if err != nil {
			return nil, err
		}
		s.Steps = nil
		return s, nil
	}

	s := &scenario.Scenario{
		Name:     "browse",
		Spacing:  opts.spacing,
		Paging:   opts.paging,
		Viewport: scenario.Viewport{Width: 80, Height: 20},
		Items:    scenario.Items{Sizes: opts.sizes},
	}
	if opts.horizontal {
		s.Direction = geom.Horizontal.String()
		if !opts.sizesSet {
			s.Items.Sizes = scaled(opts.sizes, 4)
		}
	}
	s.SetDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// scaled multiplies lengths by f; terminal columns are narrower than rows.
func scaled(sizes []float64, f float64) []float64 {
	out := make([]float64, len(sizes))
	for i, l := range sizes {
		out[i] = l * f
	}
	return out
}
