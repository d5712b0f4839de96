package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	traceio "github.com/matzehuels/infiniscroll/pkg/io"
	"github.com/matzehuels/infiniscroll/pkg/scenario"
)

// showCommand creates the show command for printing exported traces.
func (c *CLI) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <trace.json>",
		Short: "Print an exported trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := traceio.ImportJSON(args[0])
			if err != nil {
				return err
			}
			printKeyValue("Scenario", t.Scenario)
			printKeyValue("Direction", t.Direction)
			printKeyValue("Recorded", t.CreatedAt.Format("2006-01-02 15:04:05"))
			printKeyValue("Run", t.ID)
			printStats(t.Stats, false)
			fmt.Println(renderTrace(t))
			return nil
		},
	}
}

// renderTrace formats the frames of t as a table.
func renderTrace(t *scenario.Trace) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(t.Frames))
	for _, f := range t.Frames {
		rows = append(rows, []string{
			strconv.Itoa(f.Step),
			f.Action,
			strconv.FormatFloat(f.Offset, 'f', -1, 64),
			strconv.Itoa(f.Page),
			formatWindow(f),
			formatEvents(f),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Step", "Action", "Offset", "Page", "Visible", "Events").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 2 || col == 3:
				return StyleNumber
			case col == 5:
				return StyleDim
			}
			return StyleValue
		}).
		Render()
}

// formatWindow renders the visible indices as "first…last (n)".
func formatWindow(f scenario.Frame) string {
	switch n := len(f.Visible); n {
	case 0:
		return "—"
	case 1:
		return strconv.Itoa(f.Visible[0].Index)
	default:
		return fmt.Sprintf("%d…%d (%d)", f.Visible[0].Index, f.Visible[n-1].Index, n)
	}
}

// formatEvents summarizes delegate notifications of a frame.
func formatEvents(f scenario.Frame) string {
	var shown, ended int
	var parts []string
	for _, ev := range f.Events {
		switch ev.Kind {
		case scenario.EventDisplay:
			shown++
		case scenario.EventEnd:
			ended++
		default:
			parts = append(parts, fmt.Sprintf("%s %d", ev.Kind, ev.Index))
		}
	}
	if f.Selected != nil && len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("select %d", *f.Selected))
	}
	if ended > 0 {
		parts = append([]string{fmt.Sprintf("-%d", ended)}, parts...)
	}
	if shown > 0 {
		parts = append([]string{fmt.Sprintf("+%d", shown)}, parts...)
	}
	return strings.Join(parts, " ")
}
