package cli

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/infiniscroll/pkg/errors"
	"github.com/matzehuels/infiniscroll/pkg/observability"
)

// Execute runs the infiniscroll CLI with logs written to stderr.
//
// Logging:
//   - Default: info level
//   - With --verbose (-v): debug level, with engine hooks logged as well
//
// The logger is attached to the command context and accessible to all
// commands via loggerFromContext.
func Execute(ctx context.Context, c *CLI) error {
	var verbose bool

	root := c.RootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := LogInfo
		if verbose {
			level = LogDebug
			observability.SetEngineHooks(newLogHooks(c.Logger))
		}
		c.SetLogLevel(level)
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	return root.ExecuteContext(ctx)
}

// ErrorMessage formats err for the terminal. Wiring mistakes such as an
// unregistered cell type keep their code and full chain so they can be
// reported; other errors show their messages without codes.
func ErrorMessage(err error) string {
	if errors.IsProgrammerError(err) {
		return fmt.Sprintf("internal error, please report it: %v", err)
	}
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Cause == nil {
		return errors.UserMessage(err)
	}
	return e.Message + ": " + ErrorMessage(e.Cause)
}
