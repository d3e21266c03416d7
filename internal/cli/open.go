package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"layout-inspector/internal/fileprobe"
	"layout-inspector/internal/logging"
)

// NewOpenCommand creates the open command.
func NewOpenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "open PATH",
		Short: "Try to open a file read-only and report the outcome",
		Long: `Open PATH read-only with the open system call, close it again and print
"open succeeded", or "open failed: <reason>" on stderr. The exit status is 0
either way.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := fileprobe.Open(args[0])

			if res.OK() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), res.String())
				return nil
			}

			logging.Logger().Debug("open failed",
				zap.String("path", res.Path),
				zap.Error(res.Err))

			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), res.String())

			return nil
		},
	}
}
