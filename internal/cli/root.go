// Package cli provides the command-line interface for layout-inspector.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"layout-inspector/internal/config"
	"layout-inspector/internal/logging"
	"layout-inspector/internal/render"
	"layout-inspector/primitive"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// configKey is used to store config in context.
type configKey struct{}

// rendererKey is used to store renderer in context.
type rendererKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "layout-inspector",
		Short: "Show how records are laid out in memory",
		Long: `layout-inspector computes the size of a record and the offset of each of
its fields from the size and alignment of every field, the way a C compiler
or the Go compiler pads them.

Records come from a YAML schema, from the built-in examples, or from the
structs of Go packages.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}
			logging.SetLogger(logger)

			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			renderer := render.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Mode(), cfg.Verbose)
			ctx = context.WithValue(ctx, rendererKey{}, renderer)
			cmd.SetContext(ctx)

			if cfg.Verbose && cfg.FileUsed != "" {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Using config file: %s\n", cfg.FileUsed)
			}

			logging.Logger().Debug("configuration loaded",
				zap.String("model", cfg.Model),
				zap.String("arch", cfg.Arch),
				zap.String("output", cfg.Output))

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./"+config.DefaultFile+")")
	pf.String("model", "", "C data model for primitive types ("+strings.Join(primitive.DataModelNames(), "|")+")")
	pf.String("arch", "", "GOARCH whose sizes are used for Go packages (default: "+config.DefaultArch+")")
	pf.StringP("output", "o", "", "Output format ("+strings.Join(render.ModeNames(), "|")+")")
	pf.BoolP("verbose", "v", false, "Verbose output")
	pf.String("log-level", "", "Log level (debug|info|warn|error)")
	pf.Bool("exported-only", false, "Only analyze exported Go types")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return render.ModeNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("model", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return primitive.DataModelNames(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewInspectCommand())
	rootCmd.AddCommand(NewExamplesCommand())
	rootCmd.AddCommand(NewGoCommand())
	rootCmd.AddCommand(NewOptimizeCommand())
	rootCmd.AddCommand(NewOpenCommand())
	rootCmd.AddCommand(NewVersionCommand(Version, GitCommit))
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}

	return config.Default()
}

// GetRenderer retrieves the renderer from the command context.
func GetRenderer(ctx context.Context) *render.Renderer {
	if r, ok := ctx.Value(rendererKey{}).(*render.Renderer); ok {
		return r
	}

	return render.NewRenderer(os.Stdout, os.Stderr, render.ModeText, false)
}
