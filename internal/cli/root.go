package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Dadaauditux/ux-audit-tool/internal/audit"
	"github.com/Dadaauditux/ux-audit-tool/internal/config"
	"github.com/Dadaauditux/ux-audit-tool/internal/logger"
)

// BuildInfo is stamped by ldflags in main.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("ux-audit %s (commit=%s, built=%s)", b.Version, b.GitCommit, b.BuildTime)
}

type rootOptions struct {
	configPath string
	logLevel   string
}

// Execute runs the command tree and returns the process exit code.
func Execute(info BuildInfo) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(info).ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(info BuildInfo) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "ux-audit",
		Short:        "Heuristic UX and accessibility audit of UI screenshots",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	cmd.AddCommand(
		newServeCmd(opts),
		newMCPCmd(opts, info),
		newAuditCmd(opts),
		newVersionCmd(info),
	)
	return cmd
}

// setup loads the config and builds a logger writing to the command's
// stderr. Stdout is left to command output and the MCP protocol.
func setup(cmd *cobra.Command, opts *rootOptions) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	l, err := logger.New(cmd.ErrOrStderr(), logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, l, nil
}

func newAuditor(cfg config.Config, detector audit.Detector, l *slog.Logger) *audit.Auditor {
	return audit.New(detector,
		audit.WithOptions(cfg.Thresholds),
		audit.WithLogger(l))
}
