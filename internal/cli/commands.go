package cli

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Dadaauditux/ux-audit-tool/internal/audit"
	"github.com/Dadaauditux/ux-audit-tool/internal/httpapi"
	"github.com/Dadaauditux/ux-audit-tool/internal/imaging"
	"github.com/Dadaauditux/ux-audit-tool/internal/ocr"
	"github.com/Dadaauditux/ux-audit-tool/internal/server"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the audit over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, l, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			gin.SetMode(gin.ReleaseMode)

			l.Info("ocr.engine", "tesseract", ocr.Version(), "language", cfg.OCR.Language)
			h := httpapi.NewHandler(newAuditor(cfg, cfg.Tesseract(), l), l, cfg.MaxUploadBytes())
			return httpapi.ListenAndServe(cmd.Context(), cfg.Addr, h)
		},
	}
}

func newMCPCmd(opts *rootOptions, info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the audit as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, l, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			l.Debug("mcp.starting", "version", info.Version, "commit", info.GitCommit)

			srv := server.New(newAuditor(cfg, cfg.Tesseract(), l), l, info.Version)
			return srv.Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func newAuditCmd(opts *rootOptions) *cobra.Command {
	var wordsPath string

	cmd := &cobra.Command{
		Use:   "audit <image>",
		Short: "Audit one screenshot and print the report as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, l, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			data, err := imaging.ReadFile(args[0])
			if err != nil {
				return err
			}

			var detector audit.Detector = cfg.Tesseract()
			if wordsPath != "" {
				wf, err := ocr.LoadWordFile(wordsPath)
				if err != nil {
					return err
				}
				detector = wf
			}

			report, err := newAuditor(cfg, detector, l).Run(cmd.Context(), data)
			if err != nil {
				return fmt.Errorf("audit %s: %w", args[0], err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}

	cmd.Flags().StringVar(&wordsPath, "words", "", "JSON file with recorded word boxes; skips OCR")
	return cmd
}

func newVersionCmd(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), info.String())
			fmt.Fprintf(cmd.OutOrStdout(), "  tesseract: %s\n", ocr.Version())
		},
	}
}
