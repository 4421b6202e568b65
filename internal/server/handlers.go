package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Dadaauditux/ux-audit-tool/internal/audit"
	"github.com/Dadaauditux/ux-audit-tool/internal/contrast"
	"github.com/Dadaauditux/ux-audit-tool/internal/imaging"
	"github.com/Dadaauditux/ux-audit-tool/internal/ocr"
)

// WCAG 2.x contrast levels.
const (
	levelAA       = 4.5
	levelAALarge  = 3.0
	levelAAA      = 7.0
	levelAAALarge = 4.5
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "ux_audit", "contrast_ratio").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		var invalid *invalidArgsError
		if errors.As(err, &invalid) {
			return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
		}
		s.logger.Warn("mcp.tool_failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// invalidArgsError marks arguments that are missing or malformed.
type invalidArgsError struct {
	msg string
}

func (e *invalidArgsError) Error() string { return e.msg }

func invalidArgs(format string, a ...interface{}) error {
	return &invalidArgsError{msg: fmt.Sprintf(format, a...)}
}

func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return invalidArgs("missing arguments")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return invalidArgs("invalid arguments: %v", err)
	}
	return nil
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "ux_audit":
		return s.handleUXAudit(ctx, args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "contrast_ratio":
		return s.handleContrastRatio(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Audit ===

type uxAuditArgs struct {
	Path      string `json:"path"`
	WordsPath string `json:"words_path"`
	audit.Options
}

func (s *Server) handleUXAudit(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a uxAuditArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if strings.TrimSpace(a.Path) == "" {
		return nil, invalidArgs("path is required")
	}

	data, err := imaging.ReadFile(a.Path)
	if err != nil {
		return nil, err
	}

	auditor := s.auditor
	if a.WordsPath != "" {
		words, err := ocr.LoadWordFile(a.WordsPath)
		if err != nil {
			return nil, err
		}
		auditor = audit.New(words, audit.WithOptions(s.auditor.Options()), audit.WithLogger(s.logger))
	}

	opts := a.Options
	if err := opts.Validate(); err != nil {
		return nil, invalidArgs("%v", err)
	}
	return auditor.RunWithOptions(ctx, data, mergeOptions(s.auditor.Options(), opts))
}

// mergeOptions overlays the non-zero fields of override on base.
func mergeOptions(base, override audit.Options) audit.Options {
	if override.MinTextPx != 0 {
		base.MinTextPx = override.MinTextPx
	}
	if override.MinTargetPx != 0 {
		base.MinTargetPx = override.MinTargetPx
	}
	if override.TargetMinTextChars != 0 {
		base.TargetMinTextChars = override.TargetMinTextChars
	}
	if override.MinHeadingPx != 0 {
		base.MinHeadingPx = override.MinHeadingPx
	}
	if override.MinSpacingPx != 0 {
		base.MinSpacingPx = override.MinSpacingPx
	}
	if override.AlignTolerancePx != 0 {
		base.AlignTolerancePx = override.AlignTolerancePx
	}
	if override.MinContrast != 0 {
		base.MinContrast = override.MinContrast
	}
	if override.LineThresholdPx != 0 {
		base.LineThresholdPx = override.LineThresholdPx
	}
	return base
}

// === Image helpers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	data, err := imaging.ReadFile(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Info(data)
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	data, err := imaging.ReadFile(a.Path)
	if err != nil {
		return nil, err
	}
	img, _, err := imaging.Decode(data)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(img, a.X, a.Y)
}

// === Contrast ===

type contrastRatioArgs struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

// ContrastResult reports a ratio and the WCAG levels it satisfies.
type ContrastResult struct {
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	Ratio      float64 `json:"ratio"`
	AA         bool    `json:"aa"`
	AALarge    bool    `json:"aa_large"`
	AAA        bool    `json:"aaa"`
	AAALarge   bool    `json:"aaa_large"`
}

func (s *Server) handleContrastRatio(args json.RawMessage) (interface{}, error) {
	var a contrastRatioArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	fg, err := parseHex(a.Foreground)
	if err != nil {
		return nil, invalidArgs("foreground: %v", err)
	}
	bg, err := parseHex(a.Background)
	if err != nil {
		return nil, invalidArgs("background: %v", err)
	}

	ratio := contrast.Ratio(fg, bg)
	return &ContrastResult{
		Foreground: fg.Hex(),
		Background: bg.Hex(),
		Ratio:      contrast.Round2(ratio),
		AA:         ratio >= levelAA,
		AALarge:    ratio >= levelAALarge,
		AAA:        ratio >= levelAAA,
		AAALarge:   ratio >= levelAAALarge,
	}, nil
}

// parseHex accepts #rgb or #rrggbb, with or without the leading '#'.
func parseHex(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return colorful.Color{}, errors.New("color is required")
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return colorful.Hex(s)
}
