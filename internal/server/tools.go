package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func integerProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Audit
		{
			Name: "ux_audit",
			Description: "Run a heuristic UX and accessibility audit on a UI screenshot. Detects text with OCR and reports " +
				"small text, low contrast, small touch targets, heading hierarchy, tight spacing and misaligned lines. " +
				"Issues are merged per visual line.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"words_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional JSON file with pre-computed word boxes. When set, OCR is skipped.",
					},
					"min_text_px":           integerProperty("Minimum text height in pixels (default 16)"),
					"min_target_px":         integerProperty("Minimum touch target side in pixels (default 44)"),
					"target_min_text_chars": integerProperty("Text longer than this many characters is treated as a target (default 3)"),
					"min_heading_px":        integerProperty("Text taller than this is treated as a heading (default 20)"),
					"min_spacing_px":        integerProperty("Minimum vertical gap between elements (default 8)"),
					"align_tolerance_px":    integerProperty("Line bucket size and allowed left-edge spread (default 5)"),
					"line_threshold_px":     integerProperty("Vertical distance for merging issues into one line (default 20)"),
					"min_contrast": map[string]interface{}{
						"type":        "number",
						"description": "Minimum contrast ratio (default 4.5)",
					},
				},
				"required": []string{"path"},
			},
		},

		// Image helpers
		{
			Name:        "image_dimensions",
			Description: "Get the width, height and format of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color at a specific pixel. Returns hex, RGB and HSL values.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x":    integerProperty("X coordinate"),
					"y":    integerProperty("Y coordinate"),
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "contrast_ratio",
			Description: "Compute the contrast ratio between two colors and whether it meets the AA and AAA levels for normal and large text.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"foreground": map[string]interface{}{
						"type":        "string",
						"description": "Text color as hex, e.g. #777777",
					},
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Background color as hex, e.g. #ffffff",
					},
				},
				"required": []string{"foreground", "background"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
