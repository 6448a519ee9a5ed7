package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// listComponentsTool returns the tool definition for list_components.
func listComponentsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_components",
		Description: "List all available high-level API components of the indexed library",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// searchAPITool returns the tool definition for search_api.
func searchAPITool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_api",
		Description: "Search API methods and documentation. Finds exact matches first, then falls back to fuzzy search.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"components": map[string]interface{}{
					"type":        "string",
					"description": "Comma-separated component names to search, case-insensitive (e.g. 'frame' or 'Frame,Series')",
				},
				"methods": map[string]interface{}{
					"type":        "string",
					"description": "Comma-separated method names to find, case-insensitive; can be combined with components",
				},
				"max_results": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return",
					"default":     1000,
					"minimum":     1,
				},
			},
		},
	}
}

// lookupAPITool returns the tool definition for lookup_api.
func lookupAPITool() mcp.Tool {
	return mcp.Tool{
		Name:        "lookup_api",
		Description: "Look up API records by reference ('Component' or 'Component.method') or free-text query",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"refs": map[string]interface{}{
					"type":        "array",
					"description": "API references; a token with a '.' matches one qualified name exactly, a bare token expands a whole component",
					"items": map[string]interface{}{
						"type": "string",
					},
				},
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Free-text query matched against qualified names and descriptions; used only when refs is empty",
				},
				"max_results": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results for free-text queries (reference lookups return all matches)",
					"default":     1000,
					"minimum":     1,
				},
			},
		},
	}
}

// verifyAPITool returns the tool definition for verify_api.
func verifyAPITool() mcp.Tool {
	return mcp.Tool{
		Name:        "verify_api",
		Description: "Verify that an API name or full signature exists in the indexed library",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"api_ref": map[string]interface{}{
					"type":        "string",
					"description": "An API name (e.g. 'Frame.Filter') or full signature (e.g. 'Frame.Filter(pred Expr) *Frame')",
				},
			},
			Required: []string{"api_ref"},
		},
	}
}

// libraryVersionTool returns the tool definition for get_library_version.
func libraryVersionTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_library_version",
		Description: "Get version and location metadata for the indexed library",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// debugComponentsTool returns the tool definition for debug_components.
func debugComponentsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "debug_components",
		Description: "Show discovered components, their kinds, and member counts; helps diagnose discovery issues",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
