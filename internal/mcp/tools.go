package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/docfinder/docfinder-mcp/internal/lookup"
	"github.com/docfinder/docfinder-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams    = -32602 // Invalid method parameters
	ErrorCodeInternalError    = -32603 // Internal JSON-RPC error
	ErrorCodeModelUnavailable = -32001 // The indexed object model cannot be accessed
)

// handleListComponents handles the list_components tool invocation.
func (s *Server) handleListComponents(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := s.engine.ListComponents(ctx)
	if err != nil {
		return nil, engineError(err)
	}
	if names == nil {
		names = []string{}
	}
	return mcp.NewToolResultText(formatJSON(names)), nil
}

// handleSearchAPI handles the search_api tool invocation.
func (s *Server) handleSearchAPI(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		args = map[string]interface{}{}
	}

	req := lookup.SearchRequest{
		Components: splitList(getStringDefault(args, "components", "")),
		Methods:    splitList(getStringDefault(args, "methods", "")),
		MaxResults: getIntDefault(args, "max_results", 0),
	}
	if req.MaxResults < 0 {
		return nil, newMCPError(ErrorCodeInvalidParams, "max_results must be positive", map[string]interface{}{
			"param": "max_results",
			"value": req.MaxResults,
		})
	}

	response, err := s.engine.Search(ctx, req)
	if err != nil {
		return nil, engineError(err)
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleLookupAPI handles the lookup_api tool invocation.
func (s *Server) handleLookupAPI(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		args = map[string]interface{}{}
	}

	refs, err := getStringSlice(args, "refs")
	if err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "refs must be an array of strings", map[string]interface{}{
			"param":  "refs",
			"reason": err.Error(),
		})
	}

	req := lookup.LookupRequest{
		Refs:       refs,
		Query:      getStringDefault(args, "query", ""),
		MaxResults: getIntDefault(args, "max_results", 0),
	}

	views, err := s.engine.Lookup(ctx, req)
	if err != nil {
		return nil, engineError(err)
	}
	return mcp.NewToolResultText(formatJSON(views)), nil
}

// handleVerifyAPI handles the verify_api tool invocation.
func (s *Server) handleVerifyAPI(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	ref, ok := args["api_ref"].(string)
	if !ok || strings.TrimSpace(ref) == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "api_ref parameter is required", map[string]interface{}{
			"param":  "api_ref",
			"reason": "missing or empty",
		})
	}

	result, err := s.engine.Verify(ctx, ref)
	if err != nil {
		return nil, engineError(err)
	}
	return mcp.NewToolResultText(formatJSON(result)), nil
}

// handleLibraryVersion handles the get_library_version tool invocation.
func (s *Server) handleLibraryVersion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(formatJSON(s.model.Info())), nil
}

// handleDebugComponents handles the debug_components tool invocation.
func (s *Server) handleDebugComponents(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	infos, err := s.engine.DescribeComponents(ctx)
	if err != nil {
		return nil, engineError(err)
	}
	return mcp.NewToolResultText(formatJSON(infos)), nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error.
func newMCPError(code int, message string, data interface{}) error {
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// engineError maps engine failures to MCP error codes. Only total model
// unavailability gets its own code; everything else is internal.
func engineError(err error) error {
	if errors.Is(err, types.ErrModelUnavailable) {
		return newMCPError(ErrorCodeModelUnavailable, "object model unavailable", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return newMCPError(ErrorCodeInternalError, "lookup failed", map[string]interface{}{
		"error": err.Error(),
	})
}

// MCPError represents an MCP protocol error.
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a value as indented JSON.
func formatJSON(data interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// splitList splits a comma-separated filter string, dropping blanks.
func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getStringSlice extracts an optional array-of-strings parameter.
func getStringSlice(args map[string]interface{}, key string) ([]string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected array, got %T", raw)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("expected string element, got %T", item)
		}
		out = append(out, s)
	}
	return out, nil
}

// getIntDefault extracts an integer parameter with a default value.
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value.
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
