package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		code int
		want int
	}{
		{"invalid params uses the JSON-RPC code", ErrorCodeInvalidParams, -32602},
		{"internal error uses the JSON-RPC code", ErrorCodeInternalError, -32603},
		{"model unavailable uses an implementation-defined code", ErrorCodeModelUnavailable, -32001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code)
		})
	}
}

func TestMCPError(t *testing.T) {
	err := newMCPError(ErrorCodeInvalidParams, "refs must be an array of strings", map[string]interface{}{
		"param": "refs",
	})

	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, "MCP error -32602: refs must be an array of strings", mcpErr.Error())
	assert.NotNil(t, mcpErr.Data)
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", nil},
		{"blank string", "   ", nil},
		{"single term", "Frame", []string{"Frame"}},
		{"comma separated", "Frame,Series", []string{"Frame", "Series"}},
		{"whitespace trimmed", " Frame , Series ", []string{"Frame", "Series"}},
		{"empty segments dropped", "Frame,,Series,", []string{"Frame", "Series"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitList(tt.input))
		})
	}
}

func TestGetStringSlice(t *testing.T) {
	t.Run("absent key", func(t *testing.T) {
		out, err := getStringSlice(map[string]interface{}{}, "refs")
		require.NoError(t, err)
		assert.Nil(t, out)
	})

	t.Run("array of strings", func(t *testing.T) {
		out, err := getStringSlice(map[string]interface{}{
			"refs": []interface{}{"Frame", "Frame.Filter"},
		}, "refs")
		require.NoError(t, err)
		assert.Equal(t, []string{"Frame", "Frame.Filter"}, out)
	})

	t.Run("non-array value", func(t *testing.T) {
		_, err := getStringSlice(map[string]interface{}{"refs": "Frame"}, "refs")
		assert.Error(t, err)
	})

	t.Run("non-string element", func(t *testing.T) {
		_, err := getStringSlice(map[string]interface{}{
			"refs": []interface{}{"Frame", 7},
		}, "refs")
		assert.Error(t, err)
	})
}

func TestGetIntDefault(t *testing.T) {
	args := map[string]interface{}{
		"decoded": float64(42), // JSON numbers decode as float64
		"native":  7,
	}

	assert.Equal(t, 42, getIntDefault(args, "decoded", 0))
	assert.Equal(t, 7, getIntDefault(args, "native", 0))
	assert.Equal(t, 1000, getIntDefault(args, "absent", 1000))
}
