package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hmiq/internal/adapters/catalogfile"
)

func call(t *testing.T, handler server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	res, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)

	switch c := res.Content[0].(type) {
	case mcp.TextContent:
		return c.Text, res.IsError
	case *mcp.TextContent:
		return c.Text, res.IsError
	default:
		t.Fatalf("unexpected content type %T", c)
		return "", false
	}
}

func TestListHandler(t *testing.T) {
	repo, err := catalogfile.LoadDefault(nil)
	require.NoError(t, err)
	handler := listHandler(repo)

	text, isErr := call(t, handler, map[string]any{"scales": "Usability"})
	assert.False(t, isErr)
	assert.Contains(t, text, "SUS  System Usability Scale")
	assert.NotContains(t, text, "UEQ")

	text, _ = call(t, handler, map[string]any{"time": "Standalone", "language": "en"})
	assert.Contains(t, text, "ACIR-Q")
	assert.Contains(t, text, "PAAI")
	assert.NotContains(t, text, "SUS")

	text, _ = call(t, handler, map[string]any{"search": "zzz"})
	assert.Equal(t, "No results.", text)

	text, isErr = call(t, handler, map[string]any{"time": "midway"})
	assert.True(t, isErr)
	assert.Contains(t, text, "invalid time")
}

func TestGetHandler(t *testing.T) {
	repo, err := catalogfile.LoadDefault(nil)
	require.NoError(t, err)
	handler := getHandler(repo)

	text, isErr := call(t, handler, map[string]any{"short": "ueq-s"})
	require.False(t, isErr, text)
	assert.Contains(t, text, "User Experience Questionnaire - Short (UEQ-S)")
	assert.Contains(t, text, "Hedonic: α = 0.81")
	assert.Contains(t, text, "Participants: n=31 (Students)")
	assert.Contains(t, text, "Website: UEQ online <https://www.ueq-online.org>")

	text, _ = call(t, handler, map[string]any{"short": "TiA", "language": "DE"})
	assert.Contains(t, text, "Reliability (German; available: German, English)")
	assert.Contains(t, text, "Familiarity: not reported")

	text, isErr = call(t, handler, map[string]any{"short": "NOPE"})
	assert.True(t, isErr)
	assert.Contains(t, text, "not found")

	_, isErr = call(t, handler, map[string]any{})
	assert.True(t, isErr)
}

func TestFacetHandlers(t *testing.T) {
	repo, err := catalogfile.LoadDefault(nil)
	require.NoError(t, err)

	text, _ := call(t, scalesHandler(repo), map[string]any{"filter": "charact"})
	assert.Equal(t, "Job Characteristics\nSystem Characteristics\nTask Characteristics\n", text)

	text, _ = call(t, languagesHandler(repo), map[string]any{"filter": "slov"})
	assert.Contains(t, text, "SI  Slovenian")
	assert.Contains(t, text, "SK  Slovak")
	assert.NotContains(t, text, "EN")
}
