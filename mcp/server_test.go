package mcp

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobfit/backend/matching"
	"github.com/jobfit/backend/tools"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	engine := matching.NewEngine(matching.DefaultPolicy(), nil)
	registry := tools.NewToolRegistry(
		tools.NewScoreJobTool(engine),
		tools.NewRankJobsTool(engine),
		tools.NewAnalyzeGapsTool(engine),
	)

	router := gin.New()
	NewServer(registry, "test").RegisterRoutes(router.Group("/api"))
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeRPC(t *testing.T, w *httptest.ResponseRecorder, result interface{}) *MCPError {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		JSONRPC string          `json:"jsonrpc"`
		Result  json.RawMessage `json:"result"`
		Error   *MCPError       `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2.0", resp.JSONRPC)
	if resp.Error == nil && result != nil {
		require.NoError(t, json.Unmarshal(resp.Result, result))
	}
	return resp.Error
}

func TestHandleMCP_Initialize(t *testing.T) {
	router := newTestRouter()

	var result InitializeResult
	rpcErr := decodeRPC(t, postJSON(t, router, "/api/mcp", `{"jsonrpc":"2.0","id":1,"method":"initialize"}`), &result)
	require.Nil(t, rpcErr)
	assert.Equal(t, ProtocolVersion, result.ProtocolVersion)
	assert.Equal(t, "jobfit", result.ServerInfo.Name)
}

func TestHandleMCP_ToolsListIsSorted(t *testing.T) {
	router := newTestRouter()

	var result ToolsListResult
	rpcErr := decodeRPC(t, postJSON(t, router, "/api/mcp", `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`), &result)
	require.Nil(t, rpcErr)

	names := make([]string, 0, len(result.Tools))
	for _, def := range result.Tools {
		names = append(names, def.Name)
		assert.NotEmpty(t, def.InputSchema)
	}
	assert.Equal(t, []string{"analyze_skill_gaps", "rank_jobs", "score_job_match"}, names)
}

func TestHandleMCP_ToolsCall(t *testing.T) {
	router := newTestRouter()
	body := `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"score_job_match","arguments":{
		"skills":["React","node.js"],
		"job":{"id":"j1","requiredSkills":["React","Node.js","SQL"],"preferredSkills":["AWS"]}}}}`

	var result ToolCallResult
	rpcErr := decodeRPC(t, postJSON(t, router, "/api/mcp", body), &result)
	require.Nil(t, rpcErr)
	require.False(t, result.IsError)
	require.Len(t, result.Content, 1)

	var analysis struct {
		RequiredSkillsMatchPct int `json:"requiredSkillsMatchPct"`
		OverallScore           int `json:"overallScore"`
	}
	require.NoError(t, tools.DecodeResult(json.RawMessage(result.Content[0].Text), &analysis))
	assert.Equal(t, 67, analysis.RequiredSkillsMatchPct)
	assert.Equal(t, 57, analysis.OverallScore)
}

func TestHandleMCP_ToolFailureIsReported(t *testing.T) {
	router := newTestRouter()
	body := `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"score_job_match","arguments":{"skills":["Go"]}}}`

	var result ToolCallResult
	rpcErr := decodeRPC(t, postJSON(t, router, "/api/mcp", body), &result)
	require.Nil(t, rpcErr)
	assert.True(t, result.IsError)
	assert.Contains(t, result.Content[0].Text, "scoring failed")
}

func TestHandleMCP_Errors(t *testing.T) {
	router := newTestRouter()

	rpcErr := decodeRPC(t, postJSON(t, router, "/api/mcp", `{"jsonrpc":"2.0","id":5,"method":"resources/list"}`), nil)
	require.NotNil(t, rpcErr)
	assert.Equal(t, codeMethodNotFound, rpcErr.Code)

	rpcErr = decodeRPC(t, postJSON(t, router, "/api/mcp", `{"jsonrpc":"2.0","id":6,"method":"tools/call","params":{}}`), nil)
	require.NotNil(t, rpcErr)
	assert.Equal(t, codeInvalidParams, rpcErr.Code)

	rpcErr = decodeRPC(t, postJSON(t, router, "/api/mcp", `{not json`), nil)
	require.NotNil(t, rpcErr)
	assert.Equal(t, codeParseError, rpcErr.Code)
}

func TestHandleToolsCall_UnknownTool(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/mcp/tools/call", `{"name":"launch_rocket"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result ToolCallResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.IsError)
	assert.Contains(t, result.Content[0].Text, "tool not found")

	w = postJSON(t, router, "/api/mcp/tools/call", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleToolsList(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/mcp/tools", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var result ToolsListResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result.Tools, 3)
}
