package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postRPC(t *testing.T, server *httptest.Server, req JSONRPCRequest) JSONRPCResponse {
	body, err := json.Marshal(req)
	require.NoError(t, err)

	resp, err := http.Post(server.URL, "application/json", bytes.NewBuffer(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var rpcResp JSONRPCResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rpcResp))
	return rpcResp
}

func TestHandleJSONRPC_ValidRequest(t *testing.T) {
	setupStubDriver(t)
	server := httptest.NewServer(http.HandlerFunc(handleJSONRPC))
	defer server.Close()

	resp := postRPC(t, server, JSONRPCRequest{
		JSONRPC: "2.0",
		Method:  "window_scroll",
		Params:  json.RawMessage(`{"width":0,"height":100}`),
		ID:      1,
	})

	assert.Equal(t, "2.0", resp.JSONRPC)
	assert.Nil(t, resp.Error)
	assert.NotNil(t, resp.Result)
}

func TestHandleJSONRPC_RejectsGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(handleJSONRPC))
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHandleJSONRPC_InvalidVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(handleJSONRPC))
	defer server.Close()

	resp := postRPC(t, server, JSONRPCRequest{
		JSONRPC: "1.1",
		Method:  "window_scroll",
		ID:      1,
	})

	require.NotNil(t, resp.Error)
	errorMap := resp.Error.(map[string]interface{})
	assert.Equal(t, float64(ErrCodeInvalidRequest), errorMap["code"])
}

func TestHandleJSONRPC_MissingMethod(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(handleJSONRPC))
	defer server.Close()

	resp := postRPC(t, server, JSONRPCRequest{
		JSONRPC: "2.0",
		ID:      1,
	})

	require.NotNil(t, resp.Error)
	errorMap := resp.Error.(map[string]interface{})
	assert.Equal(t, errMsgMissingMethod, errorMap["data"])
}

func TestHandleJSONRPC_MethodNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(handleJSONRPC))
	defer server.Close()

	resp := postRPC(t, server, JSONRPCRequest{
		JSONRPC: "2.0",
		Method:  "bogus",
		ID:      1,
	})

	require.NotNil(t, resp.Error)
	errorMap := resp.Error.(map[string]interface{})
	assert.Equal(t, float64(ErrCodeMethodNotFound), errorMap["code"])
}

func TestExecute_DispatchesThroughRegistry(t *testing.T) {
	setupStubDriver(t)

	result, err := Execute("window_scroll", json.RawMessage(`{"width":0,"height":0}`))
	require.NoError(t, err)
	assert.NotNil(t, result)

	_, err = Execute("bogus", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "method not found")
}

func TestCORSMiddleware(t *testing.T) {
	handler := corsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/rpc", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
