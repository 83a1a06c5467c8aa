package commands

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStubDriver serves just enough of the wire protocol for session creation
func newStubDriver(t *testing.T) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"value": map[string]interface{}{"sessionId": "stub-session"},
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func resetCache(t *testing.T) {
	CloseAll()
	t.Cleanup(CloseAll)
}

func TestFindPage_NoRemoteConfigured(t *testing.T) {
	resetCache(t)
	SetDefaultRemote(RemoteConfig{})

	_, err := FindPage("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no remote driver address")
}

func TestFindPage_CachesSessions(t *testing.T) {
	resetCache(t)
	server := newStubDriver(t)
	SetDefaultRemote(RemoteConfig{Address: server.URL})

	first, err := FindPage("")
	require.NoError(t, err)

	second, err := FindPage("")
	require.NoError(t, err)
	assert.Same(t, first, second)

	// an explicit remote gets its own entry
	third, err := FindPage(server.URL + "/")
	require.NoError(t, err)
	assert.NotSame(t, first, third)
}

func TestStatusCommand(t *testing.T) {
	resetCache(t)
	server := newStubDriver(t)
	SetDefaultRemote(RemoteConfig{Address: server.URL})

	response := StatusCommand(StatusRequest{})
	require.Equal(t, "ok", response.Status)
	status := response.Data.(StatusResponse)
	assert.True(t, status.Ready)
	assert.Equal(t, server.URL, status.Address)

	SetDefaultRemote(RemoteConfig{})
	response = StatusCommand(StatusRequest{})
	assert.Equal(t, "error", response.Status)
}

func TestTapCommand_RejectsNegativeCoordinates(t *testing.T) {
	response := TapCommand(TapRequest{X: -1, Y: 5})
	assert.Equal(t, "error", response.Status)
	assert.Contains(t, response.Error, "non-negative")
}

func TestSwipeCommand_RejectsNegativeCoordinates(t *testing.T) {
	response := SwipeCommand(SwipeRequest{X1: 0, Y1: 0, X2: -5, Y2: 10})
	assert.Equal(t, "error", response.Status)
}

func TestTextCommand_RequiresText(t *testing.T) {
	response := TextCommand(TextRequest{})
	assert.Equal(t, "error", response.Status)
	assert.Contains(t, response.Error, "text is required")
}

func TestButtonCommand_UnsupportedButton(t *testing.T) {
	resetCache(t)
	server := newStubDriver(t)
	SetDefaultRemote(RemoteConfig{Address: server.URL})

	response := ButtonCommand(ButtonRequest{Button: "POWER"})
	assert.Equal(t, "error", response.Status)
	assert.Contains(t, response.Error, "unsupported button")
}

func TestContextSetCommand_InvalidTarget(t *testing.T) {
	resetCache(t)
	server := newStubDriver(t)
	SetDefaultRemote(RemoteConfig{Address: server.URL})

	response := ContextSetCommand(ContextRequest{Target: "bogus"})
	assert.Equal(t, "error", response.Status)
	assert.Contains(t, response.Error, "invalid context target")
}

func TestTimeoutsCommand_RequiresAValue(t *testing.T) {
	response := TimeoutsCommand(TimeoutsRequest{})
	assert.Equal(t, "error", response.Status)
}

func TestOpenURLCommand_Validation(t *testing.T) {
	response := OpenURLCommand(URLRequest{})
	assert.Equal(t, "error", response.Status)

	response = OpenURLCommand(URLRequest{URL: "example.com"})
	assert.Equal(t, "error", response.Status)
	assert.Contains(t, response.Error, "scheme")
}

func TestCookieGetCommand_RequiresName(t *testing.T) {
	response := CookieGetCommand(CookieRequest{})
	assert.Equal(t, "error", response.Status)
	assert.Contains(t, response.Error, "cookie name is required")
}

func TestAlertCommand_InvalidAction(t *testing.T) {
	resetCache(t)
	server := newStubDriver(t)
	SetDefaultRemote(RemoteConfig{Address: server.URL})

	response := AlertCommand(AlertRequest{Action: "shrug"})
	assert.Equal(t, "error", response.Status)
	assert.Contains(t, response.Error, "invalid alert action")
}
