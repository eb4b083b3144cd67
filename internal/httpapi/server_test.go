package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func testServer() *Server {
	return NewServer(1337, log.NewWithOptions(&bytes.Buffer{}, log.Options{}))
}

func doRequest(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, testServer().Router(), http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"ok": true}`, rec.Body.String())
}

func TestStateBeforeNewHandReturns404(t *testing.T) {
	rec := doRequest(t, testServer().Router(), http.MethodGet, "/state", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body["error"])
}

func TestNewHandThenApplyAction(t *testing.T) {
	h := testServer().Router()

	rec := doRequest(t, h, http.MethodPost, "/new_hand", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var state stateDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	require.Equal(t, 15, state.Pot)
	require.Equal(t, 0, state.ToAct)

	rec = doRequest(t, h, http.MethodGet, "/legal_actions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var actions []actionDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &actions))
	require.NotEmpty(t, actions)

	rec = doRequest(t, h, http.MethodPost, "/apply_action", map[string]int{"index": 0})
	require.Equal(t, http.StatusOK, rec.Code)
	var ok map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ok))
	require.True(t, ok["ok"])
}

func TestApplyActionOutOfRangeReturns400(t *testing.T) {
	h := testServer().Router()
	doRequest(t, h, http.MethodPost, "/new_hand", nil)

	rec := doRequest(t, h, http.MethodPost, "/apply_action", map[string]int{"index": 99})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORSHeaderPresent(t *testing.T) {
	rec := doRequest(t, testServer().Router(), http.MethodGet, "/health", nil)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
