package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendo/internal/auth"
	api "spendo/internal/http"
	authapi "spendo/internal/http/auth"
	exportapi "spendo/internal/http/export"
	receiptapi "spendo/internal/http/receipt"
	reportapi "spendo/internal/http/report"
	transactionapi "spendo/internal/http/transaction"
	voiceapi "spendo/internal/http/voice"
	"spendo/internal/receipt"
	"spendo/internal/storage"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	kv := storage.NewMemory()
	persister := storage.NewTransactionPersister(kv)
	svc := auth.NewService(auth.Demo{}, kv, []byte("test-secret"), time.Hour)

	handler := api.New(
		svc,
		authapi.NewHandler(svc),
		transactionapi.NewHandler(persister),
		reportapi.NewHandler(persister),
		voiceapi.NewHandler(),
		exportapi.NewHandler(persister),
		receiptapi.NewHandler(receipt.Stub{}),
	)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return server
}

func signIn(t *testing.T, server *httptest.Server) string {
	t.Helper()

	resp, err := http.Post(server.URL+"/api/v1/auth/signin", "application/json",
		strings.NewReader(`{"email":"ana@example.com","password":"pw"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var session struct {
		User  auth.Profile `json:"user"`
		Token string       `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))
	require.NotEmpty(t, session.Token)
	assert.Equal(t, "Demo User", session.User.Name)

	return session.Token
}

func doJSON(t *testing.T, server *httptest.Server, method, path, token, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, server.URL+path, bytes.NewReader([]byte(body)))
	require.NoError(t, err)

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	return resp
}

func TestAPI_TransactionFlow(t *testing.T) {
	server := newTestServer(t)
	token := signIn(t, server)

	resp := doJSON(t, server, http.MethodPost, "/api/v1/transactions", token,
		`{"amount":"25","type":"expense","category":"food","method":"card","notes":"lunch"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID     string `json:"id"`
		Amount string `json:"amount"`
		Notes  string `json:"notes"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "25", created.Amount)
	assert.Equal(t, "lunch", created.Notes)

	listResp := doJSON(t, server, http.MethodGet, "/api/v1/transactions", token, "")
	defer listResp.Body.Close()
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var list []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestAPI_CreateTransaction_Invalid(t *testing.T) {
	server := newTestServer(t)
	token := signIn(t, server)

	resp := doJSON(t, server, http.MethodPost, "/api/v1/transactions", token,
		`{"amount":"0","type":"expense","category":"food"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_RequiresToken(t *testing.T) {
	server := newTestServer(t)

	for _, path := range []string{"/api/v1/transactions", "/api/v1/reports?period=daily", "/api/v1/export"} {
		resp := doJSON(t, server, http.MethodGet, path, "", "")
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}

	resp := doJSON(t, server, http.MethodGet, "/api/v1/transactions", "not-a-token", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_Report(t *testing.T) {
	server := newTestServer(t)
	token := signIn(t, server)

	createResp := doJSON(t, server, http.MethodPost, "/api/v1/transactions", token,
		`{"amount":"100","type":"income","category":"other"}`)
	createResp.Body.Close()
	require.Equal(t, http.StatusCreated, createResp.StatusCode)

	resp := doJSON(t, server, http.MethodGet, "/api/v1/reports?period=monthly", token, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report struct {
		Income  string `json:"income"`
		Expense string `json:"expense"`
		Balance string `json:"balance"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, "100", report.Income)
	assert.Equal(t, "0", report.Expense)
	assert.Equal(t, "100", report.Balance)

	badResp := doJSON(t, server, http.MethodGet, "/api/v1/reports?period=hourly", token, "")
	badResp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, badResp.StatusCode)
}

func TestAPI_Export(t *testing.T) {
	server := newTestServer(t)
	token := signIn(t, server)

	resp := doJSON(t, server, http.MethodGet, "/api/v1/export", token, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
}

func TestAPI_VoiceParse(t *testing.T) {
	server := newTestServer(t)
	token := signIn(t, server)

	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/v1/voice/parse",
		strings.NewReader("I spent 25 dollars on food"))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Amount   *string `json:"amount"`
		Type     *string `json:"type"`
		Category *string `json:"category"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.NotNil(t, result.Amount)
	assert.Equal(t, "25", *result.Amount)
	require.NotNil(t, result.Type)
	assert.Equal(t, "expense", *result.Type)
	require.NotNil(t, result.Category)
	assert.Equal(t, "food", *result.Category)
}

func TestAPI_ReceiptScan(t *testing.T) {
	server := newTestServer(t)
	token := signIn(t, server)

	resp := doJSON(t, server, http.MethodPost, "/api/v1/receipts/scan", token, `{"image_ref":"file:///r.jpg"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var extraction struct {
		Amount *string `json:"amount"`
		Vendor string  `json:"vendor"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&extraction))
	require.NotNil(t, extraction.Amount)
	assert.Equal(t, "Sample Store", extraction.Vendor)
}
