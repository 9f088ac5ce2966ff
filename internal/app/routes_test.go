package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/selmenealex/my-finance/internal/config"
	"github.com/selmenealex/my-finance/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var cfg config.Config
	cfg.JWT.Secret = "test-secret"
	cfg.Store.UsersFile = filepath.Join(t.TempDir(), "users.json")

	r := gin.New()
	Setup(r, cfg, repo.NewFileUserRepo(cfg.Store.UsersFile), nil)
	return r
}

func do(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterLoginDataFlow(t *testing.T) {
	r := newTestEngine(t)

	// register
	w := do(r, http.MethodPost, "/api/register", `{"username":"alice","password":"hunter2"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"success":true}`, w.Body.String())

	// duplicate
	w = do(r, http.MethodPost, "/api/register", `{"username":"alice","password":"other"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"error":"Username taken"}`, w.Body.String())

	// login
	w = do(r, http.MethodPost, "/api/login", `{"username":"alice","password":"hunter2"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.Equal(t, "alice", login.Username)
	require.NotEmpty(t, login.Token)

	// seeded data comes back for the fresh account
	w = do(r, http.MethodGet, "/api/data", "", login.Token)
	require.Equal(t, http.StatusOK, w.Code)
	var data struct {
		Mode  string `json:"mode"`
		Users []struct {
			Name string `json:"name"`
		} `json:"users"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	require.Equal(t, "personal", data.Mode)
	require.Len(t, data.Users, 1)
	require.Equal(t, "alice", data.Users[0].Name)

	// overwrite wholesale, then read back verbatim
	w = do(r, http.MethodPost, "/api/data", `{"foo":1}`, login.Token)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"success":true}`, w.Body.String())

	w = do(r, http.MethodGet, "/api/data", "", login.Token)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"foo":1}`, w.Body.String())
}

func TestRegister_MissingFields(t *testing.T) {
	r := newTestEngine(t)

	for _, body := range []string{
		`{"username":"alice"}`,
		`{"password":"hunter2"}`,
		`{}`,
		`not json`,
	} {
		w := do(r, http.MethodPost, "/api/register", body, "")
		require.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		require.JSONEq(t, `{"error":"Missing fields"}`, w.Body.String(), "body: %s", body)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	r := newTestEngine(t)

	w := do(r, http.MethodPost, "/api/register", `{"username":"alice","password":"hunter2"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	// Wrong password and unknown user produce identical responses.
	wrongPw := do(r, http.MethodPost, "/api/login", `{"username":"alice","password":"nope"}`, "")
	noUser := do(r, http.MethodPost, "/api/login", `{"username":"ghost","password":"x"}`, "")

	require.Equal(t, http.StatusBadRequest, wrongPw.Code)
	require.Equal(t, http.StatusBadRequest, noUser.Code)
	require.JSONEq(t, `{"error":"Invalid credentials"}`, wrongPw.Body.String())
	require.Equal(t, wrongPw.Body.String(), noUser.Body.String())
}

func TestData_GuardResponsesHaveNoBody(t *testing.T) {
	r := newTestEngine(t)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		w := do(r, method, "/api/data", "", "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Zero(t, w.Body.Len())

		w = do(r, method, "/api/data", "", "not.a.jwt")
		require.Equal(t, http.StatusForbidden, w.Code)
		require.Zero(t, w.Body.Len())
	}
}

func TestData_TokenForDeletedUser(t *testing.T) {
	r := newTestEngine(t)

	// A token signed with the right secret but naming a user that was never
	// registered (store reset out-of-band) answers 401 without a body.
	w := do(r, http.MethodPost, "/api/register", `{"username":"alice","password":"pw"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/api/login", `{"username":"alice","password":"pw"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	// Fresh engine = fresh empty store; the old token still verifies.
	r2 := newTestEngine(t)
	w = do(r2, http.MethodGet, "/api/data", "", login.Token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Zero(t, w.Body.Len())
}

func TestHealth(t *testing.T) {
	r := newTestEngine(t)

	w := do(r, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"ok":true,"env":"","store":"file"}`, w.Body.String())
}
