package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/komainu/pkg/adapters/jwtauth"
	server "github.com/m-mizutani/komainu/pkg/controller/http"
	"github.com/m-mizutani/komainu/pkg/domain/model/message"
	"github.com/m-mizutani/komainu/pkg/domain/types/apperr"
	dbmemory "github.com/m-mizutani/komainu/pkg/repository/database/memory"
	"github.com/m-mizutani/komainu/pkg/usecase"
	"github.com/m-mizutani/komainu/pkg/utils/async"
)

var testSecret = []byte("test-secret")

func sessionToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtauth.Claims{
		Name: "mizutani",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(testSecret)
	gt.NoError(t, err)
	return token
}

func newTestServer(t *testing.T, opts ...server.Options) *server.Server {
	t.Helper()
	uc := usecase.New(usecase.WithRenderLog(dbmemory.NewRenderLogRepository()))
	return server.New(append([]server.Options{server.WithMessageUseCases(uc)}, opts...)...)
}

func doRequest(srv *server.Server, req *http.Request) *httptest.ResponseRecorder {
	// Sync mode keeps the async history write inside the request
	req = req.WithContext(async.WithSyncMode(req.Context()))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

type errorBody struct {
	Error string      `json:"error"`
	Kind  apperr.Kind `json:"kind"`
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rec := doRequest(srv, httptest.NewRequest(http.MethodGet, "/health", nil))
	gt.Equal(t, rec.Code, http.StatusOK)
	gt.Equal(t, rec.Body.String(), "OK")
}

func TestRenderEndpoint(t *testing.T) {
	t.Run("renders message content", func(t *testing.T) {
		srv := newTestServer(t)
		body := bytes.NewBufferString(`{"role":"assistant","content":"hi **there**\n\n- a\n- b"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/messages/render", body)

		rec := doRequest(srv, req)
		gt.Equal(t, rec.Code, http.StatusOK)

		var rendered message.Rendered
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rendered))
		gt.Equal(t, rendered.Role, message.RoleAssistant)
		gt.Equal(t, len(rendered.Blocks), 2)
		gt.Equal(t, rendered.Blocks[0].Type, message.BlockParagraph)
		gt.Equal(t, rendered.Blocks[1].Type, message.BlockBulletList)
		gt.Equal(t, len(rendered.Blocks[1].Items), 2)
	})

	t.Run("role defaults to assistant", func(t *testing.T) {
		srv := newTestServer(t)
		body := bytes.NewBufferString(`{"content":"hello"}`)
		rec := doRequest(srv, httptest.NewRequest(http.MethodPost, "/api/messages/render", body))
		gt.Equal(t, rec.Code, http.StatusOK)

		var rendered message.Rendered
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rendered))
		gt.Equal(t, rendered.Role, message.RoleAssistant)
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		srv := newTestServer(t)
		body := bytes.NewBufferString(`{"content":`)
		rec := doRequest(srv, httptest.NewRequest(http.MethodPost, "/api/messages/render", body))
		gt.Equal(t, rec.Code, http.StatusBadRequest)
	})

	t.Run("unknown role is a 400", func(t *testing.T) {
		srv := newTestServer(t)
		body := bytes.NewBufferString(`{"role":"robot","content":"hello"}`)
		rec := doRequest(srv, httptest.NewRequest(http.MethodPost, "/api/messages/render", body))
		gt.Equal(t, rec.Code, http.StatusBadRequest)
	})
}

func TestListEndpoint(t *testing.T) {
	srv := newTestServer(t)

	for _, content := range []string{"one", "two", "three"} {
		body, err := json.Marshal(map[string]string{"role": "user", "content": content})
		gt.NoError(t, err)
		rec := doRequest(srv, httptest.NewRequest(http.MethodPost, "/api/messages/render", bytes.NewReader(body)))
		gt.Equal(t, rec.Code, http.StatusOK)
	}

	t.Run("newest first with limit", func(t *testing.T) {
		rec := doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/messages?limit=2", nil))
		gt.Equal(t, rec.Code, http.StatusOK)

		var resp struct {
			Renders    []*message.Rendered `json:"renders"`
			TotalCount int                 `json:"total_count"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.Equal(t, resp.TotalCount, 2)
		gt.Equal(t, resp.Renders[0].Content, "three")
		gt.Equal(t, resp.Renders[1].Content, "two")
	})

	t.Run("invalid limit is a 400", func(t *testing.T) {
		rec := doRequest(srv, httptest.NewRequest(http.MethodGet, "/api/messages?limit=lots", nil))
		gt.Equal(t, rec.Code, http.StatusBadRequest)
	})
}

func TestSessionAuth(t *testing.T) {
	verifier := jwtauth.NewVerifier(testSecret)
	srv := newTestServer(t, server.WithAuthVerifier(verifier))

	t.Run("missing token is a 401 with kind auth_failed", func(t *testing.T) {
		body := bytes.NewBufferString(`{"content":"hello"}`)
		rec := doRequest(srv, httptest.NewRequest(http.MethodPost, "/api/messages/render", body))
		gt.Equal(t, rec.Code, http.StatusUnauthorized)

		var errResp errorBody
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		gt.Equal(t, errResp.Kind, apperr.KindAuthFailed)
	})

	t.Run("garbage token is a 401", func(t *testing.T) {
		body := bytes.NewBufferString(`{"content":"hello"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/messages/render", body)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rec := doRequest(srv, req)
		gt.Equal(t, rec.Code, http.StatusUnauthorized)
	})

	t.Run("valid bearer token renders", func(t *testing.T) {
		body := bytes.NewBufferString(`{"content":"hello"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/messages/render", body)
		req.Header.Set("Authorization", "Bearer "+sessionToken(t))
		rec := doRequest(srv, req)
		gt.Equal(t, rec.Code, http.StatusOK)
	})

	t.Run("session cookie works as well", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: sessionToken(t)})
		rec := doRequest(srv, req)
		gt.Equal(t, rec.Code, http.StatusOK)
	})

	t.Run("health endpoint stays open", func(t *testing.T) {
		rec := doRequest(srv, httptest.NewRequest(http.MethodGet, "/health", nil))
		gt.Equal(t, rec.Code, http.StatusOK)
	})
}
