package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"identity/config"
	"identity/internal/delivery/api/router"
	"identity/internal/delivery/api/router/handler"
	deliverycontext "identity/internal/delivery/context"
	"identity/internal/infra/auth"
	"identity/internal/infra/persistence/memory"
	"identity/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type envelope struct {
	Data *struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"user"`
		Token string `json:"token"`
	} `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = true
	cfg.HTTP.MaxRequestBodySize = "1KB"

	hasher, err := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	require.NoError(t, err)
	tokens, err := auth.NewJWTServiceWithOptions("test-secret", time.Hour)
	require.NoError(t, err)

	uc := impl.NewIdentityService(impl.IdentityServiceParams{
		UserRepo:     memory.NewUserRepository(),
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       logger,
	})

	r := router.NewRouter(router.RouterParams{IdentityHandler: handler.NewIdentityHandler(uc, logger)})

	return NewEcho(cfg, logger, r)
}

func do(t *testing.T, e *echo.Echo, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func TestServer_Health(t *testing.T) {
	e := newTestEcho(t)

	rec, env := do(t, e, http.MethodGet, "/health", "", map[string]string{deliverycontext.HeaderXRequestID: "req-42"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-42", env.Meta.RequestID)
}

func TestServer_IdentityFlow(t *testing.T) {
	e := newTestEcho(t)

	rec, registered := do(t, e, http.MethodPost, "/auth/register", `{"email":"ann@x.io","name":"Ann","password":"pw1"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotNil(t, registered.Data)
	assert.Equal(t, "ann@x.io", registered.Data.User.Email)
	assert.Equal(t, "Ann", registered.Data.User.Name)
	assert.NotEmpty(t, registered.Data.User.ID)
	assert.NotContains(t, rec.Body.String(), "password")

	rec, duplicate := do(t, e, http.MethodPost, "/auth/register", `{"email":"ann@x.io","name":"Ann2","password":"other"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, duplicate.Error)
	assert.Equal(t, "ALREADY_EXISTS", duplicate.Error.Code)

	rec, loggedIn := do(t, e, http.MethodPost, "/auth/login", `{"email":"ann@x.io","password":"pw1"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, loggedIn.Data)

	rec, refreshed := do(t, e, http.MethodPost, "/auth/verify", `{"token":"`+loggedIn.Data.Token+`"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, refreshed.Data)
	assert.Equal(t, registered.Data.User, refreshed.Data.User)
	assert.NotEqual(t, loggedIn.Data.Token, refreshed.Data.Token)

	rec, viaHeader := do(t, e, http.MethodPost, "/auth/verify", "", map[string]string{
		echo.HeaderAuthorization: "Bearer " + refreshed.Data.Token,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, viaHeader.Data)
	assert.Equal(t, registered.Data.User, viaHeader.Data.User)
}

func TestServer_Errors(t *testing.T) {
	e := newTestEcho(t)

	tests := []struct {
		name       string
		path       string
		body       string
		headers    map[string]string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "login unknown email",
			path:       "/auth/login",
			body:       `{"email":"nobody@x.io","password":"pw"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_CREDENTIALS",
		},
		{
			name:       "register missing password",
			path:       "/auth/register",
			body:       `{"email":"ann@x.io","name":"Ann"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "register malformed email",
			path:       "/auth/register",
			body:       `{"email":"ann","name":"Ann","password":"pw"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "malformed json",
			path:       "/auth/login",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "garbage token",
			path:       "/auth/verify",
			body:       `{"token":"garbage"}`,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:       "missing token",
			path:       "/auth/verify",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:       "non bearer authorization",
			path:       "/auth/verify",
			headers:    map[string]string{echo.HeaderAuthorization: "Basic abc"},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:       "body too large",
			path:       "/auth/register",
			body:       `{"email":"ann@x.io","name":"` + strings.Repeat("a", 2048) + `","password":"pw"}`,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown route",
			path:       "/auth/logout",
			body:       `{}`,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, e, http.MethodPost, tt.path, tt.body, tt.headers)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			assert.Nil(t, env.Data)
			assert.NotEmpty(t, env.Meta.RequestID)
		})
	}
}

func TestServer_UnauthorizedHidesDetails(t *testing.T) {
	e := newTestEcho(t)

	_, env := do(t, e, http.MethodPost, "/auth/verify", `{"token":"garbage"}`, nil)

	require.NotNil(t, env.Error)
	assert.Nil(t, env.Error.Details)
	assert.Equal(t, "invalid token", env.Error.Message)
}
