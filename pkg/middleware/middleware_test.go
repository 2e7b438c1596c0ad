package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/event-dashboard-api/internal/domain"
	"github.com/vfg2006/event-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/event-dashboard-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/event-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthenticator(ctrl)

	tests := []struct {
		name           string
		path           string
		header         string
		setup          func()
		expectedStatus int
		expectedCode   string
		expectNext     bool
	}{
		{
			name:           "healthcheck é público",
			path:           "/healthcheck",
			setup:          func() {},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "sem cabeçalho",
			path:           "/api/eventsArea",
			setup:          func() {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrMissingToken,
		},
		{
			name:           "esquema diferente de Bearer",
			path:           "/api/eventsArea",
			header:         "Basic abc",
			setup:          func() {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrMissingToken,
		},
		{
			name:   "token expirado",
			path:   "/api/eventsArea",
			header: "Bearer expirado",
			setup: func() {
				mockAuth.EXPECT().ValidateToken("expirado").
					Return(nil, &authenticating.AuthError{Err: authenticating.ErrExpiredToken, Code: apiErrors.ErrExpiredToken})
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrExpiredToken,
		},
		{
			name:   "token inválido",
			path:   "/api/eventsArea",
			header: "Bearer invalido",
			setup: func() {
				mockAuth.EXPECT().ValidateToken("invalido").
					Return(nil, &authenticating.AuthError{Err: authenticating.ErrInvalidToken, Code: apiErrors.ErrInvalidToken})
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:   "token válido",
			path:   "/api/eventsArea",
			header: "Bearer valido",
			setup: func() {
				mockAuth.EXPECT().ValidateToken("valido").Return(&domain.Claims{Email: "ana@example.com"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			var called bool
			handler := AuthMiddleware(mockAuth)(okHandler(&called))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectNext, called)
			if tt.expectedCode != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedCode)
			}
		})
	}
}

func TestAuthMiddleware_ClaimsNoContexto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthenticator(ctrl)
	mockAuth.EXPECT().ValidateToken("valido").Return(&domain.Claims{Email: "ana@example.com", Role: "admin"}, nil)

	var claims *domain.Claims
	handler := AuthMiddleware(mockAuth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ = ClaimsFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/tableData", nil)
	req.Header.Set("Authorization", "Bearer valido")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, claims)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestAdminOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthenticator(ctrl)
	admin := &domain.Claims{Role: "admin"}
	viewer := &domain.Claims{Role: "viewer"}
	mockAuth.EXPECT().IsAdmin(admin).Return(true)
	mockAuth.EXPECT().IsAdmin(viewer).Return(false)

	tests := []struct {
		name           string
		claims         *domain.Claims
		expectedStatus int
	}{
		{name: "administrador", claims: admin, expectedStatus: http.StatusOK},
		{name: "sem permissão", claims: viewer, expectedStatus: http.StatusForbidden},
		{name: "sem autenticação", claims: nil, expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			handler := AdminOnly(mockAuth)(okHandler(&called))

			req := httptest.NewRequest(http.MethodPost, "/api/cron/cache-warmup/run", nil)
			if tt.claims != nil {
				req = req.WithContext(contextWithClaims(req, tt.claims))
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedStatus == http.StatusOK, called)
		})
	}
}

func TestCors(t *testing.T) {
	tests := []struct {
		name           string
		allowed        []string
		origin         string
		method         string
		expectedOrigin string
		expectedStatus int
	}{
		{name: "origem liberada", allowed: []string{"https://dash.example.com"}, origin: "https://dash.example.com", method: http.MethodGet, expectedOrigin: "https://dash.example.com", expectedStatus: http.StatusTeapot},
		{name: "origem bloqueada", allowed: []string{"https://dash.example.com"}, origin: "https://evil.example.com", method: http.MethodGet, expectedOrigin: "", expectedStatus: http.StatusTeapot},
		{name: "curinga", allowed: []string{"*"}, origin: "http://localhost:3000", method: http.MethodGet, expectedOrigin: "http://localhost:3000", expectedStatus: http.StatusTeapot},
		{name: "preflight", allowed: []string{"*"}, origin: "http://localhost:3000", method: http.MethodOptions, expectedOrigin: "http://localhost:3000", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := Cors(tt.allowed)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			}))

			req := httptest.NewRequest(tt.method, "/api/months", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LoggingMiddleware()(LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/graphData", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":"error","code":"SRV_001","message":"Erro interno no servidor"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
}

func contextWithClaims(r *http.Request, claims *domain.Claims) context.Context {
	return context.WithValue(r.Context(), ContextKeyUser, claims)
}
