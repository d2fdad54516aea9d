package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arockiam07/College-Voting-System/internal/domain"
	apperrors "github.com/Arockiam07/College-Voting-System/pkg/errors"
	"github.com/Arockiam07/College-Voting-System/pkg/logger"
)

// stubAuthService validates any token matching its map of known tokens
type stubAuthService struct {
	profiles map[string]*domain.UserProfile
}

func (s *stubAuthService) ValidateToken(ctx context.Context, token string) (*domain.UserProfile, error) {
	if profile, ok := s.profiles[token]; ok {
		return profile, nil
	}
	return nil, apperrors.NewAuthenticationError("Invalid or expired token")
}

func testLogger(t *testing.T) *logger.Logger {
	log, err := logger.New("error")
	require.NoError(t, err)
	return log
}

func okHandler(captured **domain.UserProfile) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			if user, ok := UserFromContext(r.Context()); ok {
				*captured = user
			}
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth(t *testing.T) {
	authService := &stubAuthService{profiles: map[string]*domain.UserProfile{
		"valid-token": {Sub: "student-1", Role: domain.RoleStudent},
	}}
	log := testLogger(t)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "valid bearer token",
			authHeader: "Bearer valid-token",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			authHeader: "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty bearer token",
			authHeader: "Bearer ",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown token",
			authHeader: "Bearer bogus",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured *domain.UserProfile
			handler := Auth(authService, log)(okHandler(&captured))

			req := httptest.NewRequest(http.MethodGet, "/api/votes/history", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				require.NotNil(t, captured)
				assert.Equal(t, "student-1", captured.Sub)
			} else {
				assert.Nil(t, captured)
			}
		})
	}
}

func TestAdminOnly(t *testing.T) {
	log := testLogger(t)

	tests := []struct {
		name       string
		user       *domain.UserProfile
		wantStatus int
	}{
		{
			name:       "admin passes",
			user:       &domain.UserProfile{Sub: "admin-1", Role: domain.RoleAdmin},
			wantStatus: http.StatusOK,
		},
		{
			name:       "student is rejected",
			user:       &domain.UserProfile{Sub: "student-1", Role: domain.RoleStudent},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "no identity in context",
			user:       nil,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := AdminOnly(log)(okHandler(nil))

			req := httptest.NewRequest(http.MethodGet, "/api/dashboard/admin", nil)
			if tt.user != nil {
				ctx := context.WithValue(req.Context(), UserContextKey, tt.user)
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequestID(t *testing.T) {
	log := testLogger(t)
	handler := RequestID(log)(okHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestUserFromContext(t *testing.T) {
	user := &domain.UserProfile{Sub: "student-1"}
	ctx := context.WithValue(context.Background(), UserContextKey, user)

	got, ok := UserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, user, got)

	_, ok = UserFromContext(context.Background())
	assert.False(t, ok)
}
