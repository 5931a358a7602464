package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartincident/internal/domain/user"
	"smartincident/internal/infrastructure/auth"
	"smartincident/internal/shared/authorization"
	"smartincident/internal/shared/logger"
)

type mockUserRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) FindByResetToken(ctx context.Context, token string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) FindByRole(ctx context.Context, role authorization.Role) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) { return nil, nil }

func (m *mockUserRepository) DeactivateByCompany(ctx context.Context, companyID uint) error {
	return nil
}

func testUser(t *testing.T, id uint, status user.Status) *user.User {
	t.Helper()
	hash := "hashed:pw"
	u, err := user.ReconstructUser(id, "Sam", "sam@staff.example", authorization.RoleAgent,
		status, &hash, nil, nil, nil, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func authTestEngine(jwtService *auth.JWTService, repo user.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	mw := NewAuthMiddleware(jwtService, repo, logger.NewLogger())
	engine.GET("/probe", mw.RequireAuth(), func(c *gin.Context) {
		actor, _ := GetActor(c)
		c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID})
	})
	return engine
}

func TestRequireAuth(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 30)

	t.Run("missing header", func(t *testing.T) {
		engine := authTestEngine(jwtService, &mockUserRepository{})
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/probe", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		engine := authTestEngine(jwtService, &mockUserRepository{})
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Basic abc")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		engine := authTestEngine(jwtService, &mockUserRepository{})
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := auth.NewJWTService("other-secret", 30)
		token, err := other.Generate(5)
		require.NoError(t, err)

		engine := authTestEngine(jwtService, &mockUserRepository{})
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token for deleted account", func(t *testing.T) {
		token, err := jwtService.Generate(5)
		require.NoError(t, err)

		engine := authTestEngine(jwtService, &mockUserRepository{})
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token for inactive account", func(t *testing.T) {
		token, err := jwtService.Generate(5)
		require.NoError(t, err)

		repo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return testUser(t, id, user.StatusInactive), nil
			},
		}
		engine := authTestEngine(jwtService, repo)
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("valid token for active account", func(t *testing.T) {
		token, err := jwtService.Generate(5)
		require.NoError(t, err)

		repo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				return testUser(t, id, user.StatusActive), nil
			},
		}
		engine := authTestEngine(jwtService, repo)
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"user_id":5`)
	})
}
