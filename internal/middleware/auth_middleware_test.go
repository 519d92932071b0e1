package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/pkg/apperrors"
	"github.com/yigit/placementhub/internal/pkg/auth"
)

type stubStudentRepo struct {
	existing map[int64]bool
}

func (r *stubStudentRepo) Create(context.Context, *models.Student) (int64, error) { return 0, nil }
func (r *stubStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	if !r.existing[id] {
		return nil, apperrors.ErrStudentNotFound
	}
	return &models.Student{ID: id}, nil
}
func (r *stubStudentRepo) GetByEmail(context.Context, string) (*models.Student, error) {
	return nil, apperrors.ErrStudentNotFound
}
func (r *stubStudentRepo) EmailExists(context.Context, string) (bool, error) { return false, nil }
func (r *stubStudentRepo) GetAll(context.Context) ([]*models.Student, error) { return nil, nil }
func (r *stubStudentRepo) Update(context.Context, *models.Student) error     { return nil }
func (r *stubStudentRepo) Delete(context.Context, int64) error               { return nil }

type stubAdminRepo struct {
	existing map[int64]bool
}

func (r *stubAdminRepo) Create(context.Context, *models.Admin) (int64, error) { return 0, nil }
func (r *stubAdminRepo) GetByID(_ context.Context, id int64) (*models.Admin, error) {
	if !r.existing[id] {
		return nil, apperrors.ErrAdminNotFound
	}
	return &models.Admin{ID: id}, nil
}
func (r *stubAdminRepo) GetByEmail(context.Context, string) (*models.Admin, error) {
	return nil, apperrors.ErrAdminNotFound
}
func (r *stubAdminRepo) EmailExists(context.Context, string) (bool, error) { return false, nil }

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "placementhub.test",
	})

	m := NewAuthMiddleware(jwtService,
		&stubStudentRepo{existing: map[int64]bool{1: true}},
		&stubAdminRepo{existing: map[int64]bool{5: true}},
	)

	router := gin.New()
	studentOnly := router.Group("/student-area")
	studentOnly.Use(m.JWTAuth(), m.RoleRequired(models.RoleStudent))
	studentOnly.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"principalID": PrincipalID(c)})
	})

	adminOnly := router.Group("/admin-area")
	adminOnly.Use(m.JWTAuth(), m.RoleRequired(models.RoleAdmin))
	adminOnly.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"principalID": PrincipalID(c)})
	})

	return router, jwtService
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "/student-area", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestJWTAuthValidStudentToken(t *testing.T) {
	router, jwtService := newTestRouter(t)

	token, _, err := jwtService.GenerateToken(1, "asha@college.edu", models.RoleStudent)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := doRequest(router, "/student-area", "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
}

func TestJWTAuthQueryParamToken(t *testing.T) {
	router, jwtService := newTestRouter(t)

	token, _, err := jwtService.GenerateToken(1, "asha@college.edu", models.RoleStudent)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := doRequest(router, "/student-area?token="+token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
}

func TestJWTAuthDeletedPrincipal(t *testing.T) {
	router, jwtService := newTestRouter(t)

	// ID 2 has no live student record; the token outlived its account.
	token, _, err := jwtService.GenerateToken(2, "gone@college.edu", models.RoleStudent)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := doRequest(router, "/student-area", "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRoleRequiredRejectsWrongRole(t *testing.T) {
	router, jwtService := newTestRouter(t)

	token, _, err := jwtService.GenerateToken(1, "asha@college.edu", models.RoleStudent)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := doRequest(router, "/admin-area", "Bearer "+token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestRoleRequiredAllowsAdmin(t *testing.T) {
	router, jwtService := newTestRouter(t)

	token, _, err := jwtService.GenerateToken(5, "admin@placementhub.app", models.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := doRequest(router, "/admin-area", "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
}

func TestJWTAuthTamperedToken(t *testing.T) {
	router, _ := newTestRouter(t)

	other := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "attacker-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "placementhub.test",
	})
	token, _, err := other.GenerateToken(1, "asha@college.edu", models.RoleStudent)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := doRequest(router, "/student-area", "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
