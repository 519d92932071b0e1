package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/app/models/dto"
	"github.com/yigit/placementhub/internal/app/repositories"
	"github.com/yigit/placementhub/internal/pkg/auth"
)

// Context keys set by JWTAuth for downstream handlers.
const (
	CtxPrincipalID = "principalID"
	CtxEmail       = "email"
	CtxRole        = "role"
)

// AuthMiddleware is the authorization gate: it verifies tokens, resolves the
// principal, and enforces role allow-lists.
type AuthMiddleware struct {
	jwtService  *auth.JWTService
	studentRepo repositories.IStudentRepository
	adminRepo   repositories.IAdminRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, studentRepo repositories.IStudentRepository, adminRepo repositories.IAdminRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		studentRepo: studentRepo,
		adminRepo:   adminRepo,
	}
}

// JWTAuth validates the bearer token and resolves it to a live principal
// record. Tokens are not revoked on delete, so a token whose subject has been
// removed since issuance is rejected here.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		// The websocket stream cannot set headers from the browser; accept
		// the token as a query parameter there.
		if authHeader == "" {
			if queryToken := c.Query("token"); queryToken != "" {
				authHeader = queryToken
			}
		}

		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Not authorized, no token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Not authorized, invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			message := "Not authorized, token failed"
			if errors.Is(err, auth.ErrExpiredToken) {
				errorCode = dto.ErrorCodeExpiredToken
				message = "Not authorized, token expired"
			}
			errorDetail := dto.NewErrorDetail(errorCode, message)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		// Resolve the subject to a live record in the role's table.
		switch claims.Role {
		case models.RoleStudent:
			_, err = m.studentRepo.GetByID(c.Request.Context(), claims.PrincipalID)
		case models.RoleAdmin:
			_, err = m.adminRepo.GetByID(c.Request.Context(), claims.PrincipalID)
		default:
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Not authorized, invalid role")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Not authorized, user not found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(CtxPrincipalID, claims.PrincipalID)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxRole, claims.Role)

		c.Next()
	}
}

// RoleRequired enforces a required-role allow-list. Must run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(allowedRoles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole)
		if !exists {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Not authorized, no role")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		roleType, ok := role.(models.RoleType)
		if ok {
			for _, allowed := range allowedRoles {
				if roleType == allowed {
					c.Next()
					return
				}
			}
		}

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Not authorized, insufficient role")
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
	}
}

// PrincipalID returns the authenticated principal id set by JWTAuth.
func PrincipalID(c *gin.Context) int64 {
	id, _ := c.Get(CtxPrincipalID)
	v, _ := id.(int64)
	return v
}
