package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/placementhub/internal/app/models"
	"github.com/yigit/placementhub/internal/app/models/dto"
	"github.com/yigit/placementhub/internal/app/repositories"
	"github.com/yigit/placementhub/internal/pkg/apperrors"
	"github.com/yigit/placementhub/internal/pkg/auth"
	"github.com/yigit/placementhub/internal/pkg/validation"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	RegisterStudent(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	LoginStudent(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	LoginAdmin(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authServiceImpl struct {
	studentRepo repositories.IStudentRepository
	adminRepo   repositories.IAdminRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	studentRepo repositories.IStudentRepository,
	adminRepo repositories.IAdminRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		studentRepo: studentRepo,
		adminRepo:   adminRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

func (s *authServiceImpl) validateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}
	if !validation.IsValidEmail(email) {
		return apperrors.ErrInvalidEmail
	}
	if password == "" {
		return fmt.Errorf("%w: password cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// RegisterStudent creates a new student account with a hashed password and an
// empty profile, and issues a token for it. Role is always student; admins
// are seeded from configuration.
func (s *authServiceImpl) RegisterStudent(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := s.validateCredentials(req.Email, req.Password); err != nil {
		return nil, err
	}
	if len(req.Password) < validation.PasswordMinLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrInvalidPassword, validation.PasswordMinLength)
	}

	exists, err := s.studentRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	id, err := s.studentRepo.Create(ctx, &models.Student{
		Email:    req.Email,
		Password: hashed,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", id).Str("email", req.Email).Msg("Student account created")
	return s.issueToken(id, req.Email, models.RoleStudent)
}

// LoginStudent authenticates a student. Unknown email and wrong password
// produce the same generic error.
func (s *authServiceImpl) LoginStudent(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := s.validateCredentials(req.Email, req.Password); err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(student.ID, student.Email, models.RoleStudent)
}

// LoginAdmin authenticates an admin.
func (s *authServiceImpl) LoginAdmin(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := s.validateCredentials(req.Email, req.Password); err != nil {
		return nil, err
	}

	admin, err := s.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(admin.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(admin.ID, admin.Email, models.RoleAdmin)
}

func (s *authServiceImpl) issueToken(id int64, email string, role models.RoleType) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(id, email, role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &dto.AuthResponse{
		ID:    id,
		Email: email,
		Role:  string(role),
		TokenResponse: dto.TokenResponse{
			Token:     token,
			TokenType: "Bearer",
			ExpiresIn: expiresIn,
		},
	}, nil
}
