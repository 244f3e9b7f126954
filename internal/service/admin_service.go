package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/sefazor/textback-landing/pkg/bcrypt"
	"github.com/sefazor/textback-landing/pkg/jwt"
)

const adminSubject = "admin"

var (
	ErrAdminDisabled      = errors.New("admin access is not configured")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AdminService guards the lead listing with a single operator password.
type AdminService struct {
	passwordHash string
	jwtSecret    string
	logger       *zap.Logger
}

func NewAdminService(passwordHash, jwtSecret string, logger *zap.Logger) *AdminService {
	return &AdminService{
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
		logger:       logger.Named("admin"),
	}
}

func (s *AdminService) Enabled() bool {
	return s.jwtSecret != "" && bcrypt.VerifyHash(s.passwordHash)
}

// Login checks password and returns a signed operator token.
func (s *AdminService) Login(password string) (string, error) {
	if !s.Enabled() {
		return "", ErrAdminDisabled
	}
	if err := bcrypt.ComparePassword(s.passwordHash, password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatch) {
			s.logger.Warn("admin login rejected")
		} else {
			s.logger.Error("admin password check failed", zap.Error(err))
		}
		return "", ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(s.jwtSecret, adminSubject, jwt.TokenExpiryAdmin)
	if err != nil {
		return "", err
	}

	s.logger.Info("admin logged in")
	return token, nil
}

// Authorize validates an operator token.
func (s *AdminService) Authorize(token string) error {
	if !s.Enabled() {
		return ErrAdminDisabled
	}
	subject, err := jwt.ValidateToken(s.jwtSecret, token)
	if err != nil {
		return err
	}
	if subject != adminSubject {
		return ErrInvalidCredentials
	}
	return nil
}
