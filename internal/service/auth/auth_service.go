package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Arockiam07/College-Voting-System/internal/domain"
	"github.com/Arockiam07/College-Voting-System/internal/service"
	apperrors "github.com/Arockiam07/College-Voting-System/pkg/errors"
	"github.com/Arockiam07/College-Voting-System/pkg/logger"
)

// SSOClaims are the claims the campus SSO signs into its tokens
type SSOClaims struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
	Year       string `json:"year,omitempty"`
	RollNumber string `json:"roll_number,omitempty"`
	jwt.RegisteredClaims
}

// Service validates campus SSO tokens. The platform never issues
// credentials itself; it only consumes the SSO's HMAC-signed JWTs.
type Service struct {
	secret []byte
	issuer string
	logger *logger.Logger
}

// NewService creates a new auth service
func NewService(secret, issuer string, logger *logger.Logger) service.AuthService {
	return &Service{
		secret: []byte(secret),
		issuer: issuer,
		logger: logger,
	}
}

// ValidateToken validates an SSO token and returns the identity it encodes
func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*domain.UserProfile, error) {
	claims := &SSOClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		s.logger.WithError(err).Debug("Token validation failed")
		return nil, apperrors.NewAuthenticationError("Invalid or expired token")
	}

	if !token.Valid {
		return nil, apperrors.NewAuthenticationError("Invalid or expired token")
	}

	if s.issuer != "" && claims.Issuer != "" && claims.Issuer != s.issuer {
		s.logger.WithField("issuer", claims.Issuer).Debug("Token issuer mismatch")
		return nil, apperrors.NewAuthenticationError("Token not issued for this application")
	}

	if claims.Subject == "" {
		return nil, apperrors.NewAuthenticationError("Invalid token: no user identifier")
	}

	role := claims.Role
	if role == "" {
		role = domain.RoleStudent
	}
	if role != domain.RoleAdmin && role != domain.RoleStudent {
		s.logger.WithField("role", role).Debug("Token carries unknown role")
		return nil, apperrors.NewAuthenticationError("Invalid token: unknown role")
	}

	profile := &domain.UserProfile{
		Sub:        claims.Subject,
		Name:       claims.Name,
		Email:      claims.Email,
		Role:       role,
		Department: claims.Department,
		Year:       claims.Year,
		RollNumber: claims.RollNumber,
	}

	s.logger.WithField("user_id", profile.Sub).Debug("Token validated successfully")
	return profile, nil
}
