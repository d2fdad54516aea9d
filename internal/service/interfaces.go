package service

import (
	"context"

	"github.com/Arockiam07/College-Voting-System/internal/domain"
)

// AuthService validates opaque SSO credentials into user profiles.
// Token issuance is the campus SSO's concern, not ours.
type AuthService interface {
	// ValidateToken validates a bearer token and returns the identity it encodes
	ValidateToken(ctx context.Context, token string) (*domain.UserProfile, error)
}
