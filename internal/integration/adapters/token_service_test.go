package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	domainerror "github.com/rental-ledger/backend/internal/domain/error"
)

func TestTokenService_ValidateAccessToken(t *testing.T) {
	service := NewTokenService("test-secret", "rental-ledger-auth")

	token, err := service.IssueAccessToken("owner-1", time.Minute)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	claims, err := service.ValidateAccessToken(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "owner-1" {
		t.Errorf("expected subject owner-1, got %s", claims.Subject)
	}
}

func TestTokenService_Rejections(t *testing.T) {
	service := NewTokenService("test-secret", "rental-ledger-auth")

	expired, _ := service.IssueAccessToken("owner-1", -time.Minute)
	otherSecret, _ := NewTokenService("other-secret", "rental-ledger-auth").IssueAccessToken("owner-1", time.Minute)
	otherIssuer, _ := NewTokenService("test-secret", "someone-else").IssueAccessToken("owner-1", time.Minute)

	tests := []struct {
		name     string
		token    string
		expected error
	}{
		{name: "expired", token: expired, expected: domainerror.ErrExpiredToken},
		{name: "wrong secret", token: otherSecret, expected: domainerror.ErrInvalidToken},
		{name: "wrong issuer", token: otherIssuer, expected: domainerror.ErrInvalidToken},
		{name: "garbage", token: "not-a-jwt", expected: domainerror.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ValidateAccessToken(context.Background(), tt.token)
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}
