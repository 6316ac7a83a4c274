package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/integration/persistence/model"
)

// fakeTokenRepo is an in-memory persistence.TokenRepository.
type fakeTokenRepo struct {
	refreshTokens    map[string]uuid.UUID
	invalidatedUsers []uuid.UUID
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{refreshTokens: make(map[string]uuid.UUID)}
}

func (r *fakeTokenRepo) SaveRefreshToken(_ context.Context, token string, userID uuid.UUID, _ time.Time) error {
	r.refreshTokens[token] = userID
	return nil
}

func (r *fakeTokenRepo) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	_, ok := r.refreshTokens[token]
	return ok, nil
}

func (r *fakeTokenRepo) InvalidateRefreshToken(_ context.Context, token string) error {
	delete(r.refreshTokens, token)
	return nil
}

func (r *fakeTokenRepo) InvalidateAllUserRefreshTokens(_ context.Context, userID uuid.UUID) error {
	r.invalidatedUsers = append(r.invalidatedUsers, userID)
	for token, owner := range r.refreshTokens {
		if owner == userID {
			delete(r.refreshTokens, token)
		}
	}
	return nil
}

func (r *fakeTokenRepo) SavePasswordResetToken(_ context.Context, _ string, _ uuid.UUID, _ string, _ time.Time) error {
	return nil
}

func (r *fakeTokenRepo) GetPasswordResetToken(_ context.Context, _ string) (*model.PasswordResetTokenModel, error) {
	return nil, nil
}

func (r *fakeTokenRepo) InvalidatePasswordResetToken(_ context.Context, _ string) error {
	return nil
}

func TestTokenServiceGenerateAndValidatePair(t *testing.T) {
	repo := newFakeTokenRepo()
	service := NewTokenService("unit-test-secret", repo)
	ctx := context.Background()

	userID := uuid.New()
	pair, err := service.GenerateTokenPair(ctx, userID, "ada@example.com", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens to be issued")
	}
	if len(repo.refreshTokens) != 1 {
		t.Fatalf("expected refresh token persisted, got %d", len(repo.refreshTokens))
	}

	claims, err := service.ValidateAccessToken(ctx, pair.AccessToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("expected user %s in claims, got %s", userID, claims.UserID)
	}
}

func TestTokenServiceInvalidateAllUserTokens(t *testing.T) {
	repo := newFakeTokenRepo()
	service := NewTokenService("unit-test-secret", repo)
	ctx := context.Background()

	userID := uuid.New()
	pair, err := service.GenerateTokenPair(ctx, userID, "ada@example.com", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.InvalidateAllUserTokens(ctx, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.invalidatedUsers) != 1 || repo.invalidatedUsers[0] != userID {
		t.Fatalf("expected invalidation delegated for user %s, got %v", userID, repo.invalidatedUsers)
	}

	valid, err := service.IsRefreshTokenValid(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if valid {
		t.Error("expected refresh token to be invalid after account-wide invalidation")
	}
}
