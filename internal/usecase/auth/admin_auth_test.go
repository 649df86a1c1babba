package auth

import (
	"context"
	"testing"

	"github.com/creadoresuy/directorio-backend/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestLoginNotConfigured(t *testing.T) {
	uc := NewAdminAuthUseCase(config.AdminConfig{}, nil)
	err := uc.Login(context.Background(), "admin", "whatever", "1.2.3.4")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestLoginExactMatchOnly(t *testing.T) {
	uc := NewAdminAuthUseCase(config.AdminConfig{User: "admin", Password: "s3cret"}, nil)

	assert.NoError(t, uc.Login(context.Background(), "admin", "s3cret", "1.2.3.4"))
	assert.ErrorIs(t, uc.Login(context.Background(), "admin", "wrong", "1.2.3.4"), ErrInvalidCredentials)
	assert.ErrorIs(t, uc.Login(context.Background(), "other", "s3cret", "1.2.3.4"), ErrInvalidCredentials)
	assert.ErrorIs(t, uc.Login(context.Background(), "", "", "1.2.3.4"), ErrInvalidCredentials)
}

func TestSessionValueIsTheSecret(t *testing.T) {
	uc := NewAdminAuthUseCase(config.AdminConfig{User: "admin", Password: "s3cret"}, nil)
	assert.Equal(t, "s3cret", uc.SessionValue())
}

func TestValidSession(t *testing.T) {
	uc := NewAdminAuthUseCase(config.AdminConfig{User: "admin", Password: "s3cret"}, nil)
	assert.True(t, uc.ValidSession("s3cret"))
	assert.False(t, uc.ValidSession("nope"))
	assert.False(t, uc.ValidSession(""))
}

func TestValidSessionFailsOpenWithoutSecret(t *testing.T) {
	uc := NewAdminAuthUseCase(config.AdminConfig{}, nil)
	assert.True(t, uc.ValidSession(""))
	assert.True(t, uc.ValidSession("anything"))
}
