package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxAttempts = 5
	defaultWindow      = 15 * time.Minute
)

// acquireScript increments the attempt counter and starts the window on the
// first attempt, in one atomic step.
var acquireScript = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// LoginThrottle limits login attempts per username in a fixed window.
// Key format: login:fail:<username>
type LoginThrottle struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
// Non-positive limits fall back to 5 attempts per 15 minutes.
func NewLoginThrottle(client *redis.Client, maxAttempts int, window time.Duration) *LoginThrottle {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginThrottle{client: client, maxAttempts: int64(maxAttempts), window: window}
}

// Acquire reserves one attempt for username and reports whether it is within
// the limit. A failed attempt keeps its slot until the window ends; Reset
// releases them all. Concurrent callers can never exceed the limit together.
func (t *LoginThrottle) Acquire(ctx context.Context, username string) (bool, error) {
	n, err := acquireScript.Run(ctx, t.client, []string{t.key(username)}, t.window.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("throttle acquire: %w", err)
	}
	return n <= t.maxAttempts, nil
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, username string) error {
	if err := t.client.Del(ctx, t.key(username)).Err(); err != nil {
		return fmt.Errorf("throttle reset: %w", err)
	}
	return nil
}

func (t *LoginThrottle) key(username string) string {
	return "login:fail:" + username
}
