// File: lokseva/utils/session.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const SessionPrefix = "session:"

// Session is the server-side record behind an opaque session token.
type Session struct {
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// SaveSession stores the session in Redis under the given token with a TTL.
func SaveSession(ctx context.Context, client *redis.Client, token string, session Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := client.Set(ctx, SessionPrefix+token, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by token. Returns redis.Nil wrapped error if
// the token is unknown or expired.
func GetSession(ctx context.Context, client *redis.Client, token string) (*Session, error) {
	data, err := client.Get(ctx, SessionPrefix+token).Result()
	if err != nil {
		return nil, err
	}
	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// DeleteSession removes a session from Redis.
func DeleteSession(ctx context.Context, client *redis.Client, token string) error {
	return client.Del(ctx, SessionPrefix+token).Err()
}
