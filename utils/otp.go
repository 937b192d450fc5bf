package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
)

// OTPTTL is how long an emailed code stays valid.
const OTPTTL = 10 * time.Minute

// GenerateOTP generates a secure random numeric OTP of the given length.
func GenerateOTP(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0') + byte(n.Int64())
	}
	return string(digits), nil
}

func otpKey(email string) string {
	return "otp:" + email
}

// StoreOTP caches the OTP for the given email with the standard TTL,
// replacing any previous code.
func StoreOTP(ctx context.Context, client *redis.Client, email, otp string) error {
	if err := client.Set(ctx, otpKey(email), otp, OTPTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache OTP: %w", err)
	}
	return nil
}

// VerifyOTPRecord compares the provided OTP against the cached one and
// deletes it on success.
func VerifyOTPRecord(ctx context.Context, client *redis.Client, email, providedOTP string) error {
	storedOTP, err := client.Get(ctx, otpKey(email)).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("OTP not found or expired")
		}
		return fmt.Errorf("failed to retrieve OTP: %w", err)
	}

	if storedOTP != providedOTP {
		return fmt.Errorf("OTP does not match")
	}

	if err := client.Del(ctx, otpKey(email)).Err(); err != nil {
		GetLogger().Sugar().Warnf("Failed to delete OTP after verification: %v", err)
	}
	return nil
}
