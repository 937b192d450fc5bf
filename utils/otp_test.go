package utils

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func testClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()}), mr
}

func TestGenerateOTP(t *testing.T) {
	for _, length := range []int{4, 6, 8} {
		otp, err := GenerateOTP(length)
		assert.NoError(t, err)
		assert.Len(t, otp, length)
		for _, ch := range otp {
			assert.True(t, ch >= '0' && ch <= '9', "OTP %q contains non-digit %q", otp, ch)
		}
	}
}

func TestStoreAndVerifyOTP(t *testing.T) {
	client, mr := testClient(t)
	ctx := context.Background()

	assert.NoError(t, StoreOTP(ctx, client, "ravi@gmail.com", "123456"))

	err := VerifyOTPRecord(ctx, client, "ravi@gmail.com", "123456")
	assert.NoError(t, err)

	// Verification consumes the code.
	err = VerifyOTPRecord(ctx, client, "ravi@gmail.com", "123456")
	assert.EqualError(t, err, "OTP not found or expired")
	assert.False(t, mr.Exists("otp:ravi@gmail.com"))
}

func TestVerifyOTP_Mismatch(t *testing.T) {
	client, mr := testClient(t)
	ctx := context.Background()

	assert.NoError(t, StoreOTP(ctx, client, "ravi@gmail.com", "123456"))

	err := VerifyOTPRecord(ctx, client, "ravi@gmail.com", "654321")
	assert.EqualError(t, err, "OTP does not match")
	// A failed attempt must not burn the code.
	assert.True(t, mr.Exists("otp:ravi@gmail.com"))
}

func TestVerifyOTP_Expired(t *testing.T) {
	client, mr := testClient(t)
	ctx := context.Background()

	assert.NoError(t, StoreOTP(ctx, client, "ravi@gmail.com", "123456"))
	mr.FastForward(OTPTTL + 1)

	err := VerifyOTPRecord(ctx, client, "ravi@gmail.com", "123456")
	assert.EqualError(t, err, "OTP not found or expired")
}

func TestStoreOTP_ReplacesPreviousCode(t *testing.T) {
	client, _ := testClient(t)
	ctx := context.Background()

	assert.NoError(t, StoreOTP(ctx, client, "ravi@gmail.com", "111111"))
	assert.NoError(t, StoreOTP(ctx, client, "ravi@gmail.com", "222222"))

	assert.EqualError(t, VerifyOTPRecord(ctx, client, "ravi@gmail.com", "111111"), "OTP does not match")
	assert.NoError(t, VerifyOTPRecord(ctx, client, "ravi@gmail.com", "222222"))
}
