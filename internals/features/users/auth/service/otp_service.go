// internals/features/users/auth/service/otp_service.go
package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	otpTTL         = 10 * time.Minute
	otpMaxAttempts = 5
)

var (
	ErrOTPExpired  = errors.New("otp kadaluarsa atau tidak ditemukan")
	ErrOTPMismatch = errors.New("kode otp salah")
	ErrOTPTooMany  = errors.New("terlalu banyak percobaan otp")
)

func otpKey(email string) string      { return "otp:register:" + email }
func otpAttemptKey(email string) string { return "otp:register:attempts:" + email }

// GenerateOTP membuat kode 6 digit secara kriptografis.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// StoreOTP menyimpan OTP registrasi di redis dengan TTL 10 menit.
func StoreOTP(ctx context.Context, rdb *redis.Client, email, code string) error {
	if err := rdb.Set(ctx, otpKey(email), code, otpTTL).Err(); err != nil {
		return err
	}
	return rdb.Set(ctx, otpAttemptKey(email), 0, otpTTL).Err()
}

// VerifyOTP mencocokkan kode; salah 5x → diblokir sampai TTL habis.
func VerifyOTP(ctx context.Context, rdb *redis.Client, email, code string) error {
	attempts, err := rdb.Incr(ctx, otpAttemptKey(email)).Result()
	if err != nil {
		return err
	}
	if attempts > otpMaxAttempts {
		return ErrOTPTooMany
	}

	stored, err := rdb.Get(ctx, otpKey(email)).Result()
	if err == redis.Nil {
		return ErrOTPExpired
	}
	if err != nil {
		return err
	}
	if stored != code {
		return ErrOTPMismatch
	}

	// sekali pakai
	rdb.Del(ctx, otpKey(email), otpAttemptKey(email))
	return nil
}
