package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis menyiapkan client redis dengan timeout pendek.
// Dipakai untuk OTP registrasi & snapshot absentee alert.
func ConnectRedis(addr string) {
	Redis = redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis tidak terjangkau (%s): %v", addr, err)
	} else {
		log.Println("✅ Redis connected.")
	}
}

// RedisHealthy memeriksa konektivitas redis.
func RedisHealthy(ctx context.Context) bool {
	if Redis == nil {
		return false
	}
	return Redis.Ping(ctx).Err() == nil
}
