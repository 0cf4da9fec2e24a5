package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/beststore/beststore/internal/config"
)

// LoginRateLimiter throttles credential-guessing attempts using Redis
type LoginRateLimiter interface {
	// Allow reports whether the client may attempt another login
	// Returns: allowed bool, used int64, limit int64, error
	Allow(ctx context.Context, clientIP string) (bool, int64, int64, error)

	// Close closes the Redis connection
	Close() error
}

type redisLoginRateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	logger *slog.Logger
}

// NewLoginRateLimiter creates a new Redis-based login rate limiter
func NewLoginRateLimiter(cfg *config.Config, logger *slog.Logger) (LoginRateLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       int(cfg.RedisDB),
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("❌ [RateLimiter] Failed to connect to Redis", "error", err)
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("✅ [RateLimiter] Connected to Redis",
		"host", cfg.RedisHost,
		"port", cfg.RedisPort,
	)

	return &redisLoginRateLimiter{
		client: client,
		limit:  cfg.LoginRateLimit,
		window: time.Duration(cfg.LoginRateWin) * time.Second,
		logger: logger,
	}, nil
}

// loginKey generates the Redis key for a client's login attempt count
// Format: rate:login:{clientIP}
func loginKey(clientIP string) string {
	return fmt.Sprintf("rate:login:%s", clientIP)
}

func (r *redisLoginRateLimiter) Allow(ctx context.Context, clientIP string) (bool, int64, int64, error) {
	if r.limit <= 0 {
		return true, 0, 0, nil
	}

	key := loginKey(clientIP)

	pipe := r.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, r.window)

	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("❌ [RateLimiter] Failed to count login attempt", "error", err, "client_ip", clientIP)
		// On error, allow the request but log it
		return true, 0, r.limit, err
	}

	used := incr.Val()
	return used <= r.limit, used, r.limit, nil
}

func (r *redisLoginRateLimiter) Close() error {
	return r.client.Close()
}

// NoOpLoginRateLimiter is a rate limiter that always allows requests
// Used when Redis is not available
type NoOpLoginRateLimiter struct {
	logger *slog.Logger
}

// NewNoOpLoginRateLimiter creates a no-op login rate limiter
func NewNoOpLoginRateLimiter(logger *slog.Logger) LoginRateLimiter {
	logger.Warn("⚠️ [RateLimiter] Using no-op rate limiter - login throttling is disabled")
	return &NoOpLoginRateLimiter{logger: logger}
}

func (r *NoOpLoginRateLimiter) Allow(ctx context.Context, clientIP string) (bool, int64, int64, error) {
	return true, 0, 0, nil
}

func (r *NoOpLoginRateLimiter) Close() error {
	return nil
}

// ThrottleLogin rejects login attempts beyond the configured window limit
func ThrottleLogin(limiter LoginRateLimiter, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, used, limit, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			// Degrade open: a broken limiter must not lock everyone out
			c.Next()
			return
		}

		if !allowed {
			logger.Warn("⚠️ [RateLimiter] Login attempt limit reached",
				"client_ip", c.ClientIP(),
				"used", used,
				"limit", limit,
			)
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many login attempts, try again later"})
			c.Abort()
			return
		}

		c.Next()
	}
}
