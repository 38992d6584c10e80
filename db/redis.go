// api/db/redis.go
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/planweave/api/logging"
	"github.com/planweave/api/model"
)

var RedisClient *redis.Client

func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
		PoolTimeout:  viper.GetDuration("redis.poolTimeout"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

// CacheValidationReport stores a full validation result set under the given
// report ID so the planning UI can re-fetch it without re-running the
// pipeline.
func CacheValidationReport(ctx context.Context, reportID string, results []model.ValidationResult) error {
	reportJSON, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal validation report: %w", err)
	}

	key := fmt.Sprintf("validation-report:%s", reportID)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, reportJSON, defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache validation report: %w", err)
	}

	logger.Debug("Validation report cached successfully", zap.String("reportID", reportID))
	return nil
}

// GetCachedValidationReport returns a previously cached result set, or nil
// when the report is unknown or expired.
func GetCachedValidationReport(ctx context.Context, reportID string) ([]model.ValidationResult, error) {
	key := fmt.Sprintf("validation-report:%s", reportID)
	reportJSON, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Validation report not found in cache", zap.String("reportID", reportID))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get validation report from cache: %w", err)
	}

	var results []model.ValidationResult
	err = json.Unmarshal([]byte(reportJSON), &results)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal validation report: %w", err)
	}

	logger.Debug("Validation report retrieved from cache", zap.String("reportID", reportID))
	return results, nil
}

// DeleteCachedValidationReport drops a cached report, typically after the
// underlying planning data changed.
func DeleteCachedValidationReport(ctx context.Context, reportID string) error {
	key := fmt.Sprintf("validation-report:%s", reportID)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete validation report from cache: %w", err)
	}
	logger.Debug("Validation report deleted from cache", zap.String("reportID", reportID))
	return nil
}

func RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	pipe := RedisClient.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := cmds[2].(*redis.IntCmd).Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}
