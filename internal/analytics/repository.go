package analytics

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/SlpAus/speech-therapy-backend/internal/platform/database"
	"github.com/redis/go-redis/v9"
)

const (
	// CacheKey 是一个 Redis Hash 的键，用于缓存序列化后的分析报告。
	// Field: 用户ID的十进制字符串
	// Value: Report 结构体的JSON序列化字符串
	CacheKey = "analytics:report"

	// CacheTTL 是单个用户报告的缓存时长。
	// 报告基于完成事实重算，短缓存只为吸收前端的密集刷新。
	CacheTTL = time.Minute
)

// GetReportCache 从Redis缓存中获取用户的分析报告。
func GetReportCache(userID uint) (*Report, error) {
	result, err := database.RDB.HGet(database.Ctx, CacheKey, cacheField(userID)).Result()
	if err == redis.Nil {
		return nil, nil // 缓存未命中，是正常情况，不返回错误
	}
	if err != nil {
		return nil, err
	}

	var report Report
	if err := json.Unmarshal([]byte(result), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// SetReportCache 将用户的分析报告存入Redis缓存。
func SetReportCache(userID uint, report *Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	// 使用Pipeline来原子地设置值和过期时间
	pipe := database.RDB.Pipeline()
	pipe.HSet(database.Ctx, CacheKey, cacheField(userID), data)
	pipe.HExpire(database.Ctx, CacheKey, CacheTTL, cacheField(userID))
	_, err = pipe.Exec(database.Ctx)
	return err
}

// ClearReportCache 丢弃全部缓存的报告。
// Redis恢复或缓存重建后调用，避免返回降级期间的陈旧数据。
func ClearReportCache() error {
	return database.RDB.Del(database.Ctx, CacheKey).Err()
}

func cacheField(userID uint) string {
	return strconv.FormatUint(uint64(userID), 10)
}
