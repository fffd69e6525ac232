package metadata

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// LastRollupDateKey 存储每日进度结算任务最后处理过的日期。
	// 由practice模块的定时任务写入，启动时读取以补跑漏掉的结算。
	LastRollupDateKey = "last_rollup_date"
)

const dateLayout = "2006-01-02"

// GetValue retrieves a value for a given key from the metadata table.
func GetValue(db *gorm.DB, key string) (string, error) {
	var meta Metadata
	err := db.Where("key = ?", key).First(&meta).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// If the key doesn't exist, return an empty string, which is a valid default.
			return "", nil
		}
		return "", err
	}
	return meta.Value, nil
}

// SetValue creates or updates a value for a given key within a transaction.
func SetValue(db *gorm.DB, key, value string) error {
	// Use GORM's OnConflict clause for an efficient and atomic "upsert" operation.
	meta := Metadata{
		Key:   key,
		Value: value,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&meta).Error
}

// GetLastRollupDate 读取并解析最后一次结算的日期。
// 从未结算过时返回零值时间。
func GetLastRollupDate(db *gorm.DB) (time.Time, error) {
	valueStr, err := GetValue(db, LastRollupDateKey)
	if err != nil {
		return time.Time{}, err
	}
	if valueStr == "" {
		return time.Time{}, nil
	}
	date, err := time.ParseInLocation(dateLayout, valueStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("无法解析元数据 '%s' 的值: %w", LastRollupDateKey, err)
	}
	return date, nil
}

// SetLastRollupDate 记录最后一次结算的日期。
func SetLastRollupDate(db *gorm.DB, date time.Time) error {
	return SetValue(db, LastRollupDateKey, date.Format(dateLayout))
}
