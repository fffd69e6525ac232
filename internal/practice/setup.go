package practice

import (
	"fmt"

	"github.com/SlpAus/speech-therapy-backend/internal/platform/database"
)

// migrateDB 负责自动迁移数据库表结构
func migrateDB() error {
	if err := database.DB.AutoMigrate(&CompletedExercise{}, &UserProgress{}); err != nil {
		return fmt.Errorf("无法迁移practice相关表: %w", err)
	}
	fmt.Println("Practice数据库表迁移成功。")
	return nil
}

// PrimeModule 是practice模块的初始化总入口
func PrimeModule() error {
	return migrateDB()
}
