package aiplan

import (
	"fmt"
	"time"

	"github.com/SlpAus/speech-therapy-backend/internal/platform/database"
	"github.com/SlpAus/speech-therapy-backend/internal/user"
)

// migrateDB 负责自动迁移数据库表结构
func migrateDB() error {
	if err := database.DB.AutoMigrate(&AIExercise{}); err != nil {
		return fmt.Errorf("无法迁移ai_exercises表: %w", err)
	}
	fmt.Println("AIExercise数据库表迁移成功。")
	return nil
}

// seedSampleExercises 为演示用户准备几条示例AI练习。
// 表非空时跳过，保证重复启动不会重复插入。
func seedSampleExercises() error {
	var count int64
	if err := database.DB.Model(&AIExercise{}).Count(&count).Error; err != nil {
		return fmt.Errorf("无法检查ai_exercises表: %w", err)
	}
	if count > 0 {
		return nil
	}

	demoUser, err := user.GetUserByEmail(user.DemoUserEmail)
	if err != nil {
		return fmt.Errorf("无法加载演示用户: %w", err)
	}
	if demoUser == nil {
		return fmt.Errorf("演示用户尚未创建，无法初始化示例AI练习")
	}

	now := time.Now()
	samples := []AIExercise{
		buildExercise(demoUser, "Speech", now),
		buildExercise(demoUser, "Body", now),
	}
	if err := database.DB.Create(&samples).Error; err != nil {
		return fmt.Errorf("无法写入示例AI练习: %w", err)
	}

	fmt.Printf("成功初始化 %d 条示例AI练习。\n", len(samples))
	return nil
}

// PrimeModule 是aiplan模块的初始化总入口
func PrimeModule() error {
	if err := migrateDB(); err != nil {
		return err
	}
	return seedSampleExercises()
}
