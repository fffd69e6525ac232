package fluency

import (
	"fmt"

	"github.com/SlpAus/speech-therapy-backend/internal/platform/database"
)

// migrateDB 负责自动迁移数据库表结构
func migrateDB() error {
	if err := database.DB.AutoMigrate(&FluencyScore{}); err != nil {
		return fmt.Errorf("无法迁移fluency_scores表: %w", err)
	}
	fmt.Println("Fluency数据库表迁移成功。")
	return nil
}

// PrimeModule 是fluency模块的初始化总入口
func PrimeModule() error {
	return migrateDB()
}
