package metadata

import (
	"fmt"

	"github.com/SlpAus/speech-therapy-backend/internal/platform/database"
)

// PrimeModule 负责初始化metadata模块的数据库部分
func PrimeModule() error {
	if err := database.DB.AutoMigrate(&Metadata{}); err != nil {
		return fmt.Errorf("无法迁移metadata表: %w", err)
	}
	fmt.Println("Metadata数据库表迁移成功。")
	return nil
}
