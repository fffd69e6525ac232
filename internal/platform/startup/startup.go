package startup

import (
	"fmt"

	"github.com/SlpAus/speech-therapy-backend/internal/aiplan"
	"github.com/SlpAus/speech-therapy-backend/internal/analytics"
	"github.com/SlpAus/speech-therapy-backend/internal/exercise"
	"github.com/SlpAus/speech-therapy-backend/internal/fluency"
	"github.com/SlpAus/speech-therapy-backend/internal/platform/metadata"
	"github.com/SlpAus/speech-therapy-backend/internal/practice"
	"github.com/SlpAus/speech-therapy-backend/internal/user"
)

// InitializeApplication 是应用首次启动时执行的总入口。
// 各模块的初始化都是幂等的，重复启动不会重复写入种子数据。
func InitializeApplication() error {
	fmt.Println("开始应用首次初始化...")

	if err := metadata.PrimeModule(); err != nil {
		return err
	}
	// 练习目录和示例AI练习都挂在演示用户下，user必须最先初始化
	if err := user.PrimeModule(); err != nil {
		return err
	}
	if err := exercise.PrimeModule(); err != nil {
		return err
	}
	if err := practice.PrimeModule(); err != nil {
		return err
	}
	if err := fluency.PrimeModule(); err != nil {
		return err
	}
	if err := aiplan.PrimeModule(); err != nil {
		return err
	}

	fmt.Println("应用初始化完成！")
	return nil
}

// RebuildCache 是一个专门用于在运行时热重建Redis缓存的函数。
// 已知用户集合和积分排行从SQLite全量重灌，分析报告缓存直接丢弃。
func RebuildCache() error {
	fmt.Println("开始缓存热重建...")

	if err := user.WarmupCache(); err != nil {
		return err
	}
	if err := analytics.ClearReportCache(); err != nil {
		return err
	}

	fmt.Println("缓存热重建完成。")
	return nil
}

// HandleRedisRecovery 在Redis从不健康状态恢复时，执行必要的清理和恢复操作。
func HandleRedisRecovery() {
	fmt.Println("检测到Redis已恢复，正在执行恢复后操作...")
	if err := analytics.ClearReportCache(); err != nil {
		fmt.Printf("警告: 无法清空分析报告缓存: %v\n", err)
	}
	fmt.Println("恢复后操作完成。")
}
