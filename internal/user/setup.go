package user

import (
	"fmt"

	"github.com/SlpAus/speech-therapy-backend/internal/platform/database"
	"github.com/redis/go-redis/v9"
)

// DemoUserEmail 是数据播种时创建的演示账号。
const DemoUserEmail = "demo@speechtherapy.com"

// migrateDB 负责自动迁移数据库表结构
func migrateDB() error {
	if err := database.DB.AutoMigrate(&User{}); err != nil {
		return fmt.Errorf("无法迁移user表: %w", err)
	}
	fmt.Println("User数据库表迁移成功。")
	return nil
}

// seedDemoUser 保证演示账号存在。按邮箱检查，重复启动不会重复创建。
func seedDemoUser() error {
	existing, err := GetUserByEmail(DemoUserEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		fmt.Println("演示用户已存在，无需播种。")
		return nil
	}

	demo := User{
		Name:               "Demo User",
		Email:              DemoUserEmail,
		Age:                25,
		DailyGoal:          15,
		WeeklyGoal:         105,
		StreakDays:         5,
		TotalPoints:        150,
		ExercisesCompleted: 12,
		DifficultyLevel:    "Intermediate",
	}
	if err := database.DB.Create(&demo).Error; err != nil {
		return fmt.Errorf("无法创建演示用户: %w", err)
	}
	fmt.Println("演示用户播种成功。")
	return nil
}

// WarmupCache 从SQLite加载所有用户，预热Redis的已知用户集合与积分排行
func WarmupCache() error {
	var users []User
	if err := database.DB.Select("id", "total_points").Find(&users).Error; err != nil {
		return fmt.Errorf("无法从SQLite读取用户: %w", err)
	}

	if len(users) == 0 {
		fmt.Println("无现有用户数据，无需预热用户缓存。")
		return nil
	}

	ids := make([]interface{}, len(users))
	ranking := make([]redis.Z, len(users))
	for i, u := range users {
		ids[i] = formatID(u.ID)
		ranking[i] = redis.Z{Score: float64(u.TotalPoints), Member: formatID(u.ID)}
	}

	// 使用Pipeline批量写入，先清空旧的缓存，确保数据一致性
	pipe := database.RDB.Pipeline()
	pipe.Del(database.Ctx, KnownUsersKey, PointsRankingKey)
	pipe.SAdd(database.Ctx, KnownUsersKey, ids...)
	pipe.ZAdd(database.Ctx, PointsRankingKey, ranking...)

	if _, err := pipe.Exec(database.Ctx); err != nil {
		return fmt.Errorf("预热用户缓存到Redis失败: %w", err)
	}

	fmt.Printf("成功预热 %d 个用户到Redis。\n", len(users))
	return nil
}

// PrimeModule 是user模块的初始化总入口
func PrimeModule() error {
	if err := migrateDB(); err != nil {
		return err
	}
	if err := seedDemoUser(); err != nil {
		return err
	}
	if err := WarmupCache(); err != nil {
		return err
	}
	return nil
}
