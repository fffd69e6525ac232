package user

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/SlpAus/speech-therapy-backend/internal/platform/config"
	"github.com/SlpAus/speech-therapy-backend/internal/platform/database"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ErrUserNotFound 在用户不存在时返回，由Handler映射为404。
var ErrUserNotFound = errors.New("用户不存在")

// GetUserByID 按主键加载用户。
func GetUserByID(id uint) (*User, error) {
	var u User
	if err := database.DB.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("无法从SQLite加载用户 %d: %w", id, err)
	}
	return &u, nil
}

// GetUserByEmail 按邮箱加载用户，不存在时返回(nil, nil)。
func GetUserByEmail(email string) (*User, error) {
	var u User
	err := database.DB.Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("无法按邮箱查找用户: %w", err)
	}
	return &u, nil
}

// CreateUser 创建一个新用户，练习目标取配置中的默认值。
// 创建成功后会同步写入Redis的已知用户缓存和积分排行。
func CreateUser(name, email string, age int) (*User, error) {
	newUser := User{
		Name:            name,
		Email:           email,
		Age:             age,
		DailyGoal:       config.Cfg.Practice.DefaultDailyGoal,
		WeeklyGoal:      config.Cfg.Practice.DefaultWeeklyGoal,
		DifficultyLevel: "Beginner",
	}
	if err := database.DB.Create(&newUser).Error; err != nil {
		return nil, fmt.Errorf("无法在SQLite中创建新用户: %w", err)
	}

	// 缓存写入失败只降级，不影响主流程；重建机制会补齐
	if err := cacheUser(&newUser); err != nil {
		fmt.Printf("警告: 无法将新用户 %d 写入Redis缓存: %v\n", newUser.ID, err)
	}
	return &newUser, nil
}

// IsUserKnown 检查一个用户ID是否存在。
// Redis健康时只查缓存以获得最高性能，降级时回源SQLite。
func IsUserKnown(id uint) (bool, error) {
	if database.IsRedisHealthy() {
		exists, err := database.RDB.SIsMember(database.Ctx, KnownUsersKey, formatID(id)).Result()
		if err == nil {
			return exists, nil
		}
		fmt.Printf("警告: 检查Redis用户缓存时出错，回源SQLite: %v\n", err)
	}

	var count int64
	if err := database.DB.Model(&User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("无法从SQLite检查用户 %d: %w", id, err)
	}
	return count > 0, nil
}

// UpdateGoals 更新用户的每日/每周练习目标。
func UpdateGoals(id uint, dailyGoal, weeklyGoal int) (*User, error) {
	u, err := GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if dailyGoal > 0 {
		u.DailyGoal = dailyGoal
	}
	if weeklyGoal > 0 {
		u.WeeklyGoal = weeklyGoal
	}
	if err := database.DB.Save(u).Error; err != nil {
		return nil, fmt.Errorf("无法更新用户 %d 的目标: %w", id, err)
	}
	return u, nil
}

// AwardPoints 为用户累加积分，并同步Redis积分排行。
// 它应该在已持有用户行锁的事务之外调用。
func AwardPoints(tx *gorm.DB, id uint, points int) error {
	if points <= 0 {
		return nil
	}
	err := tx.Model(&User{}).Where("id = ?", id).
		UpdateColumn("total_points", gorm.Expr("total_points + ?", points)).Error
	if err != nil {
		return fmt.Errorf("无法为用户 %d 累加积分: %w", id, err)
	}

	if err := database.RDB.ZIncrBy(database.Ctx, PointsRankingKey, float64(points), formatID(id)).Err(); err != nil {
		fmt.Printf("警告: 无法更新用户 %d 的积分排行: %v\n", id, err)
	}
	return nil
}

// PointsRank 返回用户在积分排行中的名次（1为最高）和参与人数。
// Redis不可用或用户未上榜时返回(0, 0, nil)。
func PointsRank(id uint) (int64, int64, error) {
	if !database.IsRedisHealthy() {
		return 0, 0, nil
	}
	rank, err := database.RDB.ZRevRank(database.Ctx, PointsRankingKey, formatID(id)).Result()
	if err != nil {
		return 0, 0, nil // 未上榜或Redis错误都按无排名处理
	}
	total, err := database.RDB.ZCard(database.Ctx, PointsRankingKey).Result()
	if err != nil {
		return 0, 0, nil
	}
	return rank + 1, total, nil
}

// DetermineLevel 根据连续打卡天数推导用户的当前水平档位。
func DetermineLevel(streakDays int) string {
	switch {
	case streakDays < 7:
		return "Beginner"
	case streakDays < 21:
		return "Intermediate"
	default:
		return "Advanced"
	}
}

// cacheUser 将单个用户写入Redis的已知用户集合与积分排行。
func cacheUser(u *User) error {
	pipe := database.RDB.Pipeline()
	pipe.SAdd(database.Ctx, KnownUsersKey, formatID(u.ID))
	pipe.ZAdd(database.Ctx, PointsRankingKey, redis.Z{Score: float64(u.TotalPoints), Member: formatID(u.ID)})
	_, err := pipe.Exec(database.Ctx)
	return err
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
