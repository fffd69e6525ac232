package practice

import (
	"fmt"
	"time"

	"github.com/SlpAus/speech-therapy-backend/internal/platform/database"
	"github.com/SlpAus/speech-therapy-backend/internal/platform/metadata"
	"github.com/SlpAus/speech-therapy-backend/internal/user"
	"github.com/SlpAus/speech-therapy-backend/pkg/lifecycle"
	"github.com/go-co-op/gocron"
)

// 补跑结算最多回溯的天数，防止脏的检查点导致全量重算
const maxCatchUpDays = 30

// StartRollupScheduler 启动每日进度结算任务。
// 任务在每天rollupHour:05结算前一天：重算汇总、判定目标、更新连续打卡。
// 生命周期与传入的handle绑定，收到停机信号后调度器停止。
func StartRollupScheduler(handle *lifecycle.Handle, rollupHour int) {
	defer handle.Close()

	// 进程可能在结算时间点停机，先补上漏掉的结算
	CatchUpMissedRollups()

	s := gocron.NewScheduler(time.Local)
	at := fmt.Sprintf("%02d:05", rollupHour)
	if _, err := s.Every(1).Day().At(at).Do(settlePreviousDay); err != nil {
		fmt.Printf("警告: 无法注册每日结算任务: %v\n", err)
		return
	}
	s.StartAsync()
	fmt.Printf("每日进度结算任务已启动 (每天 %s)。\n", at)

	<-handle.Done()
	s.Stop()
	fmt.Println("每日进度结算任务已停止。")
}

// settlePreviousDay 对所有用户结算昨天的进度。
func settlePreviousDay() {
	settleDayForAllUsers(Midnight(time.Now().AddDate(0, 0, -1)))
}

// CatchUpMissedRollups 根据结算检查点补跑漏掉的日期。
// 从未运行过时只结算昨天，并以此建立检查点。
func CatchUpMissedRollups() {
	yesterday := Midnight(time.Now().AddDate(0, 0, -1))

	lastDate, err := metadata.GetLastRollupDate(database.DB)
	if err != nil {
		fmt.Printf("每日结算错误: 无法读取结算检查点: %v\n", err)
		return
	}

	start := yesterday
	if !lastDate.IsZero() {
		start = Midnight(lastDate).AddDate(0, 0, 1)
	}
	if earliest := yesterday.AddDate(0, 0, -(maxCatchUpDays - 1)); start.Before(earliest) {
		start = earliest
	}

	for day := start; !day.After(yesterday); day = day.AddDate(0, 0, 1) {
		settleDayForAllUsers(day)
	}
}

// settleDayForAllUsers 对全量用户结算指定日期。
// 单个用户失败只记录日志，不阻断其余用户。
func settleDayForAllUsers(day time.Time) {
	fmt.Printf("开始结算 %s 的练习进度...\n", day.Format("2006-01-02"))

	var users []user.User
	if err := database.DB.Select("id").Find(&users).Error; err != nil {
		fmt.Printf("每日结算错误: 无法加载用户列表: %v\n", err)
		return
	}

	settled := 0
	for _, u := range users {
		if err := SettleDay(u.ID, day); err != nil {
			fmt.Printf("每日结算错误: 用户 %d 结算失败: %v\n", u.ID, err)
			continue
		}
		settled++
	}

	if err := metadata.SetLastRollupDate(database.DB, day); err != nil {
		fmt.Printf("每日结算错误: 无法更新结算检查点: %v\n", err)
	}
	fmt.Printf("每日结算完成，共处理 %d/%d 个用户。\n", settled, len(users))
}
