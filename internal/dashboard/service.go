package dashboard

import (
	"math"
	"strings"
	"time"

	"github.com/SlpAus/speech-therapy-backend/internal/analytics"
	"github.com/SlpAus/speech-therapy-backend/internal/practice"
	"github.com/SlpAus/speech-therapy-backend/internal/user"
)

// WeeklyProgress 是首页的本周进度卡片。
type WeeklyProgress struct {
	TotalMinutesCompleted    int    `json:"totalMinutesCompleted"`
	TotalMinutesGoal         int    `json:"totalMinutesGoal"`
	Change                   string `json:"change"`
	BodyExercisesCompleted   int    `json:"bodyExercisesCompleted"`
	BodyExercisesGoal        int    `json:"bodyExercisesGoal"`
	SpeechExercisesCompleted int    `json:"speechExercisesCompleted"`
	SpeechExercisesGoal      int    `json:"speechExercisesGoal"`
}

// StreakData 是首页的连续打卡卡片。
type StreakData struct {
	CurrentStreak int `json:"currentStreak"`
	DaysGained    int `json:"daysGained"`
}

// TodayData 是首页的今日目标卡片。
type TodayData struct {
	Completed int    `json:"completed"`
	Goal      int    `json:"goal"`
	Status    string `json:"status"`
}

// RecentExercise 是首页最近练习列表的一行。
type RecentExercise struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Duration  int    `json:"duration"`
	Score     int    `json:"score"`
	Completed string `json:"completed"`
}

// DashboardData 是首页接口的完整输出。
type DashboardData struct {
	WeeklyProgress      WeeklyProgress   `json:"weeklyProgress"`
	Streak              StreakData       `json:"streak"`
	Today               TodayData        `json:"today"`
	WelcomeMessage      string           `json:"welcomeMessage"`
	MotivationalMessage string           `json:"motivationalMessage"`
	RecentExercises     []RecentExercise `json:"recentExercises"`
}

// DashboardStats 是统计接口的输出。
type DashboardStats struct {
	TotalExercises int     `json:"totalExercises"`
	TotalMinutes   int     `json:"totalMinutes"`
	AverageScore   float64 `json:"averageScore"`
	CurrentStreak  int     `json:"currentStreak"`
	BestStreak     int     `json:"bestStreak"`
}

// GetDashboardData 汇总用户首页需要的全部数据。
func GetDashboardData(userID uint) (*DashboardData, error) {
	u, err := user.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	today := practice.Midnight(time.Now())
	weekStart := today.AddDate(0, 0, -6)

	weekly, err := weeklyProgress(u, weekStart, today)
	if err != nil {
		return nil, err
	}
	todayData, err := todayData(u, today)
	if err != nil {
		return nil, err
	}
	recent, err := recentExercises(userID)
	if err != nil {
		return nil, err
	}

	return &DashboardData{
		WeeklyProgress: *weekly,
		Streak: StreakData{
			CurrentStreak: u.StreakDays,
			DaysGained:    maxInt(0, u.StreakDays-1),
		},
		Today:               *todayData,
		WelcomeMessage:      "Welcome back " + u.Name + "! You're making great progress with your speech therapy.",
		MotivationalMessage: "Consistency is key to improving your speech. Every exercise brings you closer to your goals.",
		RecentExercises:     recent,
	}, nil
}

// GetDashboardStats 汇总用户本周的统计数据。
func GetDashboardStats(userID uint) (*DashboardStats, error) {
	u, err := user.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	today := practice.Midnight(time.Now())
	weekStart := today.AddDate(0, 0, -6)

	records, err := practice.FindCompletionsInRange(userID, weekStart, today)
	if err != nil {
		return nil, err
	}
	seconds, err := practice.TotalPracticeSeconds(userID, weekStart, today)
	if err != nil {
		return nil, err
	}
	avgScore, err := weeklyAverageScore(userID, weekStart, today)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalExercises: len(records),
		TotalMinutes:   seconds / 60,
		AverageScore:   avgScore,
		CurrentStreak:  u.StreakDays,
		// 历史最佳暂时与当前持平，连续打卡历史还没有单独落表
		BestStreak: u.StreakDays,
	}, nil
}

// weeklyProgress 计算本周进度卡片，变化率与上一周对比。
func weeklyProgress(u *user.User, weekStart, weekEnd time.Time) (*WeeklyProgress, error) {
	seconds, err := practice.TotalPracticeSeconds(u.ID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	prevSeconds, err := practice.TotalPracticeSeconds(u.ID, weekStart.AddDate(0, 0, -7), weekStart.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}

	records, err := practice.FindCompletionsInRange(u.ID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	bodyCount, speechCount := countByKind(records)

	return &WeeklyProgress{
		TotalMinutesCompleted:    seconds / 60,
		TotalMinutesGoal:         u.WeeklyGoal,
		Change:                   analytics.PercentChange(seconds/60, prevSeconds/60),
		BodyExercisesCompleted:   bodyCount,
		BodyExercisesGoal:        u.WeeklyGoal / 7,
		SpeechExercisesCompleted: speechCount,
		SpeechExercisesGoal:      u.WeeklyGoal / 7,
	}, nil
}

// todayData 计算今日目标卡片，达标判断基于练习分钟数。
func todayData(u *user.User, today time.Time) (*TodayData, error) {
	count, err := practice.CountCompletionsOnDate(u.ID, today)
	if err != nil {
		return nil, err
	}
	seconds, err := practice.TotalPracticeSeconds(u.ID, today, today)
	if err != nil {
		return nil, err
	}

	status := "On track"
	if seconds/60 >= u.DailyGoal {
		status = "Goal Met!"
	}

	return &TodayData{
		Completed: int(count),
		Goal:      u.DailyGoal,
		Status:    status,
	}, nil
}

// recentExercises 返回最近5条完成记录的展示行。
func recentExercises(userID uint) ([]RecentExercise, error) {
	records, err := practice.FindRecentCompletions(userID, 5)
	if err != nil {
		return nil, err
	}

	recent := make([]RecentExercise, 0, len(records))
	for _, r := range records {
		recent = append(recent, RecentExercise{
			Name:     r.ExerciseName,
			Type:     r.ExerciseType,
			Duration: r.DurationSeconds / 60,
			// 完成事实不带单次得分，展示用占位分
			Score:     85,
			Completed: r.CompletedAt.Format("2006-01-02"),
		})
	}
	return recent, nil
}

// weeklyAverageScore 计算本周每日进度的平均得分。
func weeklyAverageScore(userID uint, weekStart, weekEnd time.Time) (float64, error) {
	progress, err := practice.FindProgressInRange(userID, weekStart, weekEnd)
	if err != nil {
		return 0, err
	}
	if len(progress) == 0 {
		return 0, nil
	}

	sum := 0.0
	for _, p := range progress {
		sum += p.AverageScore
	}
	return round2(sum / float64(len(progress))), nil
}

// countByKind 把完成记录按大类分成身体练习和言语练习两组计数。
func countByKind(records []practice.CompletedExercise) (body, speech int) {
	for _, r := range records {
		switch strings.ToLower(r.ExerciseType) {
		case "body", "jaw", "facial":
			body++
		default:
			speech++
		}
	}
	return body, speech
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
