package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/SlpAus/speech-therapy-backend/internal/practice"
)

// 本文件是纯计算的聚合引擎：不做任何I/O，空输入一律
// 产出零值或默认结构，调用方不需要处理错误。

// WeeklyStats 汇总[windowStart, windowEnd]闭区间内的完成事实。
func WeeklyStats(records []practice.CompletedExercise, windowStart, windowEnd time.Time) WeeklyData {
	totalSeconds := 0
	breakdown := make(map[string]int)
	for _, r := range records {
		totalSeconds += r.DurationSeconds
		breakdown[r.ExerciseType]++
	}

	return WeeklyData{
		TotalExercises: len(records),
		TotalMinutes:   totalSeconds / 60,
		AveragePerDay:  round2(float64(len(records)) / float64(windowDays(windowStart, windowEnd))),
		TypeBreakdown:  breakdown,
	}
}

// MonthlyStats 汇总当期完成事实，并与上一周期对比得出趋势。
func MonthlyStats(records []practice.CompletedExercise, windowStart, windowEnd time.Time, previousPeriod []practice.CompletedExercise) MonthlyData {
	totalSeconds := 0
	for _, r := range records {
		totalSeconds += r.DurationSeconds
	}

	// 周数 = 区间天数差/7 + 1，30天窗口得到5周
	weeks := (windowDays(windowStart, windowEnd)-1)/7 + 1

	return MonthlyData{
		TotalExercises: len(records),
		TotalMinutes:   totalSeconds / 60,
		AveragePerWeek: round2(float64(len(records)) / float64(weeks)),
		Trend:          PercentChange(len(records), len(previousPeriod)),
	}
}

// PercentChange 把两个周期的数量变化格式化成带符号的百分比。
// 上一周期为0时：当期有数据返回"+100%"，否则返回"0%"。
func PercentChange(current, previous int) string {
	if previous == 0 {
		if current > 0 {
			return "+100%"
		}
		return "0%"
	}

	change := float64(current-previous) / float64(previous) * 100
	sign := ""
	if change >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%d%%", sign, int64(math.Round(change)))
}

// TypeDistribution 统计全量完成事实的大类分布。
// 并列最多时取先出现的那一类；没有任何记录时返回"None"。
func TypeDistribution(all []practice.CompletedExercise) TypeDistributionData {
	distribution, mostPracticed := countByKey(all, func(r practice.CompletedExercise) string {
		return r.ExerciseType
	})
	if mostPracticed == "" {
		mostPracticed = "None"
	}
	return TypeDistributionData{Distribution: distribution, MostPracticed: mostPracticed}
}

// DifficultyDistribution 统计全量完成事实的难度分布。
// 没有任何记录时当前档位默认"Beginner"。
func DifficultyDistribution(all []practice.CompletedExercise) DifficultyDistributionData {
	distribution, currentLevel := countByKey(all, func(r practice.CompletedExercise) string {
		return r.DifficultyLevel
	})
	if currentLevel == "" {
		currentLevel = "Beginner"
	}
	return DifficultyDistributionData{Distribution: distribution, CurrentLevel: currentLevel}
}

// PerformanceTrend 基于每日进度汇总计算成绩走势。
// 入参契约：progress按日期从新到旧排列。
func PerformanceTrend(progress []practice.UserProgress) PerformanceTrendData {
	if len(progress) == 0 {
		return PerformanceTrendData{Trend: "No data available"}
	}

	sum := 0.0
	for _, p := range progress {
		sum += p.AverageScore
	}
	result := PerformanceTrendData{
		AverageScore: round2(sum / float64(len(progress))),
	}

	if len(progress) < 2 {
		result.Trend = "Insufficient data"
		return result
	}

	newest := progress[0]
	oldest := progress[len(progress)-1]
	improvement := newest.AverageScore - oldest.AverageScore
	result.Improvement = round2(improvement)
	switch {
	case improvement > 0:
		result.Trend = "Improving"
	case improvement < 0:
		result.Trend = "Declining"
	default:
		result.Trend = "Stable"
	}
	return result
}

// FluencyTrends 汇总流畅度样本：各维度均值、评价档位、
// 问题统计和按固定规则顺序生成的建议。
func FluencyTrends(samples []FluencySample) FluencyTrendsData {
	if len(samples) == 0 {
		return FluencyTrendsData{Recommendations: []string{}}
	}

	var pronunciation, rhythm, pace, expression, overall int
	stutterCount := 0
	nervousCount := 0
	for _, s := range samples {
		pronunciation += intOrZero(s.Pronunciation)
		rhythm += intOrZero(s.Rhythm)
		pace += intOrZero(s.Pace)
		expression += intOrZero(s.Expression)
		overall += intOrZero(s.Overall)
		if s.StutterDetected {
			stutterCount++
		}
		if s.Emotion == "nervous" {
			nervousCount++
		}
	}

	n := float64(len(samples))
	avgPronunciation := float64(pronunciation) / n
	avgRhythm := float64(rhythm) / n
	avgPace := float64(pace) / n
	avgExpression := float64(expression) / n

	result := FluencyTrendsData{
		Averages: FluencyAverages{
			Pronunciation: round2(avgPronunciation),
			Rhythm:        round2(avgRhythm),
			Pace:          round2(avgPace),
			Expression:    round2(avgExpression),
			Overall:       round2(float64(overall) / n),
		},
		Labels: FluencyLabels{
			Pronunciation: fluencyLabel(avgPronunciation),
			Rhythm:        fluencyLabel(avgRhythm),
			Pace:          fluencyLabel(avgPace),
			Expression:    fluencyLabel(avgExpression),
		},
		Issues: FluencyIssues{
			StutterDetected: stutterCount,
			NervousSessions: nervousCount,
		},
		Recommendations: []string{},
	}

	// 建议规则的顺序是固定的，前端按顺序展示
	if avgPronunciation < 75 {
		result.Recommendations = append(result.Recommendations, "Focus on pronunciation exercises")
	}
	if avgRhythm < 75 {
		result.Recommendations = append(result.Recommendations, "Practice rhythm and intonation")
	}
	if avgPace < 75 {
		result.Recommendations = append(result.Recommendations, "Work on speaking pace and flow")
	}
	if avgExpression < 75 {
		result.Recommendations = append(result.Recommendations, "Improve emotional expression in speech")
	}
	if stutterCount > 0 {
		result.Recommendations = append(result.Recommendations, "Consider stuttering-specific exercises")
	}
	if nervousCount > 2 {
		result.Recommendations = append(result.Recommendations, "Practice confidence-building exercises")
	}

	return result
}

// fluencyLabel 按均值分档，边界是严格大于。
func fluencyLabel(avg float64) string {
	switch {
	case avg > 85:
		return "excellent"
	case avg > 75:
		return "good"
	default:
		return "needs improvement"
	}
}

// countByKey 按key统计分布并返回出现次数最多的key。
// 并列时取最先出现的key；空输入返回空字符串。
func countByKey(all []practice.CompletedExercise, key func(practice.CompletedExercise) string) (map[string]int, string) {
	distribution := make(map[string]int)
	var order []string
	for _, r := range all {
		k := key(r)
		if _, seen := distribution[k]; !seen {
			order = append(order, k)
		}
		distribution[k]++
	}

	best := ""
	bestCount := 0
	for _, k := range order {
		if distribution[k] > bestCount {
			best = k
			bestCount = distribution[k]
		}
	}
	return distribution, best
}

// windowDays 返回闭区间的天数，至少为1。
func windowDays(start, end time.Time) int {
	days := int(practice.Midnight(end).Sub(practice.Midnight(start)).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
