package analytics

// WeeklyData 是最近一周的练习汇总。
type WeeklyData struct {
	TotalExercises int            `json:"totalExercises"`
	TotalMinutes   int            `json:"totalMinutes"`
	AveragePerDay  float64        `json:"averagePerDay"`
	TypeBreakdown  map[string]int `json:"typeBreakdown"`
}

// MonthlyData 是最近一个月的练习汇总，趋势与上一个周期对比。
type MonthlyData struct {
	TotalExercises int     `json:"totalExercises"`
	TotalMinutes   int     `json:"totalMinutes"`
	AveragePerWeek float64 `json:"averagePerWeek"`
	Trend          string  `json:"trend"`
}

// TypeDistributionData 是按练习大类的全量分布。
type TypeDistributionData struct {
	Distribution  map[string]int `json:"distribution"`
	MostPracticed string         `json:"mostPracticed"`
}

// DifficultyDistributionData 是按难度档位的全量分布。
type DifficultyDistributionData struct {
	Distribution map[string]int `json:"distribution"`
	CurrentLevel string         `json:"currentLevel"`
}

// PerformanceTrendData 是基于每日进度汇总的成绩走势。
type PerformanceTrendData struct {
	AverageScore float64 `json:"averageScore"`
	Improvement  float64 `json:"improvement"`
	Trend        string  `json:"trend"`
}

// Report 是一次分析请求的完整输出。
type Report struct {
	WeeklyData         WeeklyData                 `json:"weeklyData"`
	MonthlyData        MonthlyData                `json:"monthlyData"`
	ExerciseTypes      TypeDistributionData       `json:"exerciseTypes"`
	DifficultyProgress DifficultyDistributionData `json:"difficultyProgress"`
	PerformanceTrends  PerformanceTrendData       `json:"performanceTrends"`
}

// FluencySample 是流畅度趋势分析的输入样本。
// 缺失的得分在聚合时按0处理。
type FluencySample struct {
	Pronunciation   *int
	Rhythm          *int
	Pace            *int
	Expression      *int
	Overall         *int
	StutterDetected bool
	Emotion         string
}

// FluencyAverages 是各维度的均值（保留两位小数）。
type FluencyAverages struct {
	Pronunciation float64 `json:"pronunciation"`
	Rhythm        float64 `json:"rhythm"`
	Pace          float64 `json:"pace"`
	Expression    float64 `json:"expression"`
	Overall       float64 `json:"overall"`
}

// FluencyLabels 是各维度的评价档位。
type FluencyLabels struct {
	Pronunciation string `json:"pronunciation"`
	Rhythm        string `json:"rhythm"`
	Pace          string `json:"pace"`
	Expression    string `json:"expression"`
}

// FluencyIssues 是会话中检测到的问题统计。
type FluencyIssues struct {
	StutterDetected int `json:"stutterDetected"`
	NervousSessions int `json:"nervousSessions"`
}

// FluencyTrendsData 是流畅度趋势分析的完整输出。
type FluencyTrendsData struct {
	Averages        FluencyAverages `json:"averages"`
	Labels          FluencyLabels   `json:"trends"`
	Issues          FluencyIssues   `json:"issues"`
	Recommendations []string        `json:"recommendations"`
}
