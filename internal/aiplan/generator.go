package aiplan

import (
	"math/rand"
	"time"

	"github.com/SlpAus/speech-therapy-backend/internal/user"
)

// 生成的练习默认7天后过期
const exerciseLifetime = 7 * 24 * time.Hour

type exerciseTemplate struct {
	Title     string
	Content   string
	FocusArea string
}

// 按练习大类组织的生成模板。
// 没有真实模型接入时，生成即是在模板内随机挑选再按用户难度调参。
var templatesByType = map[string][]exerciseTemplate{
	"Speech": {
		{
			Title:     "Mirror Reading Session",
			Content:   "Read a short paragraph aloud in front of a mirror. Watch your mouth movements and keep your pace steady.",
			FocusArea: "articulation",
		},
		{
			Title:     "Tongue Twister Ladder",
			Content:   "Repeat a tongue twister three times, starting slowly and speeding up only while your pronunciation stays clean.",
			FocusArea: "pronunciation",
		},
		{
			Title:     "Paced Storytelling",
			Content:   "Tell a one-minute story about your day. Pause briefly at every comma and breathe at every full stop.",
			FocusArea: "pacing",
		},
		{
			Title:     "Expressive Reading",
			Content:   "Read a dialogue aloud and exaggerate the emotions of each character. Focus on intonation changes.",
			FocusArea: "expression",
		},
	},
	"Body": {
		{
			Title:     "Deep Breathing Cycle",
			Content:   "Breathe in through your nose for four counts, hold for four, and release through your mouth for six. Repeat ten times.",
			FocusArea: "breathing",
		},
		{
			Title:     "Jaw and Neck Release",
			Content:   "Gently massage your jaw muscles, then slowly roll your neck in both directions to release speaking tension.",
			FocusArea: "relaxation",
		},
		{
			Title:     "Posture Reset",
			Content:   "Stand against a wall with shoulders back for one minute, then practice speaking a few sentences from this position.",
			FocusArea: "posture",
		},
	},
}

// 每个难度档位对应的单次练习时长（分钟）
var durationByLevel = map[string]int{
	"Beginner":     5,
	"Intermediate": 10,
	"Advanced":     15,
}

// buildExercise 按模板和用户档位组装一条未落库的AI练习。
// 未知的练习类型回落到Speech模板。
func buildExercise(u *user.User, exerciseType string, now time.Time) AIExercise {
	templates, ok := templatesByType[exerciseType]
	if !ok {
		exerciseType = "Speech"
		templates = templatesByType[exerciseType]
	}
	template := templates[rand.Intn(len(templates))]

	level := u.DifficultyLevel
	duration, ok := durationByLevel[level]
	if !ok {
		level = "Beginner"
		duration = durationByLevel[level]
	}

	return AIExercise{
		UserID:          u.ID,
		ExerciseType:    exerciseType,
		Title:           template.Title,
		Content:         template.Content,
		DifficultyLevel: level,
		DurationMinutes: duration,
		FocusArea:       template.FocusArea,
		ExpiresAt:       now.Add(exerciseLifetime),
	}
}

// buildWeeklyPlan 组装一周7条练习，言语和身体练习交替出现。
func buildWeeklyPlan(u *user.User, now time.Time) []AIExercise {
	plan := make([]AIExercise, 0, 7)
	for i := 0; i < 7; i++ {
		exerciseType := "Speech"
		if i%2 == 1 {
			exerciseType = "Body"
		}
		ex := buildExercise(u, exerciseType, now)
		// 计划内的练习按天排开，各自在当天结束后再留一天缓冲
		ex.ExpiresAt = now.AddDate(0, 0, i+2)
		plan = append(plan, ex)
	}
	return plan
}
