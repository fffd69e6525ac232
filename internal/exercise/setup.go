package exercise

import (
	"fmt"

	"github.com/SlpAus/speech-therapy-backend/internal/platform/database"
	"github.com/SlpAus/speech-therapy-backend/internal/user"
)

// migrateDB 负责自动迁移数据库表结构
func migrateDB() error {
	if err := database.DB.AutoMigrate(&Exercise{}); err != nil {
		return fmt.Errorf("无法迁移exercise表: %w", err)
	}
	fmt.Println("Exercise数据库表迁移成功。")
	return nil
}

// seedCatalog 为演示用户播种练习目录。
// 只在表为空时执行，重复启动是幂等的。
func seedCatalog() error {
	var count int64
	if err := database.DB.Model(&Exercise{}).Count(&count).Error; err != nil {
		return fmt.Errorf("无法统计练习数量: %w", err)
	}
	if count > 0 {
		fmt.Printf("练习目录已存在 (%d 条)，无需播种。\n", count)
		return nil
	}

	demo, err := user.GetUserByEmail(user.DemoUserEmail)
	if err != nil {
		return err
	}
	if demo == nil {
		return fmt.Errorf("播种练习目录前必须先播种演示用户")
	}

	catalog := defaultCatalog(demo.ID)
	if err := database.DB.Create(&catalog).Error; err != nil {
		return fmt.Errorf("无法播种练习目录: %w", err)
	}
	fmt.Printf("成功播种 %d 条练习。\n", len(catalog))
	return nil
}

// defaultCatalog 返回内置的练习目录，覆盖两个大类和三个难度档位。
func defaultCatalog(userID uint) []Exercise {
	build := func(name, category, exerciseType string, duration int, instructions string) Exercise {
		return Exercise{
			UserID:       userID,
			Name:         name,
			Category:     category,
			Type:         exerciseType,
			Duration:     duration,
			Instructions: instructions,
		}
	}

	return []Exercise{
		// --- 身体练习（呼吸与放松） ---
		build("Deep Breathing Exercise", CategoryBeginner, TypeBody, 5,
			"1. Sit comfortably with your back straight\n2. Place one hand on your chest and one on your stomach\n3. Breathe in slowly through your nose for 4 counts\n4. Hold for 2 counts\n5. Exhale slowly through your mouth for 6 counts\n6. Repeat 10 times"),
		build("4-7-8 Breathing", CategoryBeginner, TypeBody, 4,
			"1. Sit in a comfortable position\n2. Inhale through nose for 4 counts\n3. Hold breath for 7 counts\n4. Exhale through mouth for 8 counts\n5. Repeat 5 times"),
		build("Box Breathing", CategoryBeginner, TypeBody, 6,
			"1. Inhale for 4 counts\n2. Hold for 4 counts\n3. Exhale for 4 counts\n4. Hold empty for 4 counts\n5. Repeat 8 times"),
		build("Jaw Release Stretch", CategoryIntermediate, TypeBody, 5,
			"1. Open your mouth as wide as comfortable\n2. Hold for 5 seconds\n3. Slowly close and relax\n4. Move jaw gently side to side\n5. Repeat 8 times"),
		build("Facial Muscle Warmup", CategoryIntermediate, TypeBody, 6,
			"1. Raise your eyebrows and hold for 5 seconds\n2. Scrunch your face tight for 5 seconds\n3. Puff your cheeks and move the air side to side\n4. Repeat the cycle 6 times"),
		build("Full Body Tension Release", CategoryAdvanced, TypeBody, 8,
			"1. Start with a deep breath\n2. Tense every muscle group from toes to face for 8 seconds\n3. Release everything with a long exhale\n4. Notice the contrast\n5. Repeat 5 times"),

		// --- 言语练习（发音与流畅度） ---
		build("Vowel Sound Practice", CategoryBeginner, TypeSpeech, 5,
			"1. Take a deep breath\n2. Say each vowel sound clearly: A, E, I, O, U\n3. Hold each sound for 3 seconds\n4. Exaggerate your mouth movements\n5. Repeat the sequence 10 times"),
		build("Mirror Speaking", CategoryBeginner, TypeSpeech, 6,
			"1. Stand in front of a mirror\n2. Read a short paragraph aloud\n3. Watch your mouth movements closely\n4. Repeat difficult words slowly\n5. Practice for 6 minutes"),
		build("Slow Reading Aloud", CategoryBeginner, TypeSpeech, 8,
			"1. Choose a simple text\n2. Read each sentence at half your normal speed\n3. Pause at every comma and period\n4. Focus on finishing each word completely\n5. Practice for 8 minutes"),
		build("Tongue Twister Challenge", CategoryIntermediate, TypeSpeech, 6,
			"1. Start with 'Peter Piper picked a peck of pickled peppers'\n2. Say it slowly and clearly three times\n3. Gradually increase your speed\n4. Move to 'She sells seashells by the seashore'\n5. Practice for 6 minutes"),
		build("Paced Sentence Building", CategoryIntermediate, TypeSpeech, 7,
			"1. Say a three-word sentence with one breath\n2. Add two words and repeat\n3. Keep extending while keeping an even pace\n4. Restart when you rush or stumble\n5. Practice for 7 minutes"),
		build("Emotional Expression Reading", CategoryAdvanced, TypeSpeech, 10,
			"1. Pick a short story passage\n2. Read it once neutrally\n3. Read it again as if excited, then sad, then calm\n4. Exaggerate pitch and rhythm changes\n5. Practice for 10 minutes"),
		build("Impromptu Topic Talk", CategoryAdvanced, TypeSpeech, 10,
			"1. Pick a random everyday topic\n2. Speak about it for two minutes without stopping\n3. Keep a steady pace and breathe at phrase boundaries\n4. Record yourself and listen back\n5. Repeat with a new topic"),
		build("Conversation Roleplay", CategoryAdvanced, TypeSpeech, 12,
			"1. Imagine ordering at a restaurant\n2. Speak both sides of the conversation aloud\n3. Focus on natural rhythm and intonation\n4. Switch to a phone-call scenario\n5. Practice for 12 minutes"),
	}
}

// PrimeModule 是exercise模块的初始化总入口
func PrimeModule() error {
	if err := migrateDB(); err != nil {
		return err
	}
	if err := seedCatalog(); err != nil {
		return err
	}
	return nil
}
