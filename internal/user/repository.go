package user

// --- Redis 键名常量 ---

const (
	// KnownUsersKey 是一个 Redis Set 的键，缓存了所有已持久化用户的ID。
	// Handler在进入业务逻辑前用它做低成本的存在性检查。
	KnownUsersKey = "user:known"

	// PointsRankingKey 是一个 Redis Sorted Set 的键，用于存储用户的积分排名。
	// Score: 用户的TotalPoints
	// Member: 用户ID的十进制字符串
	PointsRankingKey = "user:points"
)
