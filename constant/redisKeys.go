package constant

// Redis Key 相关常量 (导出)
const (
	// --- 固定 Key 名称 (全局使用的 Key) ---

	// PostsRankKey 是全局帖子浏览量排行榜的 Key 名称。
	// Sorted Set (ZSet)，成员是帖子 ID (postID)，分数是累计浏览次数。
	// 每次详情页读取都会异步 ZINCRBY 该榜单，作为热榜的数据源。
	// Redis 类型: Sorted Set
	// 示例成员与分数: Member="123", Score=58; Member="456", Score=102
	PostsRankKey = "board_post_rank"

	// HotPostsRankKey 是热门帖子榜单的 Key 名称。
	// 较小的 Sorted Set，由定时任务从 PostsRankKey 截取 Top N 生成。
	// Redis 类型: Sorted Set
	HotPostsRankKey = "board_hot_post_rank"

	// PostsHashKey 是热门帖子摘要缓存的 Hash Key 名称。
	// Field 是帖子 ID，Value 是 JSON 序列化后的帖子摘要。
	// 由定时任务基于热榜快照整体刷新 (临时 Key + RENAME)。
	// Redis 类型: Hash
	PostsHashKey = "board_posts"
)
