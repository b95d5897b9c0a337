package constant

// 服务标识常量，用于链路追踪与日志。
const (
	ServiceName    = "board_service"
	ServiceVersion = "1.0.0"
)

// 定时任务调度表达式 (cron V3 标准五段表达式)。
const (
	// HotBoardCacheCronSpec 热门帖子缓存刷新的调度表达式。
	// 每 5 分钟将总排行榜的 Top N 快照到热榜，并回填帖子摘要缓存。
	HotBoardCacheCronSpec = "*/5 * * * *"

	// HotBoardCacheSize 热榜快照保留的帖子数量。
	HotBoardCacheSize = 100
)

// COSObjectKeyPrefixAttachments 帖子附件在 COS 中的对象键前缀。
// 完整对象键形如: boards/attachments/20060102/{uuid}.ext
const COSObjectKeyPrefixAttachments = "boards/attachments/"
