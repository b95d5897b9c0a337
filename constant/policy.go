package constant

// 帖子字段的长度上限，来源于业务策略而非接口定义。
// 校验逻辑统一从这里取值，配置文件可以覆盖 (见 config.BoardPolicyConfig)。
const (
	// TitleMaxLen 标题最大长度（字符数）。
	TitleMaxLen = 100

	// ContentMaxLen 正文最大长度（字符数）。
	ContentMaxLen = 5000

	// AuthorMaxLen 作者名最大长度（字符数）。
	AuthorMaxLen = 50

	// SecretMaxLen 帖子口令的最大长度。口令是随帖存储的访问凭证，
	// 明文保存、精确匹配，不施加任何复杂度策略。
	SecretMaxLen = 255
)

// 分页相关的默认值。
const (
	// DefaultPageSize 列表查询未指定每页数量时的默认值。
	DefaultPageSize = 10

	// MaxPageSize 列表查询允许的每页数量上限，超出则收敛到该值。
	MaxPageSize = 100

	// PageBlockSize 页码导航条一屏展示的页码数量（块式分页窗口）。
	PageBlockSize = 10
)
