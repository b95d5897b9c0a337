package config

import "github.com/Xushengqwer/board_service/constant"

// BoardPolicyConfig 是帖子内容与访问策略的配置。
// - 字段长度上限与分页默认值的零值会回退到 constant 包中的策略常量，
//   配置文件只在需要偏离默认策略时填写。
// - SecretEnabled 为 true 时启用口令闸门：修改/删除帖子必须携带与
//   存储口令一致的口令（无用户体系的轻量授权）。
type BoardPolicyConfig struct {
	// SecretEnabled 是否启用帖子口令闸门。
	SecretEnabled bool `mapstructure:"secretEnabled" json:"secretEnabled" yaml:"secretEnabled"`

	// HideMissing 口令闸门开启时，对不存在的帖子执行修改/删除是否
	// 与口令不匹配返回同一种 Unauthorized 结果（隐藏帖子是否存在）。
	// 默认 false：缺失返回 NotFound，口令错误返回 Unauthorized。
	HideMissing bool `mapstructure:"hideMissing" json:"hideMissing" yaml:"hideMissing"`

	// TitleMaxLen / ContentMaxLen / AuthorMaxLen 字段长度上限；0 表示使用默认策略。
	TitleMaxLen   int `mapstructure:"titleMaxLen" json:"titleMaxLen" yaml:"titleMaxLen"`
	ContentMaxLen int `mapstructure:"contentMaxLen" json:"contentMaxLen" yaml:"contentMaxLen"`
	AuthorMaxLen  int `mapstructure:"authorMaxLen" json:"authorMaxLen" yaml:"authorMaxLen"`

	// DefaultPageSize / MaxPageSize 分页默认值与上限；0 表示使用默认策略。
	DefaultPageSize int `mapstructure:"defaultPageSize" json:"defaultPageSize" yaml:"defaultPageSize"`
	MaxPageSize     int `mapstructure:"maxPageSize" json:"maxPageSize" yaml:"maxPageSize"`
}

// GetTitleMaxLen 返回标题长度上限（带默认值回退）。
func (c *BoardPolicyConfig) GetTitleMaxLen() int {
	if c.TitleMaxLen > 0 {
		return c.TitleMaxLen
	}
	return constant.TitleMaxLen
}

// GetContentMaxLen 返回正文长度上限（带默认值回退）。
func (c *BoardPolicyConfig) GetContentMaxLen() int {
	if c.ContentMaxLen > 0 {
		return c.ContentMaxLen
	}
	return constant.ContentMaxLen
}

// GetAuthorMaxLen 返回作者名长度上限（带默认值回退）。
func (c *BoardPolicyConfig) GetAuthorMaxLen() int {
	if c.AuthorMaxLen > 0 {
		return c.AuthorMaxLen
	}
	return constant.AuthorMaxLen
}

// GetDefaultPageSize 返回默认每页数量（带默认值回退）。
func (c *BoardPolicyConfig) GetDefaultPageSize() int {
	if c.DefaultPageSize > 0 {
		return c.DefaultPageSize
	}
	return constant.DefaultPageSize
}

// GetMaxPageSize 返回每页数量上限（带默认值回退）。
func (c *BoardPolicyConfig) GetMaxPageSize() int {
	if c.MaxPageSize > 0 {
		return c.MaxPageSize
	}
	return constant.MaxPageSize
}

// HotBoardConfig 是热门帖子缓存任务的配置。
type HotBoardConfig struct {
	// TopN 热榜快照保留的帖子数量；0 表示使用 constant.HotBoardCacheSize。
	TopN int `mapstructure:"topN" json:"topN" yaml:"topN"`

	// RefreshBatchSize 回填摘要缓存时，单次从 MySQL 批量拉取的帖子数量。
	// 拆小批次是为了控制单条 IN 查询与单次 HSET 的规模；0 表示不拆分。
	RefreshBatchSize int `mapstructure:"refreshBatchSize" json:"refreshBatchSize" yaml:"refreshBatchSize"`
}

// GetTopN 返回热榜快照大小（带默认值回退）。
func (c *HotBoardConfig) GetTopN() int {
	if c.TopN > 0 {
		return c.TopN
	}
	return constant.HotBoardCacheSize
}
