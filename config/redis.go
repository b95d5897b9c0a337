package config

// RedisConfig Redis 连接配置。
// board_service 使用 Redis 存放帖子浏览量排行榜与热门帖子摘要缓存，
// 不作为浏览量的权威存储（权威计数在 MySQL，见 repo/mysql.PostRepository）。
type RedisConfig struct {
	Address  string `mapstructure:"address" json:"address" yaml:"address"`    // host:port
	Password string `mapstructure:"password" json:"password" yaml:"password"` // 为空表示无认证
	DB       int    `mapstructure:"db" json:"db" yaml:"db"`                   // 逻辑库编号
	PoolSize int    `mapstructure:"poolSize" json:"poolSize" yaml:"poolSize"` // 连接池大小，0 使用客户端默认值
}
