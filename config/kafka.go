package config

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers" json:"brokers" yaml:"brokers"`
	Topics  Topics   `mapstructure:"topics" json:"topics" yaml:"topics"`
}

// Topics board_service 对外广播的领域事件主题。
// 下游（例如搜索索引、内容归档）按需订阅，本服务只做生产者。
type Topics struct {
	PostCreated string `mapstructure:"postCreated" yaml:"postCreated"` // 帖子创建主题
	PostUpdated string `mapstructure:"postUpdated" yaml:"postUpdated"` // 帖子修改主题
	PostDeleted string `mapstructure:"postDeleted" yaml:"postDeleted"` // 帖子删除主题
}
