package config

import "github.com/Xushengqwer/go-common/config"

// BoardConfig 聚合了 board_service 的全部配置。
// 由 core.LoadConfig 从 YAML 文件加载，环境变量可覆盖。
type BoardConfig struct {
	ZapConfig     config.ZapConfig     `mapstructure:"zapConfig" json:"zapConfig" yaml:"zapConfig"`
	GormLogConfig config.GormLogConfig `mapstructure:"gormLogConfig" json:"gormLogConfig" yaml:"gormLogConfig"`
	ServerConfig  config.ServerConfig  `mapstructure:"serverConfig" json:"serverConfig" yaml:"serverConfig"`
	TracerConfig  config.TracerConfig  `mapstructure:"tracerConfig" json:"tracerConfig" yaml:"tracerConfig"`
	BoardPolicy   BoardPolicyConfig    `mapstructure:"boardPolicy" json:"boardPolicy" yaml:"boardPolicy"`
	HotBoard      HotBoardConfig       `mapstructure:"hotBoard" json:"hotBoard" yaml:"hotBoard"`
	MySQLConfig   MySQLConfig          `mapstructure:"mysqlConfig" json:"mysqlConfig" yaml:"mysqlConfig"`
	RedisConfig   RedisConfig          `mapstructure:"redisConfig" json:"redisConfig" yaml:"redisConfig"`
	KafkaConfig   KafkaConfig          `mapstructure:"kafkaConfig" json:"kafkaConfig" yaml:"kafkaConfig"`
	COSConfig     COSConfig            `mapstructure:"attachmentsCosConfig" json:"attachmentsCosConfig" yaml:"attachmentsCosConfig"`
}
