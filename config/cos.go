package config

// COSConfig 腾讯云 COS 的连接配置，用于存放帖子附件的文件内容。
// 本服务只把附件字节托管给 COS，数据库中仅保留附件元数据。
type COSConfig struct {
	SecretID   string `mapstructure:"secretId" json:"secretId" yaml:"secretId"`
	SecretKey  string `mapstructure:"secretKey" json:"secretKey" yaml:"secretKey"`
	AppID      string `mapstructure:"appId" json:"appId" yaml:"appId"`
	BucketName string `mapstructure:"bucketName" json:"bucketName" yaml:"bucketName"`
	Region     string `mapstructure:"region" json:"region" yaml:"region"`

	// BaseURL 可选，配置 CDN 或自定义域名作为对象公开访问的基础 URL。
	// 为空时使用存储桶的标准访问域名。
	BaseURL string `mapstructure:"baseUrl" json:"baseUrl" yaml:"baseUrl"`
}
