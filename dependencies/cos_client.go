package dependencies

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Xushengqwer/go-common/core"
	"github.com/tencentyun/cos-go-sdk-v5"
	"go.uber.org/zap"

	"github.com/Xushengqwer/board_service/config"
)

// COSClientInterface 定义了附件对象存储客户端需要实现的方法。
// 附件的二进制内容只存放在 COS，数据库里只有元数据与访问 URL。
type COSClientInterface interface {
	GetClient() *cos.Client // 获取原始的 COS 客户端
	// UploadFile 从 io.Reader 上传附件内容，并返回其公开可访问的 URL。
	// 调用方负责生成合适的 objectKey。
	UploadFile(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (string, error)
	// DeleteObject 从 COS 删除一个附件对象。
	DeleteObject(ctx context.Context, objectKey string) error
}

type cosClient struct {
	client    *cos.Client
	publicURL *url.URL // 拼接附件公开访问 URL 的基础部分（标准桶域名或 CDN）
	logger    *core.ZapLogger
}

// InitCOS 初始化腾讯云 COS 客户端，作为附件的对象存储。
// BaseURL 允许用 CDN 或自定义域名替换标准桶域名；未配置时公有读桶直接用标准域名。
func InitCOS(cfg *config.COSConfig, logger *core.ZapLogger) (COSClientInterface, error) {
	if cfg == nil {
		return nil, fmt.Errorf("COS 配置不能为 nil")
	}
	if cfg.SecretID == "" || cfg.SecretKey == "" || cfg.BucketName == "" || cfg.AppID == "" || cfg.Region == "" {
		return nil, fmt.Errorf("COS 配置不完整，SecretID/SecretKey/BucketName/AppID/Region 均为必填")
	}

	bucketURL, err := url.Parse(fmt.Sprintf("https://%s-%s.cos.%s.myqcloud.com", cfg.BucketName, cfg.AppID, cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("解析 COS 存储桶 URL 失败: %w", err)
	}

	publicURL := bucketURL
	if cfg.BaseURL != "" {
		if publicURL, err = url.Parse(cfg.BaseURL); err != nil {
			return nil, fmt.Errorf("解析 COS 公共访问 BaseURL %q 失败: %w", cfg.BaseURL, err)
		}
	}

	client := cos.NewClient(&cos.BaseURL{BucketURL: bucketURL}, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  cfg.SecretID,
			SecretKey: cfg.SecretKey,
		},
	})

	logger.Info("COS 附件存储客户端初始化成功",
		zap.String("bucket", cfg.BucketName),
		zap.String("region", cfg.Region),
		zap.String("publicURLBase", publicURL.String()),
	)

	return &cosClient{
		client:    client,
		publicURL: publicURL,
		logger:    logger,
	}, nil
}

func (c *cosClient) GetClient() *cos.Client {
	return c.client
}

// buildPublicObjectURL 在公共访问基础 URL 上拼接对象键。
func (c *cosClient) buildPublicObjectURL(objectKey string) string {
	basePath := c.publicURL.Path
	if basePath != "/" && !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}

	full := *c.publicURL
	full.Path = basePath + strings.TrimPrefix(objectKey, "/")
	return full.String()
}

// UploadFile 从 io.Reader 上传附件内容，并返回其公开可访问的 URL。
func (c *cosClient) UploadFile(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (string, error) {
	opts := &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{
			ContentType:   contentType,
			ContentLength: size,
		},
	}

	resp, err := c.client.Object.Put(ctx, objectKey, reader, opts)
	if err != nil {
		c.logger.Error("COS 附件上传失败", zap.String("objectKey", objectKey), zap.Error(err))
		return "", fmt.Errorf("上传附件 %q 到 COS 失败: %w", objectKey, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("COS 附件上传返回非 200 状态码",
			zap.String("objectKey", objectKey),
			zap.Int("statusCode", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return "", fmt.Errorf("COS 附件上传失败，状态码 %d: %s", resp.StatusCode, body)
	}

	publicURL := c.buildPublicObjectURL(objectKey)
	c.logger.Info("COS 附件上传成功",
		zap.String("objectKey", objectKey),
		zap.Int64("size", size),
		zap.String("url", publicURL))
	return publicURL, nil
}

// DeleteObject 从 COS 删除一个附件对象。
func (c *cosClient) DeleteObject(ctx context.Context, objectKey string) error {
	resp, err := c.client.Object.Delete(ctx, objectKey)
	if err != nil {
		c.logger.Error("COS 附件删除失败", zap.String("objectKey", objectKey), zap.Error(err))
		return fmt.Errorf("从 COS 删除附件 %q 失败: %w", objectKey, err)
	}
	defer resp.Body.Close()

	// 204 是标准成功码，部分网关也可能回 200。
	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("COS 附件删除返回非成功状态码",
			zap.String("objectKey", objectKey),
			zap.Int("statusCode", resp.StatusCode),
			zap.ByteString("body", body))
		return fmt.Errorf("COS 附件删除失败，状态码 %d: %s", resp.StatusCode, body)
	}
	return nil
}
