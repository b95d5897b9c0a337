package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/board_service/config"
	"github.com/Xushengqwer/board_service/constant"
	"github.com/Xushengqwer/board_service/dependencies"
	"github.com/Xushengqwer/board_service/guard"
	"github.com/Xushengqwer/board_service/models/dto"
	"github.com/Xushengqwer/board_service/models/entities"
	"github.com/Xushengqwer/board_service/models/events"
	"github.com/Xushengqwer/board_service/models/vo"
	"github.com/Xushengqwer/board_service/mq/producer"
	"github.com/Xushengqwer/board_service/myErrors"
	"github.com/Xushengqwer/board_service/repo/mysql"
	"github.com/Xushengqwer/board_service/repo/redis"
)

// PostService 定义了处理帖子核心业务逻辑的接口。
type PostService interface {
	// CreatePost 处理用户发布新帖子的业务流程。
	// - 先将附件内容上传到对象存储，再在同一事务中写入帖子与附件元数据。
	// - 成功创建后，异步发送 Kafka 帖子创建事件。
	// - 返回完整的帖子详情 VO（浏览量为 0，创建不算一次阅读）。
	CreatePost(ctx context.Context, req *dto.CreatePostRequest, files []*multipart.FileHeader) (*vo.PostDetailVO, error)

	// GetPostDetail 获取单个帖子的详细信息。
	// - 每次成功读取原子性地将浏览量加一，返回的 VO 携带自增后的值。
	// - 排行榜分数异步加分，失败不影响本次读取。
	GetPostDetail(ctx context.Context, postID uint64) (*vo.PostDetailVO, error)

	// UpdatePost 全量修改帖子（标题/正文/作者，必要时替换附件与口令）。
	// - 口令闸门开启时先做访问判定，判定失败不产生任何可观察的修改。
	// - 未携带新附件文件时，现有附件保持不动；携带时整体替换。
	// - 口令字段留空保留原口令，非空整体替换。
	UpdatePost(ctx context.Context, postID uint64, req *dto.UpdatePostRequest, files []*multipart.FileHeader) (*vo.PostDetailVO, error)

	// DeletePost 删除帖子及其全部附件。
	// - 口令闸门开启时先做访问判定。
	// - 数据库内帖子与附件记录在同一事务中删除，对象存储清理异步执行。
	DeletePost(ctx context.Context, postID uint64, req *dto.DeletePostRequest) error

	// VerifySecret 无副作用地预校验口令，供编辑表单提交前探测。
	// - 帖子不存在与口令不匹配统一返回未授权，不泄露帖子是否存在。
	VerifySecret(ctx context.Context, postID uint64, req *dto.VerifySecretRequest) (*vo.VerifySecretVO, error)
}

// postService 是 PostService 接口的具体实现。
type postService struct {
	db             *gorm.DB                        // GORM 数据库实例，主要用于事务管理
	postRepo       mysql.PostRepository            // 帖子的 MySQL 操作
	attachmentRepo mysql.AttachmentRepository      // 附件元数据的 MySQL 操作
	cosClient      dependencies.COSClientInterface // 附件对象存储，可为 nil（无对象存储的部署）
	rankRepo       redis.PostRankRepository        // 排行榜 Redis 操作，可为 nil
	kafkaSvc       *producer.KafkaProducer         // Kafka 生产者，可为 nil
	logger         *core.ZapLogger
	policy         config.BoardPolicyConfig // 内容长度等策略配置
	gate           guard.Policy             // 口令闸门决策逻辑
}

// NewPostService 是 postService 的构造函数，通过依赖注入初始化服务实例。
// - cosClient / rankRepo / kafkaSvc 允许为 nil，对应的旁路能力自动退化为无操作。
func NewPostService(
	db *gorm.DB,
	postRepo mysql.PostRepository,
	attachmentRepo mysql.AttachmentRepository,
	cosClient dependencies.COSClientInterface,
	rankRepo redis.PostRankRepository,
	kafkaSvc *producer.KafkaProducer,
	policy config.BoardPolicyConfig,
	logger *core.ZapLogger,
) PostService {
	return &postService{
		db:             db,
		postRepo:       postRepo,
		attachmentRepo: attachmentRepo,
		cosClient:      cosClient,
		rankRepo:       rankRepo,
		kafkaSvc:       kafkaSvc,
		logger:         logger,
		policy:         policy,
		gate: guard.Policy{
			Enabled:     policy.SecretEnabled,
			HideMissing: policy.HideMissing,
		},
	}
}

// validatePostFields 按策略配置校验帖子三个必填字段，聚合所有违规项。
// 长度按字符（rune）计，与数据库列的 utf8 语义一致。
func (s *postService) validatePostFields(title, content, author string) error {
	vErr := &myErrors.ValidationError{}

	if strings.TrimSpace(title) == "" {
		vErr.Add("title", "标题不能为空")
	} else if utf8.RuneCountInString(title) > s.policy.GetTitleMaxLen() {
		vErr.Add("title", fmt.Sprintf("标题长度不能超过 %d 个字符", s.policy.GetTitleMaxLen()))
	}

	if strings.TrimSpace(content) == "" {
		vErr.Add("content", "正文不能为空")
	} else if utf8.RuneCountInString(content) > s.policy.GetContentMaxLen() {
		vErr.Add("content", fmt.Sprintf("正文长度不能超过 %d 个字符", s.policy.GetContentMaxLen()))
	}

	if strings.TrimSpace(author) == "" {
		vErr.Add("author", "作者名不能为空")
	} else if utf8.RuneCountInString(author) > s.policy.GetAuthorMaxLen() {
		vErr.Add("author", fmt.Sprintf("作者名长度不能超过 %d 个字符", s.policy.GetAuthorMaxLen()))
	}

	if vErr.HasErrors() {
		return vErr
	}
	return nil
}

// authorizeAccess 在修改/删除前执行口令闸门判定。
// - 闸门关闭时直接放行（包括帖子存在性检查交由后续操作）。
// - 帖子缺失时按 HideMissing 决定返回 NotFound 还是统一的 Unauthorized。
func (s *postService) authorizeAccess(ctx context.Context, postID uint64, suppliedSecret string) error {
	if !s.gate.Enabled {
		return nil
	}

	storedSecret, err := s.postRepo.GetPostSecret(ctx, postID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			if s.gate.HideMissing {
				return myErrors.ErrUnauthorized
			}
			return commonerrors.ErrRepoNotFound
		}
		return fmt.Errorf("读取帖子口令失败: %w", err)
	}

	if !s.gate.Authorize(storedSecret, suppliedSecret) {
		return myErrors.ErrUnauthorized
	}
	return nil
}

// generateAttachmentObjectKey 为附件生成唯一的 COS 对象键。
// 规则：boards/attachments/YYYYMMDD/uuid.ext，存储名与原始文件名完全解耦。
func (s *postService) generateAttachmentObjectKey(storedName string) string {
	datePrefix := time.Now().Format("20060102")
	return fmt.Sprintf("%s%s/%s", constant.COSObjectKeyPrefixAttachments, datePrefix, storedName)
}

// uploadAttachments 将一组 multipart 文件上传到对象存储，返回待入库的附件实体。
// 任何一个文件失败即中止并返回错误，已上传的对象由调用方决定是否清理。
func (s *postService) uploadAttachments(ctx context.Context, files []*multipart.FileHeader) ([]*entities.Attachment, error) {
	attachments := make([]*entities.Attachment, 0, len(files))

	for i, fileHeader := range files {
		storedName := uuid.NewString() + strings.ToLower(filepath.Ext(fileHeader.Filename))
		objectKey := s.generateAttachmentObjectKey(storedName)

		contentType := fileHeader.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
			s.logger.Warn("附件未提供内容类型，使用默认值",
				zap.String("filename", fileHeader.Filename),
				zap.String("defaultContentType", contentType))
		}

		var fileURL string
		if s.cosClient != nil {
			file, err := fileHeader.Open()
			if err != nil {
				s.logger.Error("打开附件文件以上传失败",
					zap.String("filename", fileHeader.Filename), zap.Error(err))
				return nil, fmt.Errorf("打开附件文件 %s 失败: %w", fileHeader.Filename, err)
			}
			fileURL, err = s.cosClient.UploadFile(ctx, objectKey, file, fileHeader.Size, contentType)
			file.Close()
			if err != nil {
				s.logger.Error("上传附件到 COS 失败",
					zap.String("filename", fileHeader.Filename),
					zap.String("objectKey", objectKey), zap.Error(err))
				return nil, myErrors.WrapBackend(fmt.Errorf("上传附件 %s 失败: %w", fileHeader.Filename, err))
			}
		} else {
			// 无对象存储的部署只记录元数据，内容不出本机。
			s.logger.Warn("未配置对象存储，附件仅保存元数据", zap.String("filename", fileHeader.Filename))
		}

		attachments = append(attachments, &entities.Attachment{
			OriginalName: fileHeader.Filename,
			StoredName:   storedName,
			ObjectKey:    objectKey,
			FileURL:      fileURL,
			MediaType:    contentType,
			ByteSize:     fileHeader.Size,
			DisplayOrder: i,
		})
	}
	return attachments, nil
}

// cleanupObjects 异步删除一批 COS 对象，用于事务失败回滚或附件替换后的善后。
// 清理失败只记录日志，孤立对象不影响数据一致性。
func (s *postService) cleanupObjects(attachments []*entities.Attachment, reason string) {
	if s.cosClient == nil || len(attachments) == 0 {
		return
	}
	go func() {
		bgCtx := context.Background()
		for _, att := range attachments {
			if att.ObjectKey == "" {
				continue
			}
			if err := s.cosClient.DeleteObject(bgCtx, att.ObjectKey); err != nil {
				s.logger.Error("清理 COS 附件对象失败",
					zap.String("objectKey", att.ObjectKey),
					zap.String("reason", reason),
					zap.Error(err))
			}
		}
	}()
}

// CreatePost 处理用户创建新帖子的请求，包括附件上传和数据库写入。
func (s *postService) CreatePost(ctx context.Context, req *dto.CreatePostRequest, files []*multipart.FileHeader) (*vo.PostDetailVO, error) {
	// 1. 策略校验：聚合报告所有违规字段。
	if err := s.validatePostFields(req.Title, req.Content, req.Author); err != nil {
		return nil, err
	}

	// 2. 先上传附件内容。数据库事务失败时这些对象会被异步清理。
	uploaded, err := s.uploadAttachments(ctx, files)
	if err != nil {
		return nil, err
	}

	// 3. 在事务中写入帖子与附件元数据。
	post := &entities.Post{
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
		Secret:  req.Secret,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if repoErr := s.postRepo.CreatePost(ctx, tx, post); repoErr != nil {
			return fmt.Errorf("创建帖子失败: %w", repoErr)
		}
		for _, att := range uploaded {
			att.PostID = post.ID
		}
		if repoErr := s.attachmentRepo.BatchCreateAttachments(ctx, tx, uploaded); repoErr != nil {
			return fmt.Errorf("创建帖子附件元数据失败: %w", repoErr)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("创建帖子事务失败", zap.Error(err))
		s.cleanupObjects(uploaded, "create_tx_failed")
		return nil, err
	}

	// 4. 异步发送帖子创建事件。
	s.publishEvent(func(bgCtx context.Context) error {
		return s.kafkaSvc.SendPostCreatedEvent(bgCtx, events.PostEventData{
			PostID:          post.ID,
			Title:           post.Title,
			Author:          post.Author,
			AttachmentCount: len(uploaded),
		})
	}, post.ID, "post_created")

	// 5. 构建并返回详情 VO。
	for _, att := range uploaded {
		post.Attachments = append(post.Attachments, *att)
	}
	return vo.NewPostDetailVOFromEntity(post), nil
}

// GetPostDetail 实现“读取即计数”的详情获取。
func (s *postService) GetPostDetail(ctx context.Context, postID uint64) (*vo.PostDetailVO, error) {
	post, err := s.postRepo.IncrementViewAndGet(ctx, postID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, fmt.Errorf("获取帖子详情失败: %w", err)
	}

	// 排行榜加分是派生数据维护，异步执行、失败不影响读取。
	if s.rankRepo != nil {
		go func(id uint64) {
			bgCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if rankErr := s.rankRepo.IncrementRank(bgCtx, id); rankErr != nil {
				s.logger.Warn("异步更新帖子排行榜分数失败", zap.Error(rankErr), zap.Uint64("postID", id))
			}
		}(postID)
	}

	return vo.NewPostDetailVOFromEntity(post), nil
}

// UpdatePost 实现帖子的全量修改。
func (s *postService) UpdatePost(ctx context.Context, postID uint64, req *dto.UpdatePostRequest, files []*multipart.FileHeader) (*vo.PostDetailVO, error) {
	// 1. 口令闸门判定，失败时不做任何修改。
	if err := s.authorizeAccess(ctx, postID, req.AccessSecret); err != nil {
		return nil, err
	}

	// 2. 策略校验。
	if err := s.validatePostFields(req.Title, req.Content, req.Author); err != nil {
		return nil, err
	}

	// 3. 读取现状：口令合并需要原口令，附件替换需要旧附件清单。
	current, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, fmt.Errorf("读取帖子失败: %w", err)
	}
	// 4. 附件整体替换：仅当本次携带了新文件。
	replaceAttachments := len(files) > 0
	var uploaded []*entities.Attachment
	if replaceAttachments {
		uploaded, err = s.uploadAttachments(ctx, files)
		if err != nil {
			return nil, err
		}
	}

	updated := &entities.Post{
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
		Secret:  s.gate.MergeSecret(current.Secret, req.Secret),
	}
	updated.ID = postID

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if repoErr := s.postRepo.UpdatePost(ctx, tx, updated); repoErr != nil {
			return repoErr
		}
		if replaceAttachments {
			if repoErr := s.attachmentRepo.DeleteAttachmentsByPostID(ctx, tx, postID); repoErr != nil {
				return fmt.Errorf("删除旧附件元数据失败: %w", repoErr)
			}
			for _, att := range uploaded {
				att.PostID = postID
			}
			if repoErr := s.attachmentRepo.BatchCreateAttachments(ctx, tx, uploaded); repoErr != nil {
				return fmt.Errorf("写入新附件元数据失败: %w", repoErr)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("修改帖子事务失败", zap.Error(err), zap.Uint64("postID", postID))
		s.cleanupObjects(uploaded, "update_tx_failed")
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		return nil, err
	}

	// 事务提交后才清理被替换掉的旧对象。
	if replaceAttachments {
		oldAttachments := make([]*entities.Attachment, 0, len(current.Attachments))
		for i := range current.Attachments {
			oldAttachments = append(oldAttachments, &current.Attachments[i])
		}
		s.cleanupObjects(oldAttachments, "attachments_replaced")
	}

	s.publishEvent(func(bgCtx context.Context) error {
		count := len(current.Attachments)
		if replaceAttachments {
			count = len(uploaded)
		}
		return s.kafkaSvc.SendPostUpdatedEvent(bgCtx, events.PostEventData{
			PostID:          postID,
			Title:           req.Title,
			Author:          req.Author,
			AttachmentCount: count,
		})
	}, postID, "post_updated")

	// 返回修改后的详情（重新读取，拿到刷新后的 updated_at 与附件）。
	final, err := s.postRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("读取修改后的帖子失败: %w", err)
	}
	return vo.NewPostDetailVOFromEntity(final), nil
}

// DeletePost 实现帖子及其附件的删除。
func (s *postService) DeletePost(ctx context.Context, postID uint64, req *dto.DeletePostRequest) error {
	// 1. 口令闸门判定。
	suppliedSecret := ""
	if req != nil {
		suppliedSecret = req.AccessSecret
	}
	if err := s.authorizeAccess(ctx, postID, suppliedSecret); err != nil {
		return err
	}

	// 2. 先取附件清单，留待事务提交后清理对象存储。
	attachments, err := s.attachmentRepo.GetAttachmentsByPostID(ctx, postID)
	if err != nil {
		return fmt.Errorf("读取帖子附件清单失败: %w", err)
	}

	// 3. 事务内删除帖子与附件记录。
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if repoErr := s.attachmentRepo.DeleteAttachmentsByPostID(ctx, tx, postID); repoErr != nil {
			return fmt.Errorf("删除附件元数据失败: %w", repoErr)
		}
		return s.postRepo.DeletePost(ctx, tx, postID)
	})
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return commonerrors.ErrRepoNotFound
		}
		s.logger.Error("删除帖子事务失败", zap.Error(err), zap.Uint64("postID", postID))
		return err
	}

	// 4. 异步清理对象存储与发送事件。
	attachmentPtrs := make([]*entities.Attachment, 0, len(attachments))
	for i := range attachments {
		attachmentPtrs = append(attachmentPtrs, &attachments[i])
	}
	s.cleanupObjects(attachmentPtrs, "post_deleted")

	s.publishEvent(func(bgCtx context.Context) error {
		return s.kafkaSvc.SendPostDeletedEvent(bgCtx, postID)
	}, postID, "post_deleted")

	return nil
}

// VerifySecret 实现口令的无副作用预校验。
func (s *postService) VerifySecret(ctx context.Context, postID uint64, req *dto.VerifySecretRequest) (*vo.VerifySecretVO, error) {
	if !s.gate.Enabled {
		return &vo.VerifySecretVO{Authorized: true}, nil
	}

	storedSecret, err := s.postRepo.GetPostSecret(ctx, postID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			// 预校验一律不泄露帖子是否存在。
			return &vo.VerifySecretVO{Authorized: false}, nil
		}
		return nil, fmt.Errorf("读取帖子口令失败: %w", err)
	}

	supplied := ""
	if req != nil {
		supplied = req.Secret
	}
	return &vo.VerifySecretVO{Authorized: s.gate.Authorize(storedSecret, supplied)}, nil
}

// publishEvent 在后台 goroutine 中发送 Kafka 事件，未配置生产者时为无操作。
func (s *postService) publishEvent(send func(context.Context) error, postID uint64, eventName string) {
	if s.kafkaSvc == nil {
		return
	}
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := send(bgCtx); err != nil {
			s.logger.Error("发送帖子领域事件失败",
				zap.Error(err), zap.Uint64("postID", postID), zap.String("event", eventName))
		}
	}()
}
