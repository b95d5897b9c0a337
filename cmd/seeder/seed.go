package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/Xushengqwer/go-common/core"
	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"github.com/Xushengqwer/board_service/models/dto"
	"github.com/Xushengqwer/board_service/service"
)

// Seed 通过服务层批量创建测试帖子。
// 走服务层而非直接写库，使口令、排行榜加分、领域事件等副作用与线上路径一致。
func Seed(ctx context.Context, postSvc service.PostService, logger *core.ZapLogger, numPosts int) {
	logger.Info("开始填充测试数据 (通过服务层)...", zap.Int("数量", numPosts))

	var wg sync.WaitGroup
	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for i := 0; i < numPosts; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			createReq := &dto.CreatePostRequest{
				Title:   gofakeit.Sentence(gofakeit.Number(3, 10)),
				Content: gofakeit.Paragraph(3, 5, 20, "\n\n"),
				Author:  gofakeit.Username(),
			}
			// 约五分之一的帖子带口令，便于演示口令闸门。
			if gofakeit.Number(1, 5) == 1 {
				createReq.Secret = gofakeit.Password(true, true, true, false, false, 12)
			}

			resp, err := postSvc.CreatePost(ctx, createReq, nil)
			if err != nil {
				logger.Error(fmt.Sprintf("创建帖子 %d/%d 失败", itemIndex+1, numPosts),
					zap.Error(err),
					zap.String("title", createReq.Title),
					zap.String("author", createReq.Author))
			} else {
				logger.Info(fmt.Sprintf("成功创建帖子 %d/%d", itemIndex+1, numPosts),
					zap.Uint64("post_id", resp.ID),
					zap.String("title", resp.Title))
			}
		}(i)
	}

	wg.Wait()
	logger.Info("测试数据填充完毕 (通过服务层)。")
}
