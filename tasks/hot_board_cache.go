// File: tasks/hot_board_cache.go
package tasks

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/board_service/config"
	"github.com/Xushengqwer/board_service/constant"
	"github.com/Xushengqwer/board_service/repo/redis"
)

// HotBoardCacheTask 负责定时刷新 Redis 中的热门帖子榜单缓存。
// 先从总排行榜截取快照，再基于快照重建摘要 Hash，两步都失败安全：
// 单次刷新失败时旧缓存保持可用，下个周期重试。
type HotBoardCacheTask struct {
	taskCache redis.PostTaskCache
	cron      *cron.Cron
	logger    *core.ZapLogger
	hotCfg    config.HotBoardConfig
}

// NewHotBoardCacheTask 初始化并启动热榜缓存的定时任务。
func NewHotBoardCacheTask(taskCache redis.PostTaskCache, hotCfg config.HotBoardConfig, logger *core.ZapLogger) *HotBoardCacheTask {
	task := &HotBoardCacheTask{
		taskCache: taskCache,
		cron:      cron.New(),
		logger:    logger,
		hotCfg:    hotCfg,
	}
	task.startCronJob()
	return task
}

// startCronJob 配置并启动 cron 作业。
func (t *HotBoardCacheTask) startCronJob() {
	schedule := constant.HotBoardCacheCronSpec
	t.logger.Info("准备启动热榜缓存刷新定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		t.logger.Info("热榜缓存刷新任务开始执行...")
		startTime := time.Now()
		// 单次刷新设置超时，防止任务卡死占住下一个周期。
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		t.refreshHotBoard(ctx)

		t.logger.Info("热榜缓存刷新任务执行完毕", zap.Duration("duration", time.Since(startTime)))
	})
	if err != nil {
		t.logger.Fatal("添加热榜缓存刷新 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("热榜缓存刷新定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// refreshHotBoard 是定时任务执行的实际刷新逻辑：
// 1. 从总排行榜原子截取前 N 条，生成热榜快照 ZSet。
// 2. 基于快照回源 MySQL，重建帖子摘要 Hash。
func (t *HotBoardCacheTask) refreshHotBoard(ctx context.Context) {
	if err := t.taskCache.CreateHotSnapshot(ctx, t.hotCfg.GetTopN()); err != nil {
		// 快照失败时摘要重建会基于旧快照，数据只是滞后而不是错误。
		t.logger.Error("创建/更新热榜快照失败，摘要缓存将基于旧快照", zap.Error(err))
	}

	if err := t.taskCache.CacheHotPosts(ctx); err != nil {
		t.logger.Error("重建帖子摘要 Hash 缓存失败", zap.Error(err))
	}
}

// RunOnce 立即执行一次完整刷新，供启动预热与手工触发使用。
func (t *HotBoardCacheTask) RunOnce(ctx context.Context) {
	t.refreshHotBoard(ctx)
}

// Stop 优雅地停止 cron 调度器。
// 返回的 context 在所有正在执行的作业结束后完成，调用者可用它等待收尾。
func (t *HotBoardCacheTask) Stop() context.Context {
	t.logger.Info("正在停止热榜缓存刷新定时任务...")
	stopCtx := t.cron.Stop()
	t.logger.Info("热榜缓存刷新定时任务已停止调度。等待正在执行的任务完成...")
	return stopCtx
}
