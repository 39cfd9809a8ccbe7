package tasks

import (
	"context"
	"sync"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/config"
	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/repo/mysql"
	"github.com/Xushengqwer/community_service/repo/redis"
)

// ActivitySyncTask 负责把 Redis 中累积的社区当日发帖计数回写到 MySQL，
// 然后清零计数键开启新的统计周期。发帖热路径只写 Redis，
// communities.daily_posts 是给列表页用的周期性快照。
type ActivitySyncTask struct {
	activityRepo  redis.CommunityActivityRepository
	communityRepo mysql.CommunityRepository
	cfg           config.ActivitySyncConfig
	cron          *cron.Cron
	logger        *core.ZapLogger
}

// NewActivitySyncTask 初始化并启动活跃度同步的定时任务。
func NewActivitySyncTask(
	activityRepo redis.CommunityActivityRepository,
	communityRepo mysql.CommunityRepository,
	cfg config.ActivitySyncConfig,
	logger *core.ZapLogger,
) *ActivitySyncTask {
	cronV3 := cron.New()
	task := &ActivitySyncTask{
		activityRepo:  activityRepo,
		communityRepo: communityRepo,
		cfg:           cfg,
		cron:          cronV3,
		logger:        logger,
	}
	task.startCronJob()
	return task
}

// startCronJob 配置并启动 cron 作业。
func (t *ActivitySyncTask) startCronJob() {
	schedule := constant.ActivitySyncCronSpec
	t.logger.Info("准备启动社区活跃度同步定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		t.logger.Info("社区活跃度同步任务开始执行...")
		startTime := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		t.SyncDailyPosts(ctx)

		duration := time.Since(startTime)
		t.logger.Info("社区活跃度同步任务执行完毕", zap.Duration("duration", duration))
	})

	if err != nil {
		t.logger.Fatal("添加社区活跃度同步 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("社区活跃度同步定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// SyncDailyPosts 收割 Redis 计数并回写 MySQL。
// 计数按批次切分后由固定数量的 worker 并发回写；
// 回写失败的社区保留计数键，下个周期重试，不丢计数。
func (t *ActivitySyncTask) SyncDailyPosts(ctx context.Context) {
	counts, err := t.activityRepo.GetAllDailyCounts(ctx, t.cfg.ScanBatchSize)
	if err != nil {
		t.logger.Error("从 Redis 收割发帖计数失败，本次同步中止", zap.Error(err))
		return
	}
	if len(counts) == 0 {
		t.logger.Info("没有需要同步的发帖计数")
		return
	}

	batchSize := t.cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 50
	}
	workers := t.cfg.ConcurrencyLevel
	if workers <= 0 {
		workers = 2
	}

	type pair struct {
		communityID uint64
		count       int64
	}
	batches := make(chan []pair, workers)

	var mu sync.Mutex
	synced := make([]uint64, 0, len(counts))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for batch := range batches {
				for _, p := range batch {
					if err := t.communityRepo.SetDailyPosts(ctx, p.communityID, p.count); err != nil {
						t.logger.Error("回写社区当日发帖计数失败，保留计数待下次重试",
							zap.Error(err),
							zap.Uint64("communityID", p.communityID),
						)
						continue
					}
					mu.Lock()
					synced = append(synced, p.communityID)
					mu.Unlock()
				}
			}
		}()
	}

	batch := make([]pair, 0, batchSize)
	for communityID, count := range counts {
		batch = append(batch, pair{communityID: communityID, count: count})
		if len(batch) == batchSize {
			batches <- batch
			batch = make([]pair, 0, batchSize)
		}
	}
	if len(batch) > 0 {
		batches <- batch
	}
	close(batches)
	wg.Wait()

	if err := t.activityRepo.ResetDailyCounts(ctx, synced); err != nil {
		t.logger.Error("清零已同步的发帖计数失败", zap.Error(err))
	}

	t.logger.Info("社区活跃度同步统计",
		zap.Int("total", len(counts)),
		zap.Int("synced", len(synced)),
	)
}

// Stop 优雅地停止 cron 调度器。
func (t *ActivitySyncTask) Stop() context.Context {
	t.logger.Info("正在停止社区活跃度同步定时任务...")
	stopCtx := t.cron.Stop()
	t.logger.Info("社区活跃度同步定时任务已停止调度。等待正在执行的任务完成...")
	return stopCtx
}
