package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/dependencies"
	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/repo/mysql"
	"github.com/Xushengqwer/community_service/service"
)

// AIContentTask 每天在固定时刻为每个社区生成一条 AI 帖子草稿。
// 生成的帖子走 AI 创建路径进入待审核队列，不会直接对外可见。
// 单个社区的生成或落库失败只影响该社区，当天其余社区照常处理。
type AIContentTask struct {
	communityRepo mysql.CommunityRepository
	generator     dependencies.ContentGenerator
	postService   service.PostService
	cron          *cron.Cron
	logger        *core.ZapLogger
}

// NewAIContentTask 初始化并启动 AI 内容生成的定时任务。
func NewAIContentTask(
	communityRepo mysql.CommunityRepository,
	generator dependencies.ContentGenerator,
	postService service.PostService,
	logger *core.ZapLogger,
) *AIContentTask {
	cronV3 := cron.New() // 默认分钟级精度
	task := &AIContentTask{
		communityRepo: communityRepo,
		generator:     generator,
		postService:   postService,
		cron:          cronV3,
		logger:        logger,
	}
	task.startCronJob()
	return task
}

// startCronJob 配置并启动 cron 作业。
func (t *AIContentTask) startCronJob() {
	schedule := constant.AIContentCronSpec
	t.logger.Info("准备启动 AI 内容生成定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		t.logger.Info("AI 内容生成任务开始执行...")
		startTime := time.Now()
		// 单次任务覆盖全部社区的生成调用，给一个宽松的整体超时。
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		t.GenerateForAllCommunities(ctx)

		duration := time.Since(startTime)
		t.logger.Info("AI 内容生成任务执行完毕", zap.Duration("duration", duration))
	})

	if err != nil {
		t.logger.Fatal("添加 AI 内容生成 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("AI 内容生成定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// GenerateForAllCommunities 对触发时刻的社区快照逐个生成内容。
// 快照之后新建的社区要等下一次触发才会被覆盖。
func (t *AIContentTask) GenerateForAllCommunities(ctx context.Context) {
	communities, err := t.communityRepo.ListCommunities(ctx)
	if err != nil {
		t.logger.Error("获取社区快照失败，本次生成中止", zap.Error(err))
		return
	}
	if len(communities) == 0 {
		t.logger.Info("当前没有社区，无需生成 AI 内容")
		return
	}

	var generated, failed int
	for _, community := range communities {
		if err := t.generateForCommunity(ctx, community.Name); err != nil {
			// 失败隔离：记录后继续处理下一个社区。
			t.logger.Error("为社区生成 AI 内容失败",
				zap.Error(err),
				zap.Uint64("communityID", community.ID),
				zap.String("community", community.Name),
			)
			failed++
			continue
		}
		generated++
	}

	t.logger.Info("AI 内容生成统计",
		zap.Int("total", len(communities)),
		zap.Int("generated", generated),
		zap.Int("failed", failed),
	)
}

// generateForCommunity 为单个社区生成一条待审核帖子。
// 生成调用失败时用确定性的降级文本兜底，只有落库失败才真正算失败。
func (t *AIContentTask) generateForCommunity(ctx context.Context, communityName string) error {
	prompt := fmt.Sprintf(constant.AIPromptTemplate, communityName)

	content, err := t.generator.Generate(ctx, prompt)
	if err != nil {
		t.logger.Warn("内容生成调用失败，使用降级文本",
			zap.Error(err),
			zap.String("community", communityName),
		)
		content = fmt.Sprintf(constant.AIFallbackTemplate, prompt)
	}

	req := &dto.CreateAIPostRequest{
		Title:     fmt.Sprintf(constant.AITitleTemplate, communityName),
		Content:   content,
		Community: communityName,
	}
	postVO, err := t.postService.CreateAIPost(ctx, req)
	if err != nil {
		return fmt.Errorf("创建 AI 帖子失败: %w", err)
	}

	t.logger.Info("AI 帖子已进入待审核队列",
		zap.Uint64("postID", postVO.ID),
		zap.String("community", communityName),
	)
	return nil
}

// Stop 优雅地停止 cron 调度器。
// 返回一个 context，调用者可以使用它来等待正在运行的任务完成。
func (t *AIContentTask) Stop() context.Context {
	t.logger.Info("正在停止 AI 内容生成定时任务...")
	stopCtx := t.cron.Stop()
	t.logger.Info("AI 内容生成定时任务已停止调度。等待正在执行的任务完成...")
	return stopCtx
}
