package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/Xushengqwer/go-common/core"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/models/dto"
	"github.com/Xushengqwer/community_service/service"
)

// Seed 先创建社区，再并发往这些社区里灌入帖子。
// 帖子走服务层创建路径，人类帖子保持"创建即发布"的语义。
func Seed(
	ctx context.Context,
	communitySvc service.CommunityService,
	postSvc service.PostService,
	logger *core.ZapLogger,
	numCommunities int,
	numPosts int,
) {
	logger.Info("开始填充测试数据 (通过服务层)...",
		zap.Int("社区数量", numCommunities),
		zap.Int("帖子数量", numPosts),
	)

	// --- 1. 创建社区 (串行，数量小) ---
	communityNames := make([]string, 0, numCommunities)
	for i := 0; i < numCommunities; i++ {
		createReq := &dto.CreateCommunityRequest{
			Name:        fmt.Sprintf("%s %s", gofakeit.Adjective(), gofakeit.NounAbstract()),
			Description: gofakeit.Sentence(gofakeit.Number(8, 15)),
			Category:    gofakeit.RandomString([]string{"health", "fitness", "nutrition", "mental-health", "chronic-care"}),
			Color:       gofakeit.HexColor(),
		}

		community, err := communitySvc.CreateCommunity(ctx, createReq)
		if err != nil {
			logger.Error(fmt.Sprintf("创建社区 %d/%d 失败", i+1, numCommunities),
				zap.Error(err),
				zap.String("name", createReq.Name))
			continue
		}
		communityNames = append(communityNames, community.Name)
		logger.Info(fmt.Sprintf("成功创建社区 %d/%d", i+1, numCommunities),
			zap.Uint64("community_id", community.ID),
			zap.String("name", community.Name))
	}

	if len(communityNames) == 0 {
		logger.Error("没有任何社区创建成功，跳过帖子填充")
		return
	}

	// --- 2. 并发创建帖子 ---
	var wg sync.WaitGroup
	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for i := 0; i < numPosts; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			authorID := uuid.New().String()
			authorName := gofakeit.Username()

			createReq := &dto.CreatePostRequest{
				Title:     gofakeit.Sentence(gofakeit.Number(5, 12)),
				Content:   gofakeit.Paragraph(3, 5, 20, "\n\n"),
				Community: gofakeit.RandomString(communityNames),
				ImageURL:  gofakeit.ImageURL(400, 300),
			}

			resp, err := postSvc.CreatePost(ctx, createReq, authorID, authorName)
			if err != nil {
				logger.Error(fmt.Sprintf("创建帖子 %d/%d 失败", itemIndex+1, numPosts),
					zap.Error(err),
					zap.String("title", createReq.Title),
					zap.String("community", createReq.Community))
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
