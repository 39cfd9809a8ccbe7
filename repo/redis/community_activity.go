package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/constant"
)

// CommunityActivityRepository 定义了社区活跃度计数在 Redis 中的操作接口。
// 发帖热路径只写 Redis，计数周期性由同步任务收割回 MySQL。
type CommunityActivityRepository interface {
	// IncrDailyPosts 原子递增社区的当日发帖计数。
	IncrDailyPosts(ctx context.Context, communityID uint64) error

	// GetAllDailyCounts 以 SCAN 游标遍历全部计数键，返回 communityID -> count。
	// - 使用 SCAN 而非 KEYS，避免阻塞 Redis。
	GetAllDailyCounts(ctx context.Context, scanBatchSize int64) (map[uint64]int64, error)

	// ResetDailyCounts 删除指定社区的计数键，同步任务回写 MySQL 后调用。
	ResetDailyCounts(ctx context.Context, communityIDs []uint64) error
}

// communityActivityRepository 是 CommunityActivityRepository 的具体实现。
type communityActivityRepository struct {
	client *redis.Client
	logger *core.ZapLogger
}

// NewCommunityActivityRepository 是 communityActivityRepository 的构造函数。
func NewCommunityActivityRepository(client *redis.Client, logger *core.ZapLogger) CommunityActivityRepository {
	return &communityActivityRepository{
		client: client,
		logger: logger,
	}
}

func dailyPostsKey(communityID uint64) string {
	return constant.CommunityDailyPostsPrefix + strconv.FormatUint(communityID, 10)
}

// IncrDailyPosts 实现计数递增。
func (r *communityActivityRepository) IncrDailyPosts(ctx context.Context, communityID uint64) error {
	if err := r.client.Incr(ctx, dailyPostsKey(communityID)).Err(); err != nil {
		r.logger.Error("递增社区当日发帖计数失败",
			zap.Error(err),
			zap.Uint64("communityID", communityID),
		)
		return fmt.Errorf("递增社区 %d 当日发帖计数失败: %w", communityID, err)
	}
	return nil
}

// GetAllDailyCounts 实现计数键的全量收割。
func (r *communityActivityRepository) GetAllDailyCounts(ctx context.Context, scanBatchSize int64) (map[uint64]int64, error) {
	if scanBatchSize <= 0 {
		scanBatchSize = 100
	}

	counts := make(map[uint64]int64)
	var cursor uint64
	pattern := constant.CommunityDailyPostsPrefix + "*"

	for {
		keys, nextCursor, err := r.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			r.logger.Error("扫描社区发帖计数键失败", zap.Error(err), zap.Uint64("cursor", cursor))
			return nil, fmt.Errorf("扫描社区发帖计数键失败: %w", err)
		}

		if len(keys) > 0 {
			values, err := r.client.MGet(ctx, keys...).Result()
			if err != nil {
				r.logger.Error("批量读取社区发帖计数失败", zap.Error(err), zap.Int("keyCount", len(keys)))
				return nil, fmt.Errorf("批量读取社区发帖计数失败: %w", err)
			}
			for i, key := range keys {
				if values[i] == nil {
					continue
				}
				idStr := strings.TrimPrefix(key, constant.CommunityDailyPostsPrefix)
				id, err := strconv.ParseUint(idStr, 10, 64)
				if err != nil {
					r.logger.Warn("跳过无法解析的计数键", zap.String("key", key))
					continue
				}
				count, err := strconv.ParseInt(fmt.Sprint(values[i]), 10, 64)
				if err != nil {
					r.logger.Warn("跳过无法解析的计数值", zap.String("key", key), zap.Any("value", values[i]))
					continue
				}
				counts[id] = count
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	return counts, nil
}

// ResetDailyCounts 实现计数键的批量删除。
func (r *communityActivityRepository) ResetDailyCounts(ctx context.Context, communityIDs []uint64) error {
	if len(communityIDs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(communityIDs))
	for _, id := range communityIDs {
		keys = append(keys, dailyPostsKey(id))
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Error("删除社区发帖计数键失败", zap.Error(err), zap.Int("keyCount", len(keys)))
		return fmt.Errorf("删除社区发帖计数键失败: %w", err)
	}
	return nil
}
