package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/community_service/config"
	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/dependencies"
	"github.com/Xushengqwer/community_service/events"
	"github.com/Xushengqwer/community_service/repo/mysql"
	redisRepo "github.com/Xushengqwer/community_service/repo/redis"
	servicePkg "github.com/Xushengqwer/community_service/service"
)

func main() {
	// --- 0. 解析命令行参数 ---
	var numCommunities int
	var numPosts int
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&numCommunities, "c", 5, "要生成的社区数量 (默认: 5)")
	flag.IntVar(&numPosts, "n", 50, "要生成的帖子数量 (默认: 50)")
	flag.Parse()

	absConfigFile, err := filepath.Abs(configFile)
	if err != nil {
		fmt.Printf("无法获取配置文件的绝对路径 '%s': %v\n", configFile, err)
		absConfigFile = configFile
	}
	fmt.Printf("准备使用配置文件 '%s' 生成 %d 个社区与 %d 条帖子...\n", absConfigFile, numCommunities, numPosts)

	if numCommunities <= 0 || numPosts <= 0 {
		fmt.Println("错误: 生成的社区和帖子数量都必须大于 0")
		os.Exit(1)
	}

	// --- 1. 加载配置 ---
	var cfg appConfig.CommunityConfig
	if err := core.LoadConfig(absConfigFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", absConfigFile, err)
		os.Exit(1)
	}
	fmt.Println("配置加载成功。")

	// --- 2. 初始化日志记录器 ---
	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", loggerErr)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Logger().Sync()
	}()
	logger.Info("Logger 初始化成功 (Seeder)")

	// --- 3. 初始化 MySQL 数据库连接 ---
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(dbErr))
	}
	logger.Info("MySQL 连接成功 (Seeder)")

	// --- 4. 初始化 Redis (发帖计数器依赖) ---
	rdb, redisErr := dependencies.InitRedis(&cfg, logger)
	if redisErr != nil {
		logger.Fatal("初始化 Redis 失败 (Seeder)", zap.Error(redisErr))
	}
	logger.Info("Redis 连接成功 (Seeder)")

	// --- 5. 初始化 Repositories ---
	communityRepo := mysql.NewCommunityRepository(db, logger)
	postRepo := mysql.NewPostRepository(db, logger)
	interactionRepo := mysql.NewInteractionRepository(db, logger)
	communityRequestRepo := mysql.NewCommunityRequestRepository(db, logger)
	userRepo := mysql.NewUserRepository(db, logger)
	activityRepo := redisRepo.NewCommunityActivityRepository(rdb, logger)

	// --- 6. 初始化 Services ---
	// Seeder 不访问 Kafka，生产者传 nil；事件中心仅为满足依赖，无订阅者。
	hub := events.NewHub(logger, constant.EventBufferSize)
	defer hub.Close()

	communitySvc := servicePkg.NewCommunityService(db, communityRepo, communityRequestRepo, userRepo, logger)
	postSvc := servicePkg.NewPostService(db, postRepo, communityRepo, interactionRepo, activityRepo, hub, nil, logger)
	logger.Info("Services 已初始化 (Seeder)")

	// --- 7. 执行数据填充 ---
	ctx := context.Background()
	startTime := time.Now()
	logger.Info("开始执行数据填充...",
		zap.Int("社区数量", numCommunities),
		zap.Int("帖子数量", numPosts),
	)

	Seed(ctx, communitySvc, postSvc, logger, numCommunities, numPosts)

	fmt.Printf("数据填充完成！总耗时: %v\n", time.Since(startTime))
}
