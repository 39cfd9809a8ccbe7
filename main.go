package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/Xushengqwer/community_service/docs" // 确保导入了 docs 包

	// 导入项目包
	appConfig "github.com/Xushengqwer/community_service/config"
	"github.com/Xushengqwer/community_service/constant"
	"github.com/Xushengqwer/community_service/controller"
	"github.com/Xushengqwer/community_service/dependencies"
	"github.com/Xushengqwer/community_service/events"
	"github.com/Xushengqwer/community_service/mq/consumer"
	"github.com/Xushengqwer/community_service/mq/producer"
	"github.com/Xushengqwer/community_service/repo/mysql"
	redisrepo "github.com/Xushengqwer/community_service/repo/redis"
	"github.com/Xushengqwer/community_service/router"
	"github.com/Xushengqwer/community_service/service"
	"github.com/Xushengqwer/community_service/tasks"

	// 导入公共模块
	sharedCore "github.com/Xushengqwer/go-common/core"
	sharedTracing "github.com/Xushengqwer/go-common/core/tracing"

	// 导入 Zap
	"go.uber.org/zap"
)

// @title           Community Service API
// @version         1.0
// @description     社区服务，提供帖子发布与审核、社区管理、成员申请和实时事件推送等功能。
// @termsOfService  http://swagger.io/terms/

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8083

// @schemes http https
func main() {
	// --- 配置和基础设置 ---
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.Parse()

	// 1. 加载配置
	var cfg appConfig.CommunityConfig
	if err := sharedCore.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}

	// 打印最终生效的配置以供调试
	configBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Fatalf("无法序列化配置以进行打印: %v", err)
	}
	log.Printf("✅ 配置加载成功！最终生效的配置如下:\n%s\n", string(configBytes))

	// 2. 初始化 Logger
	logger, loggerErr := sharedCore.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", loggerErr)
	}
	defer func() {
		logger.Info("正在同步日志...")
		if err := logger.Logger().Sync(); err != nil {
			log.Printf("WARN: ZapLogger Sync 失败: %v\n", err)
		}
	}()
	logger.Info("Logger 初始化成功")

	// 3. 初始化 TracerProvider
	var tracerShutdown func(context.Context) error // 用于优雅关停
	if cfg.TracerConfig.Enabled {
		var err error
		tracerShutdown, err = sharedTracing.InitTracerProvider(
			constant.ServiceName,
			constant.ServiceVersion,
			cfg.TracerConfig,
		)
		if err != nil {
			logger.Fatal("初始化 TracerProvider 失败", zap.Error(err))
		}
		// 使用 defer 确保追踪系统在程序退出时关闭
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			logger.Info("正在关闭 TracerProvider...")
			if err := tracerShutdown(ctx); err != nil {
				logger.Error("关闭 TracerProvider 失败", zap.Error(err))
			} else {
				logger.Info("TracerProvider 已成功关闭")
			}
		}()
		logger.Info("分布式追踪已初始化")
	} else {
		logger.Info("分布式追踪已禁用")
		tracerShutdown = func(ctx context.Context) error { return nil } // 提供一个空操作关闭函数
	}

	// --- 4. 初始化核心依赖 ---
	// 4.1 数据库 (MySQL)
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 数据库失败", zap.Error(dbErr))
	}
	logger.Info("MySQL 数据库连接成功")

	// 4.2 Redis
	rdb, redisErr := dependencies.InitRedis(&cfg, logger)
	if redisErr != nil {
		logger.Fatal("初始化 Redis 失败", zap.Error(redisErr))
	}
	logger.Info("Redis 连接成功")

	// 4.3 AI 内容生成器 (OpenAI 兼容接口，未配置 APIKey 时自动降级为占位内容)
	generator := dependencies.InitGenerator(&cfg, logger)
	logger.Info("AI 内容生成器已初始化")

	// 4.4 Kafka 生产者
	var kafkaProducer *producer.KafkaProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, logger)
		logger.Info("Kafka 生产者已初始化")
	} else {
		logger.Warn("未配置 Kafka brokers，Kafka 生产者将为 nil")
	}

	// 4.5 进程内事件中心 (SSE 订阅者的扇出源)
	hub := events.NewHub(logger, constant.EventBufferSize)
	logger.Info("事件中心已初始化")

	// --- 5. 初始化数据仓库层 (Repositories) ---
	communityRepo := mysql.NewCommunityRepository(db, logger)
	postRepo := mysql.NewPostRepository(db, logger)
	interactionRepo := mysql.NewInteractionRepository(db, logger)
	membershipRepo := mysql.NewMembershipRepository(db, communityRepo, logger)
	communityRequestRepo := mysql.NewCommunityRequestRepository(db, logger)
	userRepo := mysql.NewUserRepository(db, logger)
	logger.Debug("MySQL Repositories 初始化完成")

	activityRepo := redisrepo.NewCommunityActivityRepository(rdb, logger)
	logger.Debug("Redis Repositories 初始化完成")

	// --- 6. 初始化服务层 (Services) ---
	postService := service.NewPostService(db, postRepo, communityRepo, interactionRepo, activityRepo, hub, kafkaProducer, logger)
	reviewService := service.NewReviewService(postRepo, hub, logger)
	communityService := service.NewCommunityService(db, communityRepo, communityRequestRepo, userRepo, logger)
	membershipService := service.NewMembershipService(db, membershipRepo, communityRepo, userRepo, logger)
	logger.Debug("Services 初始化完成")

	// --- 7. 初始化控制器层 (Controllers) ---
	postController := controller.NewPostController(postService)
	reviewController := controller.NewReviewController(reviewService, postService)
	communityController := controller.NewCommunityController(communityService)
	membershipController := controller.NewMembershipController(membershipService)
	eventsController := controller.NewEventsController(hub, logger)
	logger.Debug("Controllers 初始化完成")

	// --- 8. 初始化 Kafka 消费者 ---
	var consumers []*consumer.Consumer
	var consumerWg sync.WaitGroup // 用于等待所有消费者 goroutine 结束

	// 创建一个可以被取消的 context，用于通知所有消费者停止
	var consumerCtx, consumerCancel = context.WithCancel(context.Background())

	if len(cfg.KafkaConfig.Brokers) > 0 {
		groupID := cfg.KafkaConfig.ConsumerGroupID
		if groupID == "" {
			logger.Warn("Kafka ConsumerGroupID 未在配置中设置，将使用默认值 'community_service_group'")
			groupID = "community_service_group"
		}

		// --- 8.1 初始化并添加 Approved 消费者 ---
		approvedTopic := cfg.KafkaConfig.Topics.PostReviewApproved
		if approvedTopic != "" {
			approvedHandler := consumer.NewApprovedReviewHandler(logger, reviewService)
			approvedConsumer, err := consumer.NewConsumer(
				&cfg.KafkaConfig,
				groupID,
				approvedTopic,
				approvedHandler,
				logger,
			)
			if err != nil {
				logger.Fatal("初始化 Approved Kafka 消费者失败", zap.Error(err))
			}
			consumers = append(consumers, approvedConsumer)
			logger.Info("Approved Kafka 消费者已准备就绪", zap.String("topic", approvedTopic))
		} else {
			logger.Warn("PostReviewApproved topic 未配置，跳过 Approved 消费者创建")
		}

		// --- 8.2 初始化并添加 Rejected 消费者 ---
		rejectedTopic := cfg.KafkaConfig.Topics.PostReviewRejected
		if rejectedTopic != "" {
			rejectedHandler := consumer.NewRejectedReviewHandler(logger, reviewService)
			rejectedConsumer, err := consumer.NewConsumer(
				&cfg.KafkaConfig,
				groupID,
				rejectedTopic,
				rejectedHandler,
				logger,
			)
			if err != nil {
				logger.Fatal("初始化 Rejected Kafka 消费者失败", zap.Error(err))
			}
			consumers = append(consumers, rejectedConsumer)
			logger.Info("Rejected Kafka 消费者已准备就绪", zap.String("topic", rejectedTopic))
		} else {
			logger.Warn("PostReviewRejected topic 未配置，跳过 Rejected 消费者创建")
		}

		// --- 8.3 启动所有已初始化的消费者 ---
		if len(consumers) > 0 {
			logger.Info(fmt.Sprintf("准备启动 %d 个 Kafka 消费者...", len(consumers)))
			for _, c := range consumers {
				consumerWg.Add(1)
				go func(cons *consumer.Consumer) {
					defer consumerWg.Done()
					cons.Start(consumerCtx)
				}(c)
			}
		} else {
			logger.Warn("没有配置任何有效的 Kafka 消费者。")
		}
	} else {
		logger.Warn("Kafka Brokers 未配置，跳过所有 Kafka 消费者初始化。")
	}

	// --- 9. 初始化定时任务 ---
	aiContentTask := tasks.NewAIContentTask(communityRepo, generator, postService, logger)
	activitySyncTask := tasks.NewActivitySyncTask(activityRepo, communityRepo, cfg.ActivitySyncConfig, logger)
	logger.Info("后台定时任务已初始化并启动")

	// --- 10. 设置 Gin 路由器 ---
	ginRouter := router.SetupRouter(logger, &cfg, postController, reviewController, communityController, membershipController, eventsController)
	logger.Info("Gin 路由器已设置")

	// --- 11. 启动 HTTP 服务器 ---
	serverAddr := fmt.Sprintf(":%s", cfg.ServerConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: ginRouter,
	}

	go func() {
		logger.Info("HTTP 服务器开始监听", zap.String("address", serverAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器启动失败", zap.Error(err))
		}
		logger.Info("HTTP 服务器已停止监听")
	}()

	// --- 12. 实现优雅关停 ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	logger.Info("收到关停信号，开始优雅退出...", zap.String("signal", receivedSignal.String()))

	// 创建关停超时 context
	shutdownCtx, shutdownCancelFunc := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancelFunc()

	// a. 停止 HTTP 服务器 (允许处理完当前请求)
	logger.Info("正在关闭 HTTP 服务器...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("关闭 HTTP 服务器失败", zap.Error(err))
	} else {
		logger.Info("HTTP 服务器已成功关闭")
	}

	// b. 关闭事件中心 (所有 SSE 订阅通道收到关闭信号)
	logger.Info("正在关闭事件中心...")
	hub.Close()

	// c. 关闭 Kafka 消费者
	if consumerCancel != nil {
		logger.Info("正在发送停止信号给 Kafka 消费者...")
		consumerCancel() // 通知所有使用 consumerCtx 的 goroutine 退出
	}
	logger.Info("等待 Kafka 消费者停止...")
	consumerWg.Wait()

	for _, c := range consumers {
		if err := c.Close(); err != nil {
			logger.Error("关闭某个 Kafka 消费者时出错", zap.Error(err))
		}
	}
	logger.Info("所有 Kafka 消费者已停止。")

	// d. 关闭 Kafka 生产者
	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("关闭 Kafka 生产者失败", zap.Error(err))
		} else {
			logger.Info("Kafka 生产者已关闭")
		}
	}

	// e. 停止定时任务调度器 (等待任务结束)
	logger.Info("正在停止定时任务...")
	aiStopCtx := aiContentTask.Stop()
	syncStopCtx := activitySyncTask.Stop()

	// 等待两个任务各自结束，整体受 shutdownCtx 超时约束。
	// 已结束的分支把通道置 nil，nil 通道在 select 中永远阻塞，不会被重复命中。
	aiDone := aiStopCtx.Done()
	syncDone := syncStopCtx.Done()
	tasksStopped := 0
	for tasksStopped < 2 {
		select {
		case <-aiDone:
			logger.Info("AI 内容生成任务已停止")
			aiDone = nil
			tasksStopped++
		case <-syncDone:
			logger.Info("社区活跃度同步任务已停止")
			syncDone = nil
			tasksStopped++
		case <-shutdownCtx.Done(): // 检查总的关停超时
			logger.Error("等待定时任务停止超时", zap.Error(shutdownCtx.Err()))
			tasksStopped = 2 // 超时则强制退出等待
		}
	}
	logger.Info("所有定时任务已停止")

	logger.Info("服务已成功关闭")
}
