package dependencies

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/community_service/config"
	"github.com/Xushengqwer/community_service/constant"
)

// ContentGenerator 定义了文本内容生成的抽象接口。
// 定时任务通过该接口获取 AI 生成的帖子正文，不关心底层模型服务。
type ContentGenerator interface {
	// Generate 根据提示词生成一段文本。
	// - 未配置凭证时返回占位文本与 nil 错误，生成管线在本地环境也能跑通。
	// - 调用失败时返回错误，由调用方决定降级文本。
	Generate(ctx context.Context, prompt string) (string, error)
}

// openAIGenerator 通过 OpenAI 兼容的 chat completions 接口生成内容。
type openAIGenerator struct {
	baseURL   string
	apiKey    string
	model     string
	maxTokens int
	client    *http.Client
	logger    *core.ZapLogger
}

// InitGenerator 根据配置构造内容生成器。
// - HTTP 客户端使用 otelhttp 包装，生成调用出现在分布式追踪里。
func InitGenerator(cfg *appConfig.CommunityConfig, logger *core.ZapLogger) ContentGenerator {
	genCfg := cfg.GeneratorConfig

	timeout := time.Duration(genCfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	if genCfg.APIKey == "" {
		logger.Warn("未配置内容生成服务凭证，将返回占位内容")
	}

	return &openAIGenerator{
		baseURL:   genCfg.BaseURL,
		apiKey:    genCfg.APIKey,
		model:     genCfg.Model,
		maxTokens: genCfg.MaxTokens,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}
}

// chatCompletionRequest 是 chat completions 接口的请求体。
type chatCompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionResponse 是 chat completions 接口的响应体（只取需要的字段）。
type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate 实现基于 chat completions 的单次生成，不做重试。
func (g *openAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return fmt.Sprintf(constant.AIPlaceholderTemplate, prompt), nil
	}

	reqBody := chatCompletionRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		MaxTokens: g.maxTokens,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("序列化生成请求失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("构造生成请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Error("调用内容生成服务失败", zap.Error(err))
		return "", fmt.Errorf("调用内容生成服务失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("读取生成服务响应失败: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		g.logger.Error("内容生成服务返回非预期状态码",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return "", fmt.Errorf("内容生成服务返回状态码 %d", resp.StatusCode)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("解析生成服务响应失败: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("内容生成服务返回空结果")
	}

	return completion.Choices[0].Message.Content, nil
}
