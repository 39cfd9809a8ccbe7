package controller

import (
	"io"

	"github.com/Xushengqwer/go-common/core"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/community_service/events"
)

// EventsController 把事件通道暴露为 SSE 长连接。
// 订阅是尽力而为的：连接期间发布的事件才会收到，断线期间的事件直接错过。
type EventsController struct {
	hub    events.Broadcaster
	logger *core.ZapLogger
}

// NewEventsController 构造函数，用于创建 EventsController 实例
func NewEventsController(hub events.Broadcaster, logger *core.ZapLogger) *EventsController {
	return &EventsController{
		hub:    hub,
		logger: logger,
	}
}

// Subscribe 建立 SSE 订阅
// @Summary      订阅实时事件流
// @Description  以 Server-Sent Events 形式推送状态变更事件。事件名包括 post:created、post:ai_created、post:validated、post:published、post:comment、post:react。
// @Tags         events (事件)
// @Produce      text/event-stream
// @Success      200 {string} string "事件流"
// @Router       /api/v1/community/events [get]
func (ctrl *EventsController) Subscribe(c *gin.Context) {
	subscriberID, ch := ctrl.hub.Subscribe()
	defer ctrl.hub.Unsubscribe(subscriberID)

	ctrl.logger.Info("事件订阅已建立", zap.String("subscriberID", subscriberID))
	defer ctrl.logger.Info("事件订阅已断开", zap.String("subscriberID", subscriberID))

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case event, ok := <-ch:
			if !ok {
				// Hub 已关闭，进程在退出。
				return false
			}
			c.SSEvent(event.Name, event)
			return true
		}
	})
}

// RegisterRoutes 注册 EventsController 的路由
func (ctrl *EventsController) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/events", ctrl.Subscribe)
}
