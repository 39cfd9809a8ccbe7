package events

import (
	"sync"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Broadcaster 定义进程内事件通道的抽象。
// - 发布是尽力而为：没有持久化、没有重放、没有投递保证，
//   订阅者断开期间发布的事件直接丢失。
// - Publish 不返回错误也绝不阻塞：事件发布永远不能使触发它的业务操作失败。
type Broadcaster interface {
	// Publish 将事件广播给当前所有在线订阅者。
	Publish(event Event)

	// Subscribe 注册一个新订阅者，返回订阅ID和事件流。
	// 订阅者的生命周期与客户端连接一致，连接断开时必须调用 Unsubscribe。
	Subscribe() (string, <-chan Event)

	// Unsubscribe 注销订阅者并关闭其事件流。
	Unsubscribe(id string)

	// Close 关闭通道，注销所有订阅者。
	Close()
}

// Hub 是 Broadcaster 的进程内实现：互斥锁保护的订阅表 + 每订阅者独立缓冲通道。
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]chan Event
	bufferSize  int
	closed      bool
	logger      *core.ZapLogger
}

// 默认的单订阅者事件缓冲长度。
// 缓冲写满说明订阅者消费过慢，此时丢弃新事件而不是阻塞发布方。
const defaultSubscriberBuffer = 64

// NewHub 创建事件中心。bufferSize <= 0 时使用默认缓冲长度。
func NewHub(logger *core.ZapLogger, bufferSize int) *Hub {
	if bufferSize <= 0 {
		bufferSize = defaultSubscriberBuffer
	}
	return &Hub{
		subscribers: make(map[string]chan Event),
		bufferSize:  bufferSize,
		logger:      logger,
	}
}

// Publish 实现非阻塞广播。
// 持有读锁期间订阅通道不会被关闭（Unsubscribe/Close 需要写锁），因此向通道发送是安全的；
// 任何意外 panic 都被吞掉，保证发布永远不影响触发它的操作。
func (h *Hub) Publish(event Event) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("事件广播发生 panic（已吞掉，不影响业务操作）",
				zap.Any("recover", r),
				zap.String("event", event.Name))
		}
	}()

	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}

	for id, ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			// 订阅者消费过慢，丢弃事件。通道本身定义为尽力而为，不做背压。
			h.logger.Warn("订阅者缓冲已满，丢弃事件",
				zap.String("subscriberID", id),
				zap.String("event", event.Name))
		}
	}
}

// Subscribe 注册新订阅者。
func (h *Hub) Subscribe() (string, <-chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := uuid.New().String()
	ch := make(chan Event, h.bufferSize)
	if h.closed {
		// 关闭后仍返回一个已关闭的空通道，调用方的接收循环会立即结束。
		close(ch)
		return id, ch
	}
	h.subscribers[id] = ch
	h.logger.Debug("事件订阅者已注册", zap.String("subscriberID", id), zap.Int("total", len(h.subscribers)))
	return id, ch
}

// Unsubscribe 注销订阅者。对不存在的ID调用是安全的空操作。
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch, ok := h.subscribers[id]
	if !ok {
		return
	}
	delete(h.subscribers, id)
	close(ch)
	h.logger.Debug("事件订阅者已注销", zap.String("subscriberID", id), zap.Int("total", len(h.subscribers)))
}

// Close 关闭事件中心并注销所有订阅者。
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subscribers {
		delete(h.subscribers, id)
		close(ch)
	}
	h.logger.Info("事件中心已关闭")
}
