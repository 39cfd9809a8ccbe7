package events

import (
	"testing"
	"time"

	commonConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(commonConfig.ZapConfig{})
	require.NoError(t, err)
	return logger
}

func receiveWithTimeout(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case event := <-ch:
		return event
	case <-time.After(time.Second):
		t.Fatal("等待事件超时")
		return Event{}
	}
}

func TestHub_PublishFanOut(t *testing.T) {
	hub := NewHub(newTestLogger(t), 8)
	defer hub.Close()

	id1, ch1 := hub.Subscribe()
	id2, ch2 := hub.Subscribe()
	defer hub.Unsubscribe(id1)
	defer hub.Unsubscribe(id2)

	hub.Publish(New(PostCreated, map[string]uint64{"postId": 1}))

	e1 := receiveWithTimeout(t, ch1)
	e2 := receiveWithTimeout(t, ch2)
	assert.Equal(t, PostCreated, e1.Name)
	assert.Equal(t, PostCreated, e2.Name)
	assert.NotEmpty(t, e1.ID)
	assert.False(t, e1.Timestamp.IsZero())
}

func TestHub_SlowSubscriberDropsEvents(t *testing.T) {
	// 缓冲为 1：第二个事件发布时订阅者尚未消费，应被丢弃而不是阻塞发布方。
	hub := NewHub(newTestLogger(t), 1)
	defer hub.Close()

	id, ch := hub.Subscribe()
	defer hub.Unsubscribe(id)

	hub.Publish(New(PostCreated, nil))
	hub.Publish(New(PostPublished, nil))

	first := receiveWithTimeout(t, ch)
	assert.Equal(t, PostCreated, first.Name)

	select {
	case dropped := <-ch:
		t.Fatalf("期望第二个事件被丢弃，却收到了 %s", dropped.Name)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub(newTestLogger(t), 8)
	defer hub.Close()

	id, ch := hub.Subscribe()
	hub.Unsubscribe(id)

	_, open := <-ch
	assert.False(t, open, "注销后通道应被关闭")

	// 对同一 ID 再次注销是安全的空操作。
	hub.Unsubscribe(id)
}

func TestHub_PublishAfterUnsubscribeDoesNotPanic(t *testing.T) {
	hub := NewHub(newTestLogger(t), 8)
	defer hub.Close()

	id, _ := hub.Subscribe()
	hub.Unsubscribe(id)

	hub.Publish(New(PostReact, nil))
}

func TestHub_CloseUnsubscribesAll(t *testing.T) {
	hub := NewHub(newTestLogger(t), 8)

	_, ch1 := hub.Subscribe()
	_, ch2 := hub.Subscribe()

	hub.Close()

	_, open1 := <-ch1
	_, open2 := <-ch2
	assert.False(t, open1)
	assert.False(t, open2)

	// 关闭后的发布与订阅都不应 panic，新订阅者拿到已关闭的通道。
	hub.Publish(New(PostComment, nil))
	_, ch3 := hub.Subscribe()
	_, open3 := <-ch3
	assert.False(t, open3)

	// 重复关闭是幂等的。
	hub.Close()
}

func TestHub_DefaultBufferSize(t *testing.T) {
	hub := NewHub(newTestLogger(t), 0)
	defer hub.Close()

	assert.Equal(t, defaultSubscriberBuffer, hub.bufferSize)
}
