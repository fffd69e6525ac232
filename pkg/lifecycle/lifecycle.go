package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Manager 是后台服务的生命周期协调器。
// 它由上层模块（如shutdown）创建和持有，并向各个后台服务分发句柄(Handle)。
type Manager struct {
	wg       sync.WaitGroup
	mu       sync.Mutex
	services map[string]bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewManager 创建一个新的生命周期管理器。
func NewManager() *Manager {
	m := &Manager{
		services: make(map[string]bool),
	}
	m.ctx, m.cancel = context.WithCancel(context.Background())
	return m
}

// Register 为一个后台服务创建一个新的生命周期句柄(Handle)。
// 管理器会自动为这个服务注册并增加WaitGroup计数。
func (m *Manager) Register(name string) (*Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.services[name] {
		return nil, fmt.Errorf("生命周期管理器: 服务 '%s' 已被注册", name)
	}
	m.services[name] = true
	m.wg.Add(1)
	fmt.Printf("生命周期管理器: 服务 [%s] 已注册。\n", name)

	return &Handle{
		ctx: m.ctx,
		Close: func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			if _, exists := m.services[name]; !exists {
				return
			}
			delete(m.services, name)
			m.wg.Done()
		},
	}, nil
}

// Shutdown 向所有持有句柄的服务广播停机信号。
func (m *Manager) Shutdown() {
	fmt.Println("生命周期管理器: 广播停机信号...")
	m.cancel()
}

// WaitWithTimeout 等待所有已注册的服务完成，直到指定的超时。
// 返回超时后仍未退出的服务名列表；全部按时退出时返回nil。
func (m *Manager) WaitWithTimeout(timeout time.Duration) []string {
	doneChan := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(doneChan)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-doneChan:
		return nil
	case <-timer.C:
		m.mu.Lock()
		defer m.mu.Unlock()
		remaining := make([]string, 0, len(m.services))
		for name := range m.services {
			remaining = append(remaining, name)
		}
		return remaining
	}
}

// Handle 是分发给每个后台服务的生命周期控制器。
type Handle struct {
	ctx context.Context

	// Close 用于通知Manager其所属的服务已经完成关闭。
	// 它应该在服务的Goroutine退出前通过 defer 来调用。
	Close func()
}

// Ctx 返回Handle内部的ctx
func (h *Handle) Ctx() context.Context {
	return h.ctx
}

// Done 返回一个channel，当生命周期管理器发出停机信号时，该channel会关闭。
// 它允许服务在select语句中监听停机信号。
func (h *Handle) Done() <-chan struct{} {
	return h.ctx.Done()
}

// Err 在Done()的channel关闭后，返回上下文被取消的原因。
func (h *Handle) Err() error {
	return h.ctx.Err()
}

// Sleep 暂停指定的时长，但如果生命周期句柄被取消，则会提前返回错误。
// 这是后台循环中推荐使用的休眠方法。
func (h *Handle) Sleep(duration time.Duration) error {
	timer := time.NewTimer(duration)

	select {
	case <-h.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return h.Err()
	case <-timer.C:
		return nil
	}
}
