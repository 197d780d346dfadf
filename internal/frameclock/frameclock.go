// Package frameclock 提供可注入的帧时钟
//
// 宿主游戏循环每渲染一帧调用一次 TickSource.Step()，
// 订阅者在回调中读取 Now() 计算已流逝时间。
// 测试和验证工具使用 ManualClock 推进合成时间，无需真实渲染循环。
//
// 所有方法都只应在主循环线程上调用（与 Ebitengine 的 Update 同线程）。
package frameclock

import "time"

// Clock 帧时钟接口
type Clock interface {
	// Now 返回单调递增的秒数（相对某个固定参考点）
	Now() float64
	// Subscribe 订阅"每帧通知"，返回用于取消订阅的连接
	Subscribe(callback func()) *Connection
}

// Connection 一次订阅的句柄
type Connection struct {
	source   *TickSource
	callback func()
	live     bool
}

// Disconnect 取消订阅，可重复调用
// 在回调内部调用同样安全：本帧剩余订阅者照常执行，此连接不会再被调用。
func (c *Connection) Disconnect() {
	if c == nil || !c.live {
		return
	}
	c.live = false
	c.source.remove(c)
}

// Connected 返回连接是否仍然有效
func (c *Connection) Connected() bool {
	return c != nil && c.live
}

// TickSource 每帧通知源
type TickSource struct {
	now       func() float64
	listeners []*Connection
	frame     uint64
}

// NewTickSource 创建通知源
// now 为 nil 时使用 MonotonicNow()
func NewTickSource(now func() float64) *TickSource {
	if now == nil {
		now = MonotonicNow()
	}
	return &TickSource{now: now}
}

// Now 实现 Clock
func (s *TickSource) Now() float64 {
	return s.now()
}

// Subscribe 实现 Clock
// 在 Step 期间新增的订阅者从下一帧开始接收通知
func (s *TickSource) Subscribe(callback func()) *Connection {
	conn := &Connection{source: s, callback: callback, live: true}
	s.listeners = append(s.listeners, conn)
	return conn
}

// Step 通知所有订阅者一次（每渲染帧调用一次）
func (s *TickSource) Step() {
	s.frame++
	if len(s.listeners) == 0 {
		return
	}

	// 快照：回调内的订阅/退订不影响本帧遍历
	snapshot := make([]*Connection, len(s.listeners))
	copy(snapshot, s.listeners)

	for _, conn := range snapshot {
		if !conn.live {
			continue
		}
		conn.callback()
	}
}

// ListenerCount 返回当前有效的订阅数
func (s *TickSource) ListenerCount() int {
	return len(s.listeners)
}

// Frame 返回已执行的 Step 次数
func (s *TickSource) Frame() uint64 {
	return s.frame
}

func (s *TickSource) remove(target *Connection) {
	for i, conn := range s.listeners {
		if conn == target {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// MonotonicNow 返回基于 time 单调时钟的读取函数
// 参考点为调用时刻
func MonotonicNow() func() float64 {
	start := time.Now()
	return func() float64 {
		return time.Since(start).Seconds()
	}
}
