// Package tween 提供基于帧时钟的时间驱动补间动画
package tween

import (
	"math"

	"github.com/decker502/notepad/internal/frameclock"
	"github.com/decker502/notepad/pkg/utils"
)

// Handle 一次正在运行的补间动画
type Handle struct {
	conn     *frameclock.Connection
	start    float64
	duration float64
	done     bool
}

// Run 启动补间动画
//
// 每帧计算 alpha = clamp((now-start)/duration, 0, 1)，调用 onProgress(ease(alpha))。
// alpha 达到 1 时先退订，再调用一次 onComplete。
// duration <= 0、NaN 或 +Inf 视为立即完成：第一帧直接以 alpha = 1 结束。
// ease 为 nil 时使用线性缓动；onProgress、onComplete 可为 nil。
func Run(clock frameclock.Clock, duration float64, ease utils.EasingFunc, onProgress func(eased float64), onComplete func()) *Handle {
	if ease == nil {
		ease = utils.EaseLinear
	}

	h := &Handle{
		start:    clock.Now(),
		duration: duration,
	}

	h.conn = clock.Subscribe(func() {
		alpha := h.alpha(clock.Now())
		if onProgress != nil {
			onProgress(ease(alpha))
		}
		// onProgress 内可能取消了动画
		if !h.conn.Connected() {
			return
		}
		if alpha >= 1 {
			h.conn.Disconnect()
			h.done = true
			if onComplete != nil {
				onComplete()
			}
		}
	})

	return h
}

func (h *Handle) alpha(now float64) float64 {
	// NaN、非正数和 +Inf 都视为立即完成，保证驱动总能结束
	if !(h.duration > 0) || math.IsInf(h.duration, 1) {
		return 1
	}
	return utils.Clamp((now-h.start)/h.duration, 0, 1)
}

// Cancel 提前停止动画，不调用 onComplete
// 可重复调用；nil 句柄安全
func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.conn.Disconnect()
}

// Active 返回动画是否仍订阅着时钟
func (h *Handle) Active() bool {
	return h != nil && h.conn.Connected()
}

// Done 返回动画是否自然完成（而非被取消）
func (h *Handle) Done() bool {
	return h != nil && h.done
}
