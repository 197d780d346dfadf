package tween

import (
	"math"
	"testing"

	"github.com/decker502/notepad/internal/frameclock"
	"github.com/decker502/notepad/pkg/utils"
)

const frame = 1.0 / 60.0

func TestRunProgressAndComplete(t *testing.T) {
	clock := frameclock.NewManualClock()

	var progress []float64
	completed := 0
	h := Run(clock, 0.25, utils.EaseOutCubic,
		func(eased float64) { progress = append(progress, eased) },
		func() { completed++ },
	)

	if !h.Active() {
		t.Fatal("启动后应处于活动状态")
	}

	// 0.25 秒 = 15 帧；多跑几帧验证完成后不再回调
	clock.AdvanceFrames(20, frame)

	if completed != 1 {
		t.Errorf("onComplete 调用 %d 次, 期望 1", completed)
	}
	if h.Active() {
		t.Error("完成后不应再订阅时钟")
	}
	if !h.Done() {
		t.Error("Done() 应为 true")
	}
	if clock.ListenerCount() != 0 {
		t.Errorf("ListenerCount = %d, 期望 0", clock.ListenerCount())
	}

	if len(progress) == 0 || progress[len(progress)-1] != 1 {
		t.Fatalf("最后一帧进度应精确为 1, progress = %v", progress)
	}
	for i := 1; i < len(progress); i++ {
		if progress[i] < progress[i-1] {
			t.Errorf("进度递减: progress[%d]=%v < progress[%d]=%v", i, progress[i], i-1, progress[i-1])
		}
	}
	if n := len(progress); n < 15 || n > 16 {
		t.Errorf("进度回调 %d 次, 期望约 15 次", n)
	}
}

func TestRunEasedValues(t *testing.T) {
	clock := frameclock.NewManualClock()
	var last float64
	Run(clock, 1.0, utils.EaseInCubic, func(eased float64) { last = eased }, nil)

	clock.Advance(0.5)
	if math.Abs(last-0.125) > 1e-9 {
		t.Errorf("t=0.5 时缓动值 = %v, 期望 0.125", last)
	}
}

func TestRunNonPositiveDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
	}{
		{"零时长", 0},
		{"负时长", -1},
		{"NaN 时长", math.NaN()},
		{"无穷时长", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := frameclock.NewManualClock()
			var values []float64
			completed := 0
			Run(clock, tt.duration, utils.EaseOutCubic,
				func(eased float64) { values = append(values, eased) },
				func() { completed++ },
			)

			clock.AdvanceFrames(3, frame)

			if completed != 1 {
				t.Errorf("onComplete 调用 %d 次, 期望 1", completed)
			}
			if len(values) != 1 || values[0] != 1 {
				t.Errorf("values = %v, 期望 [1]", values)
			}
			if clock.ListenerCount() != 0 {
				t.Errorf("ListenerCount = %d, 期望 0", clock.ListenerCount())
			}
		})
	}
}

func TestCancel(t *testing.T) {
	clock := frameclock.NewManualClock()
	progressCalls, completed := 0, 0
	h := Run(clock, 0.25, nil, func(float64) { progressCalls++ }, func() { completed++ })

	clock.AdvanceFrames(3, frame)
	h.Cancel()
	h.Cancel()
	clock.AdvanceFrames(30, frame)

	if progressCalls != 3 {
		t.Errorf("取消后仍有回调: progressCalls = %d, 期望 3", progressCalls)
	}
	if completed != 0 {
		t.Errorf("取消后不应调用 onComplete, completed = %d", completed)
	}
	if h.Active() || h.Done() {
		t.Error("取消后 Active()/Done() 都应为 false")
	}
	if clock.ListenerCount() != 0 {
		t.Errorf("ListenerCount = %d, 期望 0", clock.ListenerCount())
	}
}

func TestCancelFromProgress(t *testing.T) {
	clock := frameclock.NewManualClock()
	completed := 0
	var h *Handle
	h = Run(clock, 0, nil, func(float64) { h.Cancel() }, func() { completed++ })

	clock.Advance(frame)
	if completed != 0 {
		t.Error("onProgress 中取消后不应再调用 onComplete")
	}
}

func TestNilHandle(t *testing.T) {
	var h *Handle
	h.Cancel()
	if h.Active() || h.Done() {
		t.Error("nil 句柄不应处于活动或完成状态")
	}
}
