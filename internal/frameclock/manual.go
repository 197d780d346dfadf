package frameclock

// ManualClock 使用合成时间的帧时钟
// Advance 先推进时间再执行一帧，模拟"渲染一帧后读取墙钟"。
type ManualClock struct {
	*TickSource
	t float64
}

// NewManualClock 创建从 0 秒开始的手动时钟
func NewManualClock() *ManualClock {
	c := &ManualClock{}
	c.TickSource = NewTickSource(func() float64 { return c.t })
	return c
}

// Advance 推进 dt 秒并执行一帧
func (c *ManualClock) Advance(dt float64) {
	c.t += dt
	c.Step()
}

// AdvanceFrames 以固定帧间隔执行 n 帧
func (c *ManualClock) AdvanceFrames(n int, dt float64) {
	for i := 0; i < n; i++ {
		c.Advance(dt)
	}
}

// Set 把合成时间设为 t（不执行帧）
func (c *ManualClock) Set(t float64) {
	c.t = t
}
