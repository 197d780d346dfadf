package components

// TextInputComponent 文本输入框组件
// 记事本的多行输入区域；文本只存在于内存中，卸载即丢弃
type TextInputComponent struct {
	// 输入框文本
	Text string // 当前输入的文本

	// 光标状态
	CursorVisible    bool    // 光标是否可见（闪烁效果）
	CursorBlinkTimer float64 // 光标闪烁计时器（秒）
	CursorPosition   int     // 光标位置（rune 索引）

	// 输入限制
	MaxLength   int    // 最大字符数（0 = 无限制）
	Placeholder string // 占位符文本（输入框为空时显示）
	MultiLine   bool   // 是否允许回车换行

	// 焦点状态
	IsFocused bool // 是否获得焦点（接收键盘输入）
}

// SetText 替换全部文本并把光标移到末尾
// 对应宿主"文本变化"事件：外部直接给出新内容
func (c *TextInputComponent) SetText(text string) {
	c.Text = text
	c.CursorPosition = len([]rune(text))
}
