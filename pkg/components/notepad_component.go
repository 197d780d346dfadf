package components

import "github.com/decker502/notepad/internal/tween"

// NotepadPhase 记事本可见性阶段
type NotepadPhase int

const (
	// NotepadHidden 完全隐藏（初始状态）
	NotepadHidden NotepadPhase = iota
	// NotepadOpening 正在播放打开动画
	NotepadOpening
	// NotepadOpen 完全打开
	NotepadOpen
	// NotepadClosing 正在播放关闭动画
	NotepadClosing
)

// String 返回阶段名称（用于日志）
func (p NotepadPhase) String() string {
	switch p {
	case NotepadHidden:
		return "Hidden"
	case NotepadOpening:
		return "OpeningAnimating"
	case NotepadOpen:
		return "Open"
	case NotepadClosing:
		return "ClosingAnimating"
	default:
		return "Unknown"
	}
}

// 动画端点值
const (
	NotepadHiddenTransparency = 1.0 // 隐藏时完全透明
	NotepadHiddenScale        = 0.9 // 隐藏时缩小到 90%
	NotepadShownTransparency  = 0.0
	NotepadShownScale         = 1.0
)

// NotepadComponent 记事本浮层组件
// 挂载时创建，卸载时随实体销毁；IsClosing、ShouldRender、Phase 只由 NotepadVisibilitySystem 修改
type NotepadComponent struct {
	// 可见性状态
	IsOpen       bool         // 调用方期望的打开状态
	IsClosing    bool         // 关闭动画进行中
	ShouldRender bool         // 是否挂载到渲染树（仅 Hidden 时为 false）
	Phase        NotepadPhase // 显式状态机阶段

	// 动画进度
	Transparency float64 // 透明度 [0, 1]，1 = 完全透明
	Scale        float64 // 面板缩放 [0.9, 1.0]

	// 悬停状态
	CloseHovered bool // 鼠标是否悬停在关闭按钮上

	// Animation 当前唯一的动画驱动，空闲时为 nil
	Animation *tween.Handle
}

// NewNotepadComponent 创建处于 Hidden 状态的组件
func NewNotepadComponent() *NotepadComponent {
	return &NotepadComponent{
		Phase:        NotepadHidden,
		Transparency: NotepadHiddenTransparency,
		Scale:        NotepadHiddenScale,
	}
}

// IsAnimating 是否有动画正在运行
func (c *NotepadComponent) IsAnimating() bool {
	return c.Animation.Active()
}

// AcceptsInput 面板当前是否响应指针和键盘
// 关闭动画期间和隐藏时不响应
func (c *NotepadComponent) AcceptsInput() bool {
	return c.Phase == NotepadOpening || c.Phase == NotepadOpen
}
