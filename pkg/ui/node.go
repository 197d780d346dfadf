// Package ui 描述记事本浮层的展示树
//
// 展示树是纯数据：BuildNotepadTree 根据当前状态生成节点树，
// Layout 计算每个节点的屏幕矩形，HitTest 做指针命中检测。
// 真正的绘制由 systems.NotepadRenderSystem 完成，本包不依赖 Ebitengine。
package ui

import "image/color"

// Kind 节点类型
type Kind int

const (
	KindContainer Kind = iota
	KindRectangle
	KindLabel
	KindButton
	KindTextInput
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindRectangle:
		return "rectangle"
	case KindLabel:
		return "label"
	case KindButton:
		return "button"
	case KindTextInput:
		return "textinput"
	default:
		return "unknown"
	}
}

// Action 节点绑定的指针按下事件
type Action int

const (
	ActionNone       Action = iota
	ActionDismiss           // 点击遮罩关闭
	ActionClose             // 点击关闭按钮
	ActionFocusInput        // 点击输入框获得焦点
)

// Align 文本对齐
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// UDim2 相对父节点的二维尺寸/位置：Scale 为父尺寸比例，Offset 为像素
type UDim2 struct {
	XScale, XOffset float64
	YScale, YOffset float64
}

// NewUDim2 按 (xScale, xOffset, yScale, yOffset) 创建
func NewUDim2(xScale, xOffset, yScale, yOffset float64) UDim2 {
	return UDim2{XScale: xScale, XOffset: xOffset, YScale: yScale, YOffset: yOffset}
}

// FullSize 占满父节点
var FullSize = UDim2{XScale: 1, YScale: 1}

// Pixels 纯像素尺寸/位置
func Pixels(x, y float64) UDim2 {
	return UDim2{XOffset: x, YOffset: y}
}

// Vec2 二维向量
type Vec2 struct {
	X, Y float64
}

// Rect 屏幕矩形
type Rect struct {
	X, Y, W, H float64
}

// Contains 点是否在矩形内（左上闭、右下开）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center 矩形中心
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Props 节点属性包
// 所有 Transparency 取值 [0, 1]，1 = 完全透明
type Props struct {
	Position UDim2
	Size     UDim2
	Anchor   Vec2 // 锚点，(0.5, 0.5) 表示以中心定位

	BackgroundColor        color.RGBA
	BackgroundTransparency float64
	CornerRadius           float64

	BorderColor        color.RGBA
	BorderThickness    float64 // 0 = 无边框
	BorderTransparency float64

	// Scale 以节点中心缩放自身及全部子节点，0 视为 1
	Scale float64

	Text             string
	Placeholder      string
	PlaceholderColor color.RGBA
	TextColor        color.RGBA
	TextTransparency float64
	TextSize         float64
	Bold             bool
	TextAlignX       Align
	TextAlignY       Align
	MultiLine        bool
	Wrapped          bool

	// 光标（仅 KindTextInput）
	CursorVisible  bool
	CursorPosition int
}

// Node 展示树节点
type Node struct {
	Name     string
	Kind     Kind
	Props    Props
	Action   Action
	Sink     bool // 吸收指针事件，阻止下层节点响应
	Children []*Node

	// 以下字段由 Layout 填充
	Bounds Rect    // 屏幕矩形（已应用缩放）
	Factor float64 // 累计缩放系数
}

func (n *Node) add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

func (n *Node) interactive() bool {
	return n.Action != ActionNone || n.Sink
}

// Walk 先序遍历；fn 返回 false 时跳过该节点的子树
func Walk(root *Node, fn func(n *Node) bool) {
	if root == nil || !fn(root) {
		return
	}
	for _, child := range root.Children {
		Walk(child, fn)
	}
}

// Find 按名称查找节点
func Find(root *Node, name string) *Node {
	var found *Node
	Walk(root, func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.Name == name {
			found = n
			return false
		}
		return true
	})
	return found
}
