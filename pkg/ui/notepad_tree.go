package ui

import (
	"image/color"

	"github.com/decker502/notepad/pkg/config"
)

// 节点名称
const (
	NodeRoot           = "NotepadGui"
	NodeBackdrop       = "Backdrop"
	NodePanel          = "Notepad"
	NodeHeader         = "Header"
	NodeHeaderBottom   = "HeaderBottom"
	NodeHeaderDivider  = "HeaderDivider"
	NodeTitle          = "Title"
	NodeCloseButton    = "CloseButton"
	NodeInputContainer = "InputContainer"
	NodeNoteInput      = "NoteInput"
)

// Theme 展示树使用的样式常量
type Theme struct {
	PanelWidth      float64
	PanelHeight     float64
	HeaderHeight    float64
	CornerRadius    float64
	CloseButtonSize float64

	Title       string
	Placeholder string
	TitleSize   float64
	BodySize    float64

	Background       color.RGBA
	Header           color.RGBA
	Text             color.RGBA
	Subtitle         color.RGBA
	InputBackground  color.RGBA
	Border           color.RGBA
	CloseButton      color.RGBA
	CloseButtonHover color.RGBA
}

// ThemeFromConfig 从配置生成样式
func ThemeFromConfig(cfg *config.NotepadConfig) Theme {
	return Theme{
		PanelWidth:      cfg.Panel.Width,
		PanelHeight:     cfg.Panel.Height,
		HeaderHeight:    cfg.Panel.HeaderHeight,
		CornerRadius:    cfg.Panel.CornerRadius,
		CloseButtonSize: cfg.Panel.CloseButtonSize,

		Title:       cfg.Text.Title,
		Placeholder: cfg.Text.Placeholder,
		TitleSize:   cfg.Text.TitleSize,
		BodySize:    cfg.Text.BodySize,

		Background:       cfg.Colors.Background.RGBA(),
		Header:           cfg.Colors.Header.RGBA(),
		Text:             cfg.Colors.Text.RGBA(),
		Subtitle:         cfg.Colors.Subtitle.RGBA(),
		InputBackground:  cfg.Colors.InputBackground.RGBA(),
		Border:           cfg.Colors.Border.RGBA(),
		CloseButton:      cfg.Colors.CloseButton.RGBA(),
		CloseButtonHover: cfg.Colors.CloseButtonHover.RGBA(),
	}
}

// NotepadView 生成展示树所需的全部状态
type NotepadView struct {
	ShouldRender bool
	Transparency float64
	Scale        float64
	Text         string
	CloseHovered bool

	InputFocused   bool
	CursorVisible  bool
	CursorPosition int
}

// BuildNotepadTree 根据状态生成展示树
//
// 纯函数：相同输入总是得到相同的树。ShouldRender 为 false 时返回 nil。
// 所有颜色和透明度都是 view.Transparency 的线性函数。
func BuildNotepadTree(view NotepadView, theme Theme) *Node {
	if !view.ShouldRender {
		return nil
	}

	t := view.Transparency
	border := theme.Border
	inner := theme.CornerRadius * 2 / 3 // 12 -> 8

	closeColor := theme.CloseButton
	if view.CloseHovered {
		closeColor = theme.CloseButtonHover
	}

	backdrop := &Node{
		Name: NodeBackdrop,
		Kind: KindRectangle,
		Props: Props{
			Size:                   FullSize,
			BackgroundColor:        color.RGBA{A: 0xff},
			BackgroundTransparency: BackdropTransparency(t),
		},
		Action: ActionDismiss,
	}

	header := (&Node{
		Name: NodeHeader,
		Kind: KindRectangle,
		Props: Props{
			Size:                   NewUDim2(1, 0, 0, theme.HeaderHeight),
			BackgroundColor:        theme.Header,
			BackgroundTransparency: t,
			CornerRadius:           theme.CornerRadius,
		},
	}).add(
		// 覆盖标题栏下方两个圆角，使其与输入区域平直衔接
		&Node{
			Name: NodeHeaderBottom,
			Kind: KindRectangle,
			Props: Props{
				Position:               NewUDim2(0, 0, 1, -theme.CornerRadius),
				Size:                   NewUDim2(1, 0, 0, theme.CornerRadius),
				BackgroundColor:        theme.Header,
				BackgroundTransparency: t,
			},
		},
		&Node{
			Name: NodeHeaderDivider,
			Kind: KindRectangle,
			Props: Props{
				Position:               NewUDim2(0, 0, 1, 0),
				Size:                   NewUDim2(1, 0, 0, 1),
				BackgroundColor:        border,
				BackgroundTransparency: t,
			},
		},
		&Node{
			Name: NodeTitle,
			Kind: KindLabel,
			Props: Props{
				Position:               Pixels(14, 0),
				Size:                   NewUDim2(1, -50, 1, 0),
				BackgroundTransparency: 1,
				Text:                   theme.Title,
				TextColor:              theme.Text,
				TextTransparency:       t,
				TextSize:               theme.TitleSize,
				Bold:                   true,
				TextAlignX:             AlignStart,
				TextAlignY:             AlignCenter,
			},
		},
		&Node{
			Name: NodeCloseButton,
			Kind: KindButton,
			Props: Props{
				Anchor:                 Vec2{X: 1, Y: 0.5},
				Position:               NewUDim2(1, -10, 0.5, 0),
				Size:                   Pixels(theme.CloseButtonSize, theme.CloseButtonSize),
				BackgroundColor:        closeColor,
				BackgroundTransparency: t,
				CornerRadius:           theme.CornerRadius / 2,
				TextColor:              theme.Text,
				TextTransparency:       t,
			},
			Action: ActionClose,
		},
	)

	input := (&Node{
		Name: NodeInputContainer,
		Kind: KindRectangle,
		Props: Props{
			Position:               Pixels(10, theme.HeaderHeight+10),
			Size:                   NewUDim2(1, -20, 1, -theme.HeaderHeight-20),
			BackgroundColor:        theme.InputBackground,
			BackgroundTransparency: t,
			CornerRadius:           inner,
			BorderColor:            border,
			BorderThickness:        1,
			BorderTransparency:     t,
		},
		Action: ActionFocusInput,
	}).add(&Node{
		Name: NodeNoteInput,
		Kind: KindTextInput,
		Props: Props{
			Position:               Pixels(10, 8),
			Size:                   NewUDim2(1, -20, 1, -16),
			BackgroundTransparency: 1,
			Text:                   view.Text,
			Placeholder:            theme.Placeholder,
			PlaceholderColor:       theme.Subtitle,
			TextColor:              theme.Text,
			TextTransparency:       t,
			TextSize:               theme.BodySize,
			TextAlignX:             AlignStart,
			TextAlignY:             AlignStart,
			MultiLine:              true,
			Wrapped:                true,
			CursorVisible:          view.InputFocused && view.CursorVisible,
			CursorPosition:         view.CursorPosition,
		},
		Action: ActionFocusInput,
	})

	scale := view.Scale
	if scale == 0 {
		scale = 1
	}

	panel := (&Node{
		Name: NodePanel,
		Kind: KindRectangle,
		Props: Props{
			Anchor:                 Vec2{X: 0.5, Y: 0.5},
			Position:               NewUDim2(0.5, 0, 0.5, 0),
			Size:                   Pixels(theme.PanelWidth, theme.PanelHeight),
			BackgroundColor:        theme.Background,
			BackgroundTransparency: t,
			CornerRadius:           theme.CornerRadius,
			BorderColor:            border,
			BorderThickness:        1,
			BorderTransparency:     t,
			Scale:                  scale,
		},
		Sink: true,
	}).add(header, input)

	return (&Node{
		Name:  NodeRoot,
		Kind:  KindContainer,
		Props: Props{Size: FullSize, BackgroundTransparency: 1},
	}).add(backdrop, panel)
}
