package ui

import "image/color"

// Opacity 透明度转不透明度，超出 [0, 1] 的输入会被截断
func Opacity(transparency float64) float64 {
	switch {
	case transparency <= 0:
		return 1
	case transparency >= 1:
		return 0
	default:
		return 1 - transparency
	}
}

// Faded 按透明度衰减颜色，返回预乘 alpha 的 color.RGBA（Ebitengine 约定）
func Faded(c color.RGBA, transparency float64) color.RGBA {
	a := Opacity(transparency)
	scale := func(v uint8) uint8 {
		return uint8(float64(v)*a + 0.5)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}

// BackdropTransparency 遮罩透明度：面板完全显示时 0.4，隐藏时 1
func BackdropTransparency(transparency float64) float64 {
	return 0.4 + transparency*0.6
}
