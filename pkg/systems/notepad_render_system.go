package systems

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/decker502/notepad/pkg/ui"
	"github.com/decker502/notepad/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// NotepadRenderSystem 负责把已布局的展示树绘制到屏幕
// 绘制顺序即树的先序遍历顺序：遮罩 -> 面板 -> 标题栏 -> 输入区
type NotepadRenderSystem struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace
}

type faceKey struct {
	bold bool
	size float64
}

// NewNotepadRenderSystem 创建渲染系统，使用内置 Go 字体
func NewNotepadRenderSystem() (*NotepadRenderSystem, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}
	return &NotepadRenderSystem{
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]*text.GoTextFace),
	}, nil
}

// Face 返回指定字号的字体（按字号缓存）
func (s *NotepadRenderSystem) Face(size float64, bold bool) *text.GoTextFace {
	key := faceKey{bold: bold, size: size}
	if face, ok := s.faces[key]; ok {
		return face
	}
	src := s.regular
	if bold {
		src = s.bold
	}
	face := &text.GoTextFace{Source: src, Size: size}
	s.faces[key] = face
	return face
}

// Draw 绘制整棵展示树；root 为 nil 时不绘制
func (s *NotepadRenderSystem) Draw(screen *ebiten.Image, root *ui.Node) {
	ui.Walk(root, func(n *ui.Node) bool {
		s.drawNode(screen, n)
		return true
	})
}

func (s *NotepadRenderSystem) drawNode(screen *ebiten.Image, n *ui.Node) {
	p := n.Props
	b := n.Bounds
	radius := p.CornerRadius * n.Factor

	if n.Kind != ui.KindContainer && p.BackgroundTransparency < 1 {
		fillRoundedRect(screen, b, radius, ui.Faded(p.BackgroundColor, p.BackgroundTransparency))
	}
	if p.BorderThickness > 0 && p.BorderTransparency < 1 {
		strokeRoundedRect(screen, b, radius, p.BorderThickness*n.Factor, ui.Faded(p.BorderColor, p.BorderTransparency))
	}

	switch n.Kind {
	case ui.KindLabel:
		s.drawLabel(screen, n)
	case ui.KindButton:
		drawCloseGlyph(screen, b, n.Factor, ui.Faded(p.TextColor, p.TextTransparency))
	case ui.KindTextInput:
		s.drawTextInput(screen, n)
	}
}

func (s *NotepadRenderSystem) drawLabel(screen *ebiten.Image, n *ui.Node) {
	p := n.Props
	if p.Text == "" || p.TextTransparency >= 1 {
		return
	}
	face := s.Face(p.TextSize*n.Factor, p.Bold)
	w, h := text.Measure(p.Text, face, 0)

	x := alignOffset(n.Bounds.X, n.Bounds.W, w, p.TextAlignX)
	y := alignOffset(n.Bounds.Y, n.Bounds.H, h, p.TextAlignY)
	drawString(screen, p.Text, face, x, y, ui.Faded(p.TextColor, p.TextTransparency))
}

func (s *NotepadRenderSystem) drawTextInput(screen *ebiten.Image, n *ui.Node) {
	p := n.Props
	if p.TextTransparency >= 1 {
		return
	}

	b := n.Bounds
	clip := image.Rect(int(b.X), int(b.Y), int(b.X+b.W+0.5), int(b.Y+b.H+0.5))
	dst, ok := screen.SubImage(clip).(*ebiten.Image)
	if !ok {
		return
	}

	face := s.Face(p.TextSize*n.Factor, false)
	metrics := face.Metrics()
	lineHeight := metrics.HAscent + metrics.HDescent + metrics.HLineGap

	if p.Text == "" && !p.CursorVisible {
		placeholderColor := ui.Faded(p.PlaceholderColor, p.TextTransparency)
		for i, line := range utils.WrapText(p.Placeholder, face, b.W) {
			drawString(dst, line, face, b.X, b.Y+float64(i)*lineHeight, placeholderColor)
		}
		return
	}

	measure := func(str string) float64 { return utils.MeasureTextWidth(str, face) }
	lines := utils.WrapLines(p.Text, measure, b.W)
	textColor := ui.Faded(p.TextColor, p.TextTransparency)
	for i, line := range lines {
		drawString(dst, line.Text, face, b.X, b.Y+float64(i)*lineHeight, textColor)
	}

	if p.CursorVisible {
		row, col := utils.LocateCursor(lines, p.CursorPosition)
		prefix := ""
		if row < len(lines) {
			prefix = string([]rune(lines[row].Text)[:col])
		}
		cx := float32(b.X + measure(prefix))
		cy := float32(b.Y + float64(row)*lineHeight)
		vector.StrokeLine(dst, cx, cy, cx, cy+float32(lineHeight), float32(n.Factor), textColor, true)
	}
}

// alignOffset 在 [start, start+span) 内按对齐方式放置长度为 size 的内容
func alignOffset(start, span, size float64, align ui.Align) float64 {
	switch align {
	case ui.AlignCenter:
		return start + (span-size)/2
	case ui.AlignEnd:
		return start + span - size
	default:
		return start
	}
}

func drawString(dst *ebiten.Image, str string, face text.Face, x, y float64, clr color.RGBA) {
	if str == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, face, op)
}

// roundedRectPath 圆角矩形路径，半径不超过短边的一半
func roundedRectPath(r ui.Rect, radius float64) *vector.Path {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	rad := float32(radius)
	if rad > w/2 {
		rad = w / 2
	}
	if rad > h/2 {
		rad = h / 2
	}
	if rad < 0 {
		rad = 0
	}

	var path vector.Path
	path.MoveTo(x+rad, y)
	path.LineTo(x+w-rad, y)
	path.QuadTo(x+w, y, x+w, y+rad)
	path.LineTo(x+w, y+h-rad)
	path.QuadTo(x+w, y+h, x+w-rad, y+h)
	path.LineTo(x+rad, y+h)
	path.QuadTo(x, y+h, x, y+h-rad)
	path.LineTo(x, y+rad)
	path.QuadTo(x, y, x+rad, y)
	path.Close()
	return &path
}

func fillRoundedRect(dst *ebiten.Image, r ui.Rect, radius float64, clr color.RGBA) {
	if clr.A == 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	drawOp := &vector.DrawPathOptions{AntiAlias: true}
	drawOp.ColorScale.ScaleWithColor(clr)
	vector.FillPath(dst, roundedRectPath(r, radius), nil, drawOp)
}

func strokeRoundedRect(dst *ebiten.Image, r ui.Rect, radius, width float64, clr color.RGBA) {
	if clr.A == 0 || width <= 0 {
		return
	}
	strokeOp := &vector.StrokeOptions{Width: float32(width), LineJoin: vector.LineJoinRound}
	drawOp := &vector.DrawPathOptions{AntiAlias: true}
	drawOp.ColorScale.ScaleWithColor(clr)
	vector.StrokePath(dst, roundedRectPath(r, radius), strokeOp, drawOp)
}

// drawCloseGlyph 在按钮中央绘制 "×"
func drawCloseGlyph(dst *ebiten.Image, r ui.Rect, factor float64, clr color.RGBA) {
	if clr.A == 0 {
		return
	}
	inset := r.W * 0.32
	x0, y0 := float32(r.X+inset), float32(r.Y+inset)
	x1, y1 := float32(r.X+r.W-inset), float32(r.Y+r.H-inset)
	width := float32(1.5 * factor)
	vector.StrokeLine(dst, x0, y0, x1, y1, width, clr, true)
	vector.StrokeLine(dst, x0, y1, x1, y0, width, clr, true)
}
