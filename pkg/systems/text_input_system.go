package systems

import (
	"log"
	"strings"

	"github.com/decker502/notepad/pkg/components"
	"github.com/decker502/notepad/pkg/ecs"
	"github.com/decker502/notepad/pkg/utils"
	"github.com/rivo/uniseg"
)

// cursorBlinkInterval 光标闪烁间隔（秒）
const cursorBlinkInterval = 0.5

// TextInputSystem 文本输入系统
// 处理文本输入框的键盘输入、光标闪烁等逻辑
//
// 光标位置以 rune 计；删除和左右移动以字素簇（grapheme cluster）为单位，
// 组合字符和 emoji 序列不会被拆开。
type TextInputSystem struct {
	entityManager *ecs.EntityManager
}

// NewTextInputSystem 创建文本输入系统
func NewTextInputSystem(em *ecs.EntityManager) *TextInputSystem {
	return &TextInputSystem{
		entityManager: em,
	}
}

// Update 更新文本输入系统
func (s *TextInputSystem) Update(state utils.InputState, deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager)

	for _, entityID := range entities {
		input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		if !ok {
			continue
		}

		// 只处理获得焦点的输入框
		if !input.IsFocused {
			input.CursorVisible = false
			input.CursorBlinkTimer = 0
			continue
		}

		s.updateCursorBlink(input, deltaTime)
		s.HandleKeys(input, state)
	}
}

// updateCursorBlink 更新光标闪烁状态
func (s *TextInputSystem) updateCursorBlink(input *components.TextInputComponent, deltaTime float64) {
	input.CursorBlinkTimer += deltaTime
	if input.CursorBlinkTimer >= cursorBlinkInterval {
		input.CursorBlinkTimer = 0
		input.CursorVisible = !input.CursorVisible
	}
}

// HandleKeys 把一帧的键盘输入应用到输入框
// 任何编辑或移动都会重置光标闪烁（输入时光标应该可见）
func (s *TextInputSystem) HandleKeys(input *components.TextInputComponent, state utils.InputState) {
	touched := false

	if len(state.Chars) > 0 {
		s.InsertText(input, string(state.Chars))
		touched = true
	}
	if state.Enter && input.MultiLine {
		s.InsertText(input, "\n")
		touched = true
	}
	if state.Backspace {
		s.DeleteBefore(input)
		touched = true
	}
	if state.Delete {
		s.DeleteAfter(input)
		touched = true
	}
	if state.Left {
		s.MoveLeft(input)
		touched = true
	}
	if state.Right {
		s.MoveRight(input)
		touched = true
	}
	if state.Home {
		s.MoveLineStart(input)
		touched = true
	}
	if state.End {
		s.MoveLineEnd(input)
		touched = true
	}

	if touched {
		input.CursorBlinkTimer = 0
		input.CursorVisible = true
	}
}

// InsertText 在光标位置插入文本
// 控制字符被丢弃；多行输入框保留 '\n'
func (s *TextInputSystem) InsertText(input *components.TextInputComponent, text string) {
	filtered := strings.Map(func(r rune) rune {
		switch {
		case r == '\n' && input.MultiLine:
			return r
		case r == '\t':
			return ' '
		case r < 0x20 || r == 0x7f:
			return -1
		default:
			return r
		}
	}, text)
	if filtered == "" {
		return
	}

	runes := []rune(input.Text)
	newRunes := []rune(filtered)

	if input.MaxLength > 0 && len(runes)+len(newRunes) > input.MaxLength {
		log.Printf("[TextInputSystem] 达到最大长度限制 (%d 字符)", input.MaxLength)
		return
	}

	cursor := clampCursor(input.CursorPosition, len(runes))

	result := make([]rune, 0, len(runes)+len(newRunes))
	result = append(result, runes[:cursor]...)
	result = append(result, newRunes...)
	result = append(result, runes[cursor:]...)

	input.Text = string(result)
	input.CursorPosition = cursor + len(newRunes)
}

// DeleteBefore 删除光标前的一个字素簇（退格）
func (s *TextInputSystem) DeleteBefore(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	cursor := clampCursor(input.CursorPosition, len(runes))
	if cursor == 0 {
		return
	}

	prev := prevBoundary(input.Text, cursor)
	input.Text = string(append(runes[:prev:prev], runes[cursor:]...))
	input.CursorPosition = prev
}

// DeleteAfter 删除光标后的一个字素簇（Delete键）
func (s *TextInputSystem) DeleteAfter(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	cursor := clampCursor(input.CursorPosition, len(runes))
	if cursor >= len(runes) {
		return
	}

	next := nextBoundary(input.Text, cursor)
	input.Text = string(append(runes[:cursor:cursor], runes[next:]...))
	input.CursorPosition = cursor
}

// MoveLeft 光标左移一个字素簇
func (s *TextInputSystem) MoveLeft(input *components.TextInputComponent) {
	cursor := clampCursor(input.CursorPosition, len([]rune(input.Text)))
	if cursor > 0 {
		input.CursorPosition = prevBoundary(input.Text, cursor)
	}
}

// MoveRight 光标右移一个字素簇
func (s *TextInputSystem) MoveRight(input *components.TextInputComponent) {
	n := len([]rune(input.Text))
	cursor := clampCursor(input.CursorPosition, n)
	if cursor < n {
		input.CursorPosition = nextBoundary(input.Text, cursor)
	}
}

// MoveLineStart 光标移到当前行开头（Home）
func (s *TextInputSystem) MoveLineStart(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	cursor := clampCursor(input.CursorPosition, len(runes))
	for cursor > 0 && runes[cursor-1] != '\n' {
		cursor--
	}
	input.CursorPosition = cursor
}

// MoveLineEnd 光标移到当前行末尾（End）
func (s *TextInputSystem) MoveLineEnd(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	cursor := clampCursor(input.CursorPosition, len(runes))
	for cursor < len(runes) && runes[cursor] != '\n' {
		cursor++
	}
	input.CursorPosition = cursor
}

func clampCursor(cursor, n int) int {
	if cursor < 0 {
		return 0
	}
	if cursor > n {
		return n
	}
	return cursor
}

// graphemeBoundaries 返回所有字素簇边界的 rune 索引（含 0 和文本末尾）
func graphemeBoundaries(text string) []int {
	bounds := []int{0}
	idx := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		idx += len(g.Runes())
		bounds = append(bounds, idx)
	}
	return bounds
}

// prevBoundary 小于 cursor 的最大边界
func prevBoundary(text string, cursor int) int {
	prev := 0
	for _, b := range graphemeBoundaries(text) {
		if b >= cursor {
			break
		}
		prev = b
	}
	return prev
}

// nextBoundary 大于 cursor 的最小边界
func nextBoundary(text string, cursor int) int {
	bounds := graphemeBoundaries(text)
	for _, b := range bounds {
		if b > cursor {
			return b
		}
	}
	return bounds[len(bounds)-1]
}
