package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrappedLine 换行后的一行
type WrappedLine struct {
	Text  string // 行内容（不含 '\n'）
	Start int    // 该行首字符在原文中的 rune 索引
}

// WrapLines 将多行文本按宽度自动换行
//
// 参数:
//   - textStr: 原文，'\n' 为硬换行
//   - measure: 测量一段文本宽度（像素）
//   - maxWidth: 最大宽度（像素），<= 0 时只按硬换行拆分
//
// 换行规则:
//   - 优先在行内最后一个空格之后断行，空格保留在上一行末尾
//   - 单词超过最大宽度时按字符强制断行
//   - 每行至少包含一个字符，保证前进
//
// 各行 Start 与 Text 拼接后可还原原文的 rune 偏移，用于定位光标。
func WrapLines(textStr string, measure func(string) float64, maxWidth float64) []WrappedLine {
	var lines []WrappedLine
	offset := 0
	for _, para := range strings.Split(textStr, "\n") {
		runes := []rune(para)
		lines = append(lines, wrapParagraph(runes, offset, measure, maxWidth)...)
		offset += len(runes) + 1
	}
	return lines
}

func wrapParagraph(runes []rune, base int, measure func(string) float64, maxWidth float64) []WrappedLine {
	if len(runes) == 0 || measure == nil || maxWidth <= 0 {
		return []WrappedLine{{Text: string(runes), Start: base}}
	}

	var lines []WrappedLine
	start := 0
	for start < len(runes) {
		end := start
		lastSpace := -1
		for end < len(runes) {
			if end > start && measure(string(runes[start:end+1])) > maxWidth {
				break
			}
			if runes[end] == ' ' {
				lastSpace = end
			}
			end++
		}

		// 未到段尾且行内有空格：在空格后断行
		if end < len(runes) && lastSpace >= start {
			end = lastSpace + 1
		}

		lines = append(lines, WrappedLine{Text: string(runes[start:end]), Start: base + start})
		start = end
	}
	return lines
}

// LocateCursor 把原文中的 rune 索引映射为 (行号, 列号)
func LocateCursor(lines []WrappedLine, cursor int) (line, col int) {
	if len(lines) == 0 {
		return 0, 0
	}
	for i := len(lines) - 1; i >= 0; i-- {
		if cursor >= lines[i].Start {
			col = cursor - lines[i].Start
			if n := len([]rune(lines[i].Text)); col > n {
				col = n
			}
			return i, col
		}
	}
	return 0, 0
}

// WrapText 将文本按指定字体和宽度自动换行
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
func WrapText(textStr string, font text.Face, maxWidth float64) []string {
	wrapped := WrapLines(textStr, func(s string) float64 { return MeasureTextWidth(s, font) }, maxWidth)
	lines := make([]string, len(wrapped))
	for i, l := range wrapped {
		lines[i] = l.Text
	}
	return lines
}

// MeasureTextWidth 测量文本宽度
func MeasureTextWidth(textStr string, font text.Face) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}
