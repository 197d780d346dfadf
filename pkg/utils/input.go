// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的输入状态
// 统一处理鼠标、触摸和键盘输入；系统只读取快照，测试可以直接构造
type InputState struct {
	// 指针位置（鼠标或第一个触摸点）
	X, Y int
	// 是否有点击/触摸事件刚刚发生
	JustPressed bool
	// 是否有活动的触摸
	IsTouching bool

	// 本帧输入的字符
	Chars []rune

	// 编辑键（含按住连发）
	Backspace bool
	Delete    bool
	Enter     bool
	Left      bool
	Right     bool
	Home      bool
	End       bool

	// Escape 本帧刚按下 ESC
	Escape bool
}

// GetInputState 获取当前帧的输入状态
// 同时支持鼠标点击和触摸输入，优先检测触摸
func GetInputState() InputState {
	state := InputState{}

	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		state.JustPressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.IsTouching = true
	} else if allTouchIDs := ebiten.AppendTouchIDs(nil); len(allTouchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(allTouchIDs[0])
		state.IsTouching = true
	} else {
		state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
		state.X, state.Y = ebiten.CursorPosition()
	}

	state.Chars = ebiten.AppendInputChars(nil)

	state.Backspace = isKeyRepeated(ebiten.KeyBackspace)
	state.Delete = isKeyRepeated(ebiten.KeyDelete)
	state.Enter = isKeyRepeated(ebiten.KeyEnter) || isKeyRepeated(ebiten.KeyNumpadEnter)
	state.Left = isKeyRepeated(ebiten.KeyArrowLeft)
	state.Right = isKeyRepeated(ebiten.KeyArrowRight)
	state.Home = inpututil.IsKeyJustPressed(ebiten.KeyHome)
	state.End = inpututil.IsKeyJustPressed(ebiten.KeyEnd)
	state.Escape = inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	return state
}

// isKeyRepeated 第1帧立即响应，按住 30 帧后每隔 3 帧响应一次
func isKeyRepeated(key ebiten.Key) bool {
	return KeyRepeatFires(inpututil.KeyPressDuration(key))
}

// KeyRepeatFires 根据按住帧数判断本帧是否触发
func KeyRepeatFires(duration int) bool {
	return duration == 1 || (duration >= 30 && duration%3 == 0)
}
