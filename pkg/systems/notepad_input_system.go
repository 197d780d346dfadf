package systems

import (
	"log"

	"github.com/decker502/notepad/pkg/components"
	"github.com/decker502/notepad/pkg/ecs"
	"github.com/decker502/notepad/pkg/ui"
	"github.com/decker502/notepad/pkg/utils"
)

// NotepadInputSystem 记事本指针交互系统
//
// 职责：
//   - 更新关闭按钮悬停状态（只影响按钮背景色）
//   - 点击遮罩或关闭按钮、按下 ESC 时调用 onClose（每次手势恰好一次）
//   - 点击输入区获得焦点，点击面板其它位置失去焦点
//
// 命中检测基于上一次布局后的展示树；关闭动画期间和隐藏时不响应任何输入。
type NotepadInputSystem struct {
	entityManager *ecs.EntityManager
	onClose       func()
}

// NewNotepadInputSystem 创建指针交互系统
// onClose 为用户手势关闭回调，可为 nil
func NewNotepadInputSystem(em *ecs.EntityManager, onClose func()) *NotepadInputSystem {
	return &NotepadInputSystem{
		entityManager: em,
		onClose:       onClose,
	}
}

// Update 处理一帧输入
// tree 为当前已布局的展示树（ShouldRender 为 false 时是 nil）
func (s *NotepadInputSystem) Update(entityID ecs.EntityID, tree *ui.Node, state utils.InputState) {
	notepad, ok := ecs.GetComponent[*components.NotepadComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)

	if !notepad.AcceptsInput() || tree == nil {
		notepad.CloseHovered = false
		if input != nil {
			input.IsFocused = false
		}
		return
	}

	hit := ui.HitTest(tree, float64(state.X), float64(state.Y))

	// 悬停：触摸设备没有悬停概念，只在鼠标下更新
	if !state.IsTouching {
		notepad.CloseHovered = hit != nil && hit.Action == ui.ActionClose
	}

	if state.Escape {
		log.Printf("[NotepadInputSystem] ESC pressed, requesting close")
		s.requestClose()
		return
	}

	if !state.JustPressed || hit == nil {
		return
	}

	switch hit.Action {
	case ui.ActionClose:
		log.Printf("[NotepadInputSystem] close button clicked")
		s.requestClose()
	case ui.ActionDismiss:
		log.Printf("[NotepadInputSystem] backdrop clicked at (%d, %d)", state.X, state.Y)
		s.requestClose()
	case ui.ActionFocusInput:
		if input != nil && !input.IsFocused {
			input.IsFocused = true
			input.CursorVisible = true
			input.CursorBlinkTimer = 0
		}
	default:
		// 面板其它区域：吸收点击并失去焦点
		if input != nil {
			input.IsFocused = false
		}
	}
}

func (s *NotepadInputSystem) requestClose() {
	if s.onClose != nil {
		s.onClose()
	}
}
