package systems

import (
	"log"

	"github.com/decker502/notepad/internal/frameclock"
	"github.com/decker502/notepad/internal/tween"
	"github.com/decker502/notepad/pkg/components"
	"github.com/decker502/notepad/pkg/config"
	"github.com/decker502/notepad/pkg/ecs"
	"github.com/decker502/notepad/pkg/utils"
)

// NotepadEvent 状态机事件
type NotepadEvent int

const (
	// NotepadEventOpen 调用方要求打开
	NotepadEventOpen NotepadEvent = iota
	// NotepadEventClose 调用方要求关闭
	NotepadEventClose
	// NotepadEventAnimationDone 当前动画播放完毕
	NotepadEventAnimationDone
)

func (e NotepadEvent) String() string {
	switch e {
	case NotepadEventOpen:
		return "open"
	case NotepadEventClose:
		return "close"
	case NotepadEventAnimationDone:
		return "animationDone"
	default:
		return "unknown"
	}
}

// notepadTransitions 状态转移表：当前阶段 + 事件 -> 下一阶段
// 表中不存在的组合一律忽略
var notepadTransitions = map[components.NotepadPhase]map[NotepadEvent]components.NotepadPhase{
	components.NotepadHidden: {
		NotepadEventOpen: components.NotepadOpening,
	},
	components.NotepadOpening: {
		NotepadEventAnimationDone: components.NotepadOpen,
		NotepadEventClose:         components.NotepadClosing,
	},
	components.NotepadOpen: {
		NotepadEventClose: components.NotepadClosing,
	},
	components.NotepadClosing: {
		NotepadEventAnimationDone: components.NotepadHidden,
	},
}

// NotepadVisibilitySystem 记事本可见性状态机
//
// 职责：
//   - 根据 IsOpen 变化驱动 Hidden -> Opening -> Open -> Closing -> Hidden 循环
//   - 每次进入动画阶段前取消旧的动画驱动，保证同一时刻最多一个订阅
//   - 动画结束时把透明度和缩放对齐到精确端点
//
// 关闭动画进行中不会响应打开请求；IsOpen 会被记录，关闭完成后再打开。
type NotepadVisibilitySystem struct {
	entityManager *ecs.EntityManager
	clock         frameclock.Clock
	animIn        config.AnimationSpec
	animOut       config.AnimationSpec
}

// NewNotepadVisibilitySystem 创建可见性状态机
func NewNotepadVisibilitySystem(em *ecs.EntityManager, clock frameclock.Clock, anim config.AnimationConfig) *NotepadVisibilitySystem {
	return &NotepadVisibilitySystem{
		entityManager: em,
		clock:         clock,
		animIn:        anim.In,
		animOut:       anim.Out,
	}
}

// SetOpen 记录调用方期望的打开状态并立即求值
func (s *NotepadVisibilitySystem) SetOpen(entityID ecs.EntityID, open bool) {
	notepad, ok := ecs.GetComponent[*components.NotepadComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	notepad.IsOpen = open
	s.evaluate(entityID, notepad)
}

// evaluate 根据当前状态决定是否触发打开/关闭事件
func (s *NotepadVisibilitySystem) evaluate(entityID ecs.EntityID, notepad *components.NotepadComponent) {
	switch {
	case notepad.IsOpen && !notepad.IsClosing && notepad.Phase == components.NotepadHidden:
		s.fire(entityID, notepad, NotepadEventOpen)
	case !notepad.IsOpen && notepad.ShouldRender && !notepad.IsClosing:
		s.fire(entityID, notepad, NotepadEventClose)
	}
}

// fire 按转移表执行一次状态转移，返回是否发生转移
func (s *NotepadVisibilitySystem) fire(entityID ecs.EntityID, notepad *components.NotepadComponent, event NotepadEvent) bool {
	next, ok := notepadTransitions[notepad.Phase][event]
	if !ok {
		return false
	}

	log.Printf("[NotepadVisibilitySystem] entity %d: %s --(%s)--> %s", entityID, notepad.Phase, event, next)
	notepad.Phase = next

	switch next {
	case components.NotepadOpening:
		s.enterOpening(entityID, notepad)
	case components.NotepadOpen:
		s.enterOpen(notepad)
	case components.NotepadClosing:
		s.enterClosing(entityID, notepad)
	case components.NotepadHidden:
		s.enterHidden(entityID, notepad)
	}
	return true
}

func (s *NotepadVisibilitySystem) enterOpening(entityID ecs.EntityID, notepad *components.NotepadComponent) {
	notepad.ShouldRender = true
	s.startAnimation(entityID, notepad, s.animIn,
		func(eased float64) {
			notepad.Transparency = utils.Lerp(components.NotepadHiddenTransparency, components.NotepadShownTransparency, eased)
			notepad.Scale = utils.Lerp(components.NotepadHiddenScale, components.NotepadShownScale, eased)
		},
	)
}

func (s *NotepadVisibilitySystem) enterOpen(notepad *components.NotepadComponent) {
	notepad.Animation = nil
	notepad.Transparency = components.NotepadShownTransparency
	notepad.Scale = components.NotepadShownScale
}

func (s *NotepadVisibilitySystem) enterClosing(entityID ecs.EntityID, notepad *components.NotepadComponent) {
	notepad.IsClosing = true
	notepad.CloseHovered = false
	s.startAnimation(entityID, notepad, s.animOut,
		func(eased float64) {
			notepad.Transparency = utils.Lerp(components.NotepadShownTransparency, components.NotepadHiddenTransparency, eased)
			notepad.Scale = utils.Lerp(components.NotepadShownScale, components.NotepadHiddenScale, eased)
		},
	)
}

func (s *NotepadVisibilitySystem) enterHidden(entityID ecs.EntityID, notepad *components.NotepadComponent) {
	notepad.Animation = nil
	notepad.IsClosing = false
	notepad.ShouldRender = false
	notepad.CloseHovered = false
	notepad.Transparency = components.NotepadHiddenTransparency
	notepad.Scale = components.NotepadHiddenScale

	// IsClosing 落下后重新求值：关闭期间收到的打开请求在此生效
	s.evaluate(entityID, notepad)
}

// startAnimation 取消旧驱动后启动新驱动
func (s *NotepadVisibilitySystem) startAnimation(entityID ecs.EntityID, notepad *components.NotepadComponent, spec config.AnimationSpec, onProgress func(eased float64)) {
	notepad.Animation.Cancel()

	var handle *tween.Handle
	handle = tween.Run(s.clock, spec.Duration, spec.EasingFunc(), onProgress, func() {
		// 只接受当前驱动的完成通知
		if notepad.Animation != handle {
			return
		}
		s.fire(entityID, notepad, NotepadEventAnimationDone)
	})
	notepad.Animation = handle
}

// Teardown 卸载：取消动画并恢复初始状态，不会再有任何回调
func (s *NotepadVisibilitySystem) Teardown(entityID ecs.EntityID) {
	notepad, ok := ecs.GetComponent[*components.NotepadComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	notepad.Animation.Cancel()
	*notepad = *components.NewNotepadComponent()
	log.Printf("[NotepadVisibilitySystem] entity %d torn down", entityID)
}
