package modules

import (
	"fmt"
	"log"

	"github.com/decker502/notepad/internal/frameclock"
	"github.com/decker502/notepad/pkg/components"
	"github.com/decker502/notepad/pkg/config"
	"github.com/decker502/notepad/pkg/ecs"
	"github.com/decker502/notepad/pkg/systems"
	"github.com/decker502/notepad/pkg/ui"
	"github.com/decker502/notepad/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// NotepadModule 记事本浮层模块
// 封装所有与记事本相关的功能，包括：
//   - 记事本实体（可见性组件 + 文本输入组件）的创建和销毁
//   - 可见性状态机与打开/关闭动画
//   - 指针与键盘交互（关闭手势、焦点、文本编辑）
//   - 展示树的生成、布局与渲染
//
// 打开状态由调用方持有：调用方通过 SetOpen 下发期望状态，
// 用户关闭手势只通过 OnClose 回调上报，模块自身不会修改期望状态。
type NotepadModule struct {
	// ECS 框架
	entityManager *ecs.EntityManager

	// 系统（内部管理）
	visibilitySystem *systems.NotepadVisibilitySystem
	inputSystem      *systems.NotepadInputSystem
	textInputSystem  *systems.TextInputSystem
	renderSystem     *systems.NotepadRenderSystem

	notepadEntity ecs.EntityID
	theme         ui.Theme

	onClose func()

	windowWidth  int
	windowHeight int

	disposed bool
}

// NotepadCallbacks 记事本回调函数集合
type NotepadCallbacks struct {
	// OnClose 用户通过遮罩、关闭按钮或 ESC 请求关闭时调用（可选）
	// 程序调用 SetOpen(false) 不会触发
	OnClose func()
}

// NotepadState 记事本状态快照（用于调试和验证工具）
type NotepadState struct {
	Phase        components.NotepadPhase
	IsOpen       bool
	IsClosing    bool
	ShouldRender bool
	Transparency float64
	Scale        float64
	CloseHovered bool
	Animating    bool
	Text         string
	Focused      bool
}

// NewNotepadModule 创建记事本模块
//
// 参数:
//   - em: EntityManager 实例
//   - clock: 帧时钟（动画驱动订阅它）
//   - cfg: 记事本配置；nil 时使用默认配置
//   - windowWidth, windowHeight: 逻辑窗口尺寸
//   - callbacks: 回调函数集合
//
// 初始状态为 Hidden，不渲染任何节点。
func NewNotepadModule(
	em *ecs.EntityManager,
	clock frameclock.Clock,
	cfg *config.NotepadConfig,
	windowWidth, windowHeight int,
	callbacks NotepadCallbacks,
) (*NotepadModule, error) {
	if cfg == nil {
		cfg = config.DefaultNotepadConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid notepad config: %w", err)
	}

	renderSystem, err := systems.NewNotepadRenderSystem()
	if err != nil {
		return nil, fmt.Errorf("failed to create notepad render system: %w", err)
	}

	m := &NotepadModule{
		entityManager:    em,
		visibilitySystem: systems.NewNotepadVisibilitySystem(em, clock, cfg.Animation),
		textInputSystem:  systems.NewTextInputSystem(em),
		renderSystem:     renderSystem,
		theme:            ui.ThemeFromConfig(cfg),
		onClose:          callbacks.OnClose,
		windowWidth:      windowWidth,
		windowHeight:     windowHeight,
	}
	m.inputSystem = systems.NewNotepadInputSystem(em, m.handleClose)

	m.notepadEntity = em.CreateEntity()
	ecs.AddComponent(em, m.notepadEntity, components.NewNotepadComponent())
	ecs.AddComponent(em, m.notepadEntity, &components.TextInputComponent{
		Placeholder: cfg.Text.Placeholder,
		MultiLine:   true,
	})

	log.Printf("[NotepadModule] Initialized (entity %d, window %dx%d)", m.notepadEntity, windowWidth, windowHeight)
	return m, nil
}

func (m *NotepadModule) handleClose() {
	if m.onClose != nil {
		m.onClose()
	}
}

func (m *NotepadModule) notepad() (*components.NotepadComponent, bool) {
	if m.disposed {
		return nil, false
	}
	return ecs.GetComponent[*components.NotepadComponent](m.entityManager, m.notepadEntity)
}

func (m *NotepadModule) textInput() (*components.TextInputComponent, bool) {
	if m.disposed {
		return nil, false
	}
	return ecs.GetComponent[*components.TextInputComponent](m.entityManager, m.notepadEntity)
}

// SetOpen 设置期望的打开状态
func (m *NotepadModule) SetOpen(open bool) {
	if m.disposed {
		return
	}
	m.visibilitySystem.SetOpen(m.notepadEntity, open)
}

// IsOpen 返回调用方最后一次下发的期望状态
func (m *NotepadModule) IsOpen() bool {
	notepad, ok := m.notepad()
	return ok && notepad.IsOpen
}

// Phase 返回当前可见性阶段
func (m *NotepadModule) Phase() components.NotepadPhase {
	notepad, ok := m.notepad()
	if !ok {
		return components.NotepadHidden
	}
	return notepad.Phase
}

// Text 返回当前笔记文本（仅内存）
func (m *NotepadModule) Text() string {
	input, ok := m.textInput()
	if !ok {
		return ""
	}
	return input.Text
}

// SetText 替换笔记文本
func (m *NotepadModule) SetText(text string) {
	if input, ok := m.textInput(); ok {
		input.SetText(text)
	}
}

// State 返回状态快照
func (m *NotepadModule) State() NotepadState {
	notepad, ok := m.notepad()
	if !ok {
		return NotepadState{Phase: components.NotepadHidden, Transparency: 1, Scale: components.NotepadHiddenScale}
	}
	state := NotepadState{
		Phase:        notepad.Phase,
		IsOpen:       notepad.IsOpen,
		IsClosing:    notepad.IsClosing,
		ShouldRender: notepad.ShouldRender,
		Transparency: notepad.Transparency,
		Scale:        notepad.Scale,
		CloseHovered: notepad.CloseHovered,
		Animating:    notepad.IsAnimating(),
	}
	if input, ok := m.textInput(); ok {
		state.Text = input.Text
		state.Focused = input.IsFocused
	}
	return state
}

// Update 处理一帧输入
// 动画进度由帧时钟推进，不依赖这里的 deltaTime
func (m *NotepadModule) Update(state utils.InputState, deltaTime float64) {
	if m.disposed {
		return
	}
	m.inputSystem.Update(m.notepadEntity, m.Tree(), state)

	// 本帧的关闭手势已进入关闭动画：同帧输入的字符不再写入
	notepad, ok := m.notepad()
	if !ok || !notepad.AcceptsInput() {
		if input, ok := m.textInput(); ok {
			input.IsFocused = false
			input.CursorVisible = false
		}
		return
	}
	m.textInputSystem.Update(state, deltaTime)
}

// Tree 根据当前状态生成并布局展示树；隐藏时返回 nil
func (m *NotepadModule) Tree() *ui.Node {
	notepad, ok := m.notepad()
	if !ok {
		return nil
	}
	view := ui.NotepadView{
		ShouldRender: notepad.ShouldRender,
		Transparency: notepad.Transparency,
		Scale:        notepad.Scale,
		CloseHovered: notepad.CloseHovered,
	}
	if input, ok := m.textInput(); ok {
		view.Text = input.Text
		view.InputFocused = input.IsFocused
		view.CursorVisible = input.IsFocused && input.CursorVisible
		view.CursorPosition = input.CursorPosition
	}

	root := ui.BuildNotepadTree(view, m.theme)
	ui.Layout(root, float64(m.windowWidth), float64(m.windowHeight))
	return root
}

// Draw 渲染记事本到屏幕
func (m *NotepadModule) Draw(screen *ebiten.Image) {
	m.renderSystem.Draw(screen, m.Tree())
}

// Dispose 卸载模块
// 取消正在运行的动画并销毁实体；之后不会再有任何回调，帧时钟上不留订阅
func (m *NotepadModule) Dispose() {
	if m.disposed {
		return
	}
	m.visibilitySystem.Teardown(m.notepadEntity)
	m.entityManager.DestroyEntity(m.notepadEntity)
	m.entityManager.RemoveMarkedEntities()
	m.disposed = true
	log.Printf("[NotepadModule] Disposed")
}
