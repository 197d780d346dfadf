// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载配置与设置、创建帧时钟和场景。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/notepad/internal/frameclock"
	"github.com/decker502/notepad/pkg/config"
	"github.com/decker502/notepad/pkg/game"
	"github.com/decker502/notepad/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// 逻辑屏幕尺寸
const (
	WindowWidth  = 800
	WindowHeight = 600
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 记事本 yaml 配置路径，文件不存在时使用默认配置
	ConfigPath string
	// StartOpen 启动时是否打开记事本；nil 时使用已保存的设置（默认打开）
	StartOpen *bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	clock           *frameclock.TickSource
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.DefaultNotepadConfigPath
	}
	notepadConfig, err := config.LoadNotepadConfigOrDefault(configPath)
	if err != nil {
		return nil, fmt.Errorf("记事本配置加载失败: %w", err)
	}

	// gdata 打开失败时进入降级模式（设置只保存在内存）
	gdataManager, err := gdata.Open(gdata.Config{AppName: "notepad"})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}
	settingsManager := game.NewSettingsManager(gdataManager)
	settings := settingsManager.GetSettings()

	if settings.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	clock := frameclock.NewTickSource(nil)
	sceneManager := game.NewSceneManager()

	startOpen := settings.OpenOnStart
	if cfg.StartOpen != nil {
		startOpen = *cfg.StartOpen
	}
	scene, err := scenes.NewNotepadScene(clock, notepadConfig, settingsManager, WindowWidth, WindowHeight, startOpen)
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}
	sceneManager.SwitchTo(scene)
	log.Printf("[App] Started (config=%s, startOpen=%v)", configPath, startOpen)

	return &App{
		clock:           clock,
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）；先推进帧时钟驱动动画，再处理场景输入
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(WindowWidth, WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", WindowWidth, WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
			a.settingsManager.SetFullscreen(false)
		} else {
			ebiten.SetFullscreen(true)
			a.settingsManager.SetFullscreen(true)
		}
	}

	a.clock.Step()

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowWidth, WindowHeight
}

// Shutdown 退出前卸载场景（取消动画并保存设置）
func (a *App) Shutdown() {
	a.sceneManager.Shutdown()
	log.Printf("[App] Shutdown complete (listeners left: %d)", a.clock.ListenerCount())
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
