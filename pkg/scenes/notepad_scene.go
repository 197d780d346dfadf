package scenes

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/notepad/internal/frameclock"
	"github.com/decker502/notepad/pkg/config"
	"github.com/decker502/notepad/pkg/ecs"
	"github.com/decker502/notepad/pkg/game"
	"github.com/decker502/notepad/pkg/modules"
	"github.com/decker502/notepad/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// NotepadToggleKey 打开/关闭记事本的快捷键
// 不使用字母键，避免与输入冲突
const NotepadToggleKey = ebiten.KeyF2

var sceneBackground = color.RGBA{R: 0x2a, G: 0x3b, B: 0x4c, A: 0xff}

// NotepadScene 宿主场景
// 持有记事本的期望打开状态：F2 切换，用户关闭手势通过 OnClose 回写
type NotepadScene struct {
	entityManager *ecs.EntityManager
	notepad       *modules.NotepadModule
	settings      *game.SettingsManager

	hintFace *text.GoTextFace
	open     bool
}

// NewNotepadScene 创建宿主场景
//
// 参数:
//   - clock: 帧时钟（由 App 每帧推进）
//   - cfg: 记事本配置
//   - settings: 应用设置（可为 nil）
//   - startOpen: 启动时是否打开记事本
func NewNotepadScene(clock frameclock.Clock, cfg *config.NotepadConfig, settings *game.SettingsManager, windowWidth, windowHeight int, startOpen bool) (*NotepadScene, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load hint font: %w", err)
	}

	s := &NotepadScene{
		entityManager: ecs.NewEntityManager(),
		settings:      settings,
		hintFace:      &text.GoTextFace{Source: src, Size: 14},
	}

	s.notepad, err = modules.NewNotepadModule(s.entityManager, clock, cfg, windowWidth, windowHeight, modules.NotepadCallbacks{
		OnClose: func() {
			log.Printf("[NotepadScene] Notepad closed by user")
			s.setOpen(false)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create notepad module: %w", err)
	}

	if startOpen {
		s.setOpen(true)
	}
	return s, nil
}

func (s *NotepadScene) setOpen(open bool) {
	s.open = open
	s.notepad.SetOpen(open)
	if s.settings != nil {
		s.settings.SetOpenOnStart(open)
	}
}

// Update 更新场景
func (s *NotepadScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(NotepadToggleKey) {
		s.setOpen(!s.open)
	}
	s.notepad.Update(utils.GetInputState(), deltaTime)
}

// Draw 绘制场景
func (s *NotepadScene) Draw(screen *ebiten.Image) {
	screen.Fill(sceneBackground)

	op := &text.DrawOptions{}
	op.GeoM.Translate(16, 16)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 0xc8, G: 0xc8, B: 0xd2, A: 0xff})
	text.Draw(screen, fmt.Sprintf("F2: toggle notepad   F11: fullscreen   [%s]", s.notepad.Phase()), s.hintFace, op)

	s.notepad.Draw(screen)
}

// Notepad 返回记事本模块
func (s *NotepadScene) Notepad() *modules.NotepadModule {
	return s.notepad
}

// Dispose 卸载记事本并保存设置
func (s *NotepadScene) Dispose() {
	s.notepad.Dispose()
	if s.settings != nil {
		if err := s.settings.Save(); err != nil {
			log.Printf("[NotepadScene] Warning: failed to save settings: %v", err)
		}
	}
}
