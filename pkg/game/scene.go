package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents an application scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Disposable 是一个可选接口，场景被切换掉或程序退出时调用 Dispose()
//
// 持有帧时钟订阅（动画）的场景必须实现它，
// 保证卸载后不再有任何回调。
type Disposable interface {
	Dispose()
}
