package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	disposed     int
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// Dispose records how many times the scene was disposed.
func (m *MockScene) Dispose() {
	m.disposed++
}

// plainScene 不实现 Disposable
type plainScene struct{}

func (plainScene) Update(float64) {}
func (plainScene) Draw(*ebiten.Image) {}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerUpdateAndDraw verifies that Update and Draw reach the current scene.
func TestSceneManagerUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 1.0 / 60.0
	sm.Update(deltaTime)
	sm.Draw(nil)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerNoScene verifies that Update and Draw handle a nil scene gracefully.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016)
	sm.Draw(nil)
	sm.Shutdown()
}

// TestSceneManagerSwitchDisposesPrevious verifies switching disposes the old scene exactly once.
func TestSceneManagerSwitchDisposesPrevious(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &MockScene{}
	scene2 := &MockScene{}

	sm.SwitchTo(scene1)
	sm.SwitchTo(scene1)
	if scene1.disposed != 0 {
		t.Errorf("切换到同一场景不应卸载, disposed = %d", scene1.disposed)
	}

	sm.SwitchTo(scene2)
	if scene1.disposed != 1 {
		t.Errorf("scene1 disposed = %d, 期望 1", scene1.disposed)
	}

	sm.Update(0.016)
	if scene1.updateCalled {
		t.Error("Scene1's Update should not be called after switching")
	}
	if !scene2.updateCalled {
		t.Error("Scene2's Update was not called after switching")
	}

	sm.SwitchTo(plainScene{})
	sm.Shutdown()
	if scene2.disposed != 1 {
		t.Errorf("scene2 disposed = %d, 期望 1", scene2.disposed)
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Shutdown 后不应有活动场景")
	}
}
