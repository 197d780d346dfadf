package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下打开 gdata
func openTestGdata(t *testing.T) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	m, err := gdata.Open(gdata.Config{AppName: "test_notepad_settings"})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestDefaultSettings 测试默认设置
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if !settings.OpenOnStart {
		t.Error("OpenOnStart: got false, want true")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)
	if sm.GetSettings() == nil {
		t.Fatal("GetSettings() returned nil")
	}

	sm.SetOpenOnStart(false)
	if err := sm.Save(); err != nil {
		t.Errorf("降级模式下 Save() 不应报错: %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("降级模式下 Load() 不应报错: %v", err)
	}
	if !sm.GetSettings().OpenOnStart {
		t.Error("降级模式下 Load() 应恢复默认设置")
	}
}

// TestSettingsRoundTrip 测试保存后重新加载
func TestSettingsRoundTrip(t *testing.T) {
	m := openTestGdata(t)

	sm := NewSettingsManager(m)
	sm.SetFullscreen(true)
	sm.SetOpenOnStart(false)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded := NewSettingsManager(m)
	got := reloaded.GetSettings()
	if !got.Fullscreen || got.OpenOnStart {
		t.Errorf("重新加载后设置不一致: %+v", got)
	}
}

// TestSettingsLoadCorrupted 测试损坏数据回退到默认设置
func TestSettingsLoadCorrupted(t *testing.T) {
	m := openTestGdata(t)
	if err := m.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: [not a bool")); err != nil {
		t.Fatalf("SaveObjectProp error: %v", err)
	}

	sm := NewSettingsManager(m)
	if err := sm.Load(); err == nil {
		t.Error("损坏数据应返回错误")
	}
	if *sm.GetSettings() != *DefaultSettings() {
		t.Errorf("损坏数据应使用默认设置, got %+v", sm.GetSettings())
	}
}

// TestSettingsPartialData 测试缺省字段保持默认值
func TestSettingsPartialData(t *testing.T) {
	m := openTestGdata(t)
	if err := m.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: true\n")); err != nil {
		t.Fatalf("SaveObjectProp error: %v", err)
	}

	got := NewSettingsManager(m).GetSettings()
	if !got.Fullscreen || !got.OpenOnStart {
		t.Errorf("got %+v", got)
	}
}
