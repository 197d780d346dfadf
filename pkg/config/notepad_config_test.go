package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/notepad/pkg/embedded"
)

func TestDefaultNotepadConfig(t *testing.T) {
	cfg := DefaultNotepadConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("默认配置应该有效: %v", err)
	}
	if cfg.Animation.In.Duration != 0.25 || cfg.Animation.Out.Duration != 0.15 {
		t.Errorf("动画时长 = %v/%v, 期望 0.25/0.15", cfg.Animation.In.Duration, cfg.Animation.Out.Duration)
	}
	if got := cfg.Animation.In.EasingFunc()(0.5); got != 0.875 {
		t.Errorf("打开动画缓动(0.5) = %v, 期望 0.875", got)
	}
	if got := cfg.Animation.Out.EasingFunc()(0.5); got != 0.125 {
		t.Errorf("关闭动画缓动(0.5) = %v, 期望 0.125", got)
	}
	if cfg.Colors.Background.String() != "#16161A" {
		t.Errorf("背景色 = %s, 期望 #16161A", cfg.Colors.Background)
	}
}

// TestShippedConfigMatchesDefaults data/notepad.yaml 与内置默认值保持一致
func TestShippedConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadNotepadConfig(filepath.Join("..", "..", DefaultNotepadConfigPath))
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}
	if *cfg != *DefaultNotepadConfig() {
		t.Errorf("data/notepad.yaml 与 DefaultNotepadConfig 不一致:\n%+v\n%+v", *cfg, *DefaultNotepadConfig())
	}
}

func TestParseNotepadConfigPartial(t *testing.T) {
	data := []byte(`
animation:
  out:
    duration: 0.3
colors:
  border: "#FF0000"
text:
  title: 便签
`)
	cfg, err := ParseNotepadConfig(data)
	if err != nil {
		t.Fatalf("ParseNotepadConfig error: %v", err)
	}

	if cfg.Animation.Out.Duration != 0.3 {
		t.Errorf("Out.Duration = %v, 期望 0.3", cfg.Animation.Out.Duration)
	}
	// 未出现的字段保留默认值
	if cfg.Animation.Out.Easing != "easeInCubic" {
		t.Errorf("Out.Easing = %q, 期望保留默认值 easeInCubic", cfg.Animation.Out.Easing)
	}
	if cfg.Animation.In.Duration != 0.25 {
		t.Errorf("In.Duration = %v, 期望保留默认值 0.25", cfg.Animation.In.Duration)
	}
	if c := cfg.Colors.Border.RGBA(); c.R != 255 || c.G != 0 || c.B != 0 || c.A != 255 {
		t.Errorf("Border = %v, 期望纯红", c)
	}
	if cfg.Text.Title != "便签" {
		t.Errorf("Title = %q", cfg.Text.Title)
	}
}

func TestParseNotepadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"负时长", "animation:\n  in:\n    duration: -1\n", "duration"},
		{"NaN 时长", "animation:\n  in:\n    duration: .nan\n", "duration"},
		{"无穷时长", "animation:\n  out:\n    duration: .inf\n", "duration"},
		{"负无穷时长", "animation:\n  out:\n    duration: -.inf\n", "duration"},
		{"未知缓动", "animation:\n  out:\n    easing: bounce\n", "unknown easing"},
		{"非法颜色", "colors:\n  text: \"#12\"\n", "invalid color"},
		{"颜色不是字符串", "colors:\n  text: [1, 2, 3]\n", "must be a string"},
		{"面板尺寸", "panel:\n  width: 0\n", "panel size"},
		{"标题栏过高", "panel:\n  headerHeight: 500\n", "headerHeight"},
		{"YAML 语法错误", "animation: [", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNotepadConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("期望返回错误")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("错误 %q 不包含 %q", err, tt.wantErr)
			}
		})
	}
}

func TestZeroDurationAllowed(t *testing.T) {
	cfg, err := ParseNotepadConfig([]byte("animation:\n  in:\n    duration: 0\n"))
	if err != nil {
		t.Fatalf("零时长应被接受（立即完成）: %v", err)
	}
	if cfg.Animation.In.Duration != 0 {
		t.Errorf("In.Duration = %v", cfg.Animation.In.Duration)
	}
}

func TestLoadNotepadConfigOrDefault(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadNotepadConfigOrDefault(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("文件不存在时应使用默认配置: %v", err)
	}
	if cfg.Panel.Width != 280 {
		t.Errorf("Panel.Width = %v, 期望 280", cfg.Panel.Width)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("panel:\n  width: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadNotepadConfigOrDefault(bad); err == nil {
		t.Error("无效配置应返回错误")
	}
}

func TestLoadNotepadConfigOrDefaultEmbedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/embedded_only.yaml": &fstest.MapFile{Data: []byte("panel:\n  width: 320\n")},
	})
	t.Cleanup(func() { embedded.Init(nil) })

	// 磁盘上不存在，回退到嵌入副本
	cfg, err := LoadNotepadConfigOrDefault("data/embedded_only.yaml")
	if err != nil {
		t.Fatalf("LoadNotepadConfigOrDefault: %v", err)
	}
	if cfg.Panel.Width != 320 || cfg.Panel.Height != 220 {
		t.Errorf("got panel %vx%v, 期望 320x220", cfg.Panel.Width, cfg.Panel.Height)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("1e1e24")
	if err != nil {
		t.Fatal(err)
	}
	if c.R != 30 || c.G != 30 || c.B != 36 {
		t.Errorf("ParseHexColor = %v", c)
	}
	if _, err := ParseHexColor("#GGGGGG"); err == nil {
		t.Error("非十六进制应返回错误")
	}
}
