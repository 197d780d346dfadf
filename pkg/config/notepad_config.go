package config

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/notepad/pkg/embedded"
	"github.com/decker502/notepad/pkg/utils"
	"gopkg.in/yaml.v3"
)

// DefaultNotepadConfigPath 默认配置文件位置
const DefaultNotepadConfigPath = "data/notepad.yaml"

// NotepadConfig 记事本浮层配置
//
// 包含开关动画、面板尺寸、文案和配色。
// 配置文件位置: data/notepad.yaml
type NotepadConfig struct {
	Animation AnimationConfig `yaml:"animation"`
	Panel     PanelConfig     `yaml:"panel"`
	Text      TextConfig      `yaml:"text"`
	Colors    ColorConfig     `yaml:"colors"`
}

// AnimationConfig 打开/关闭两段动画
type AnimationConfig struct {
	In  AnimationSpec `yaml:"in"`
	Out AnimationSpec `yaml:"out"`
}

// AnimationSpec 单段动画参数
type AnimationSpec struct {
	// Duration 动画时长（秒），0 表示立即完成
	Duration float64 `yaml:"duration"`
	// Easing 缓动函数名（见 utils.EasingByName）
	Easing string `yaml:"easing"`
}

// EasingFunc 返回配置的缓动函数，未知名称回退为线性
func (a AnimationSpec) EasingFunc() utils.EasingFunc {
	if fn, ok := utils.EasingByName(a.Easing); ok {
		return fn
	}
	return utils.EaseLinear
}

// PanelConfig 面板尺寸（像素，缩放前）
type PanelConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	HeaderHeight float64 `yaml:"headerHeight"`
	CornerRadius float64 `yaml:"cornerRadius"`
	// CloseButtonSize 关闭按钮边长
	CloseButtonSize float64 `yaml:"closeButtonSize"`
}

// TextConfig 文案与字号
type TextConfig struct {
	Title       string  `yaml:"title"`
	Placeholder string  `yaml:"placeholder"`
	TitleSize   float64 `yaml:"titleSize"`
	BodySize    float64 `yaml:"bodySize"`
}

// ColorConfig 面板配色
type ColorConfig struct {
	Background       HexColor `yaml:"background"`
	Header           HexColor `yaml:"header"`
	Text             HexColor `yaml:"text"`
	Subtitle         HexColor `yaml:"subtitle"`
	InputBackground  HexColor `yaml:"inputBackground"`
	Border           HexColor `yaml:"border"`
	CloseButton      HexColor `yaml:"closeButton"`
	CloseButtonHover HexColor `yaml:"closeButtonHover"`
}

// HexColor 以 "#RRGGBB" 形式出现在 YAML 中的不透明颜色
type HexColor color.RGBA

// RGBA 转换为 color.RGBA
func (c HexColor) RGBA() color.RGBA {
	return color.RGBA(c)
}

// String 返回 "#RRGGBB"
func (c HexColor) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHexColor 解析 "#RRGGBB" 或 "RRGGBB"
func ParseHexColor(s string) (HexColor, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return HexColor{}, fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return HexColor{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return HexColor{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// UnmarshalYAML 实现 yaml.Unmarshaler
func (c *HexColor) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: color must be a string", node.Line)
	}
	parsed, err := ParseHexColor(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML 实现 yaml.Marshaler
func (c HexColor) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

func rgb(r, g, b uint8) HexColor {
	return HexColor{R: r, G: g, B: b, A: 0xff}
}

// DefaultNotepadConfig 返回默认配置
func DefaultNotepadConfig() *NotepadConfig {
	return &NotepadConfig{
		Animation: AnimationConfig{
			In:  AnimationSpec{Duration: 0.25, Easing: "easeOutCubic"},
			Out: AnimationSpec{Duration: 0.15, Easing: "easeInCubic"},
		},
		Panel: PanelConfig{
			Width:           280,
			Height:          220,
			HeaderHeight:    40,
			CornerRadius:    12,
			CloseButtonSize: 26,
		},
		Text: TextConfig{
			Title:       "Notes",
			Placeholder: "Write your notes here...",
			TitleSize:   15,
			BodySize:    13,
		},
		Colors: ColorConfig{
			Background:       rgb(22, 22, 26),
			Header:           rgb(30, 30, 36),
			Text:             rgb(255, 255, 255),
			Subtitle:         rgb(140, 140, 150),
			InputBackground:  rgb(18, 18, 22),
			Border:           rgb(50, 50, 58),
			CloseButton:      rgb(60, 60, 70),
			CloseButtonHover: rgb(80, 80, 90),
		},
	}
}

// LoadNotepadConfig 加载记事本配置
//
// 文件中缺省的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/notepad.yaml"）
//
// 返回:
//   - *NotepadConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败
func LoadNotepadConfig(path string) (*NotepadConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read notepad config: %w", err)
	}
	return ParseNotepadConfig(data)
}

// ParseNotepadConfig 从 YAML 数据解析配置
func ParseNotepadConfig(data []byte) (*NotepadConfig, error) {
	cfg := DefaultNotepadConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse notepad config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid notepad config: %w", err)
	}
	return cfg, nil
}

// LoadNotepadConfigOrDefault 加载配置
// 查找顺序：磁盘文件 -> 嵌入资源 -> 内置默认值
// 文件存在但内容无效时仍返回错误
func LoadNotepadConfigOrDefault(path string) (*NotepadConfig, error) {
	cfg, err := LoadNotepadConfig(path)
	if !errors.Is(err, os.ErrNotExist) {
		return cfg, err
	}

	if data, embedErr := embedded.ReadFile(path); embedErr == nil {
		log.Printf("[Config] %s not found on disk, using embedded copy", path)
		return ParseNotepadConfig(data)
	}

	log.Printf("[Config] %s not found, using default notepad config", path)
	return DefaultNotepadConfig(), nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 动画时长必须是有限值且不能为负（0 表示立即完成）
//   - 缓动函数名必须存在
//   - 面板尺寸为正，标题栏高度小于面板高度
func (c *NotepadConfig) Validate() error {
	for name, spec := range map[string]AnimationSpec{"in": c.Animation.In, "out": c.Animation.Out} {
		if math.IsNaN(spec.Duration) || math.IsInf(spec.Duration, 0) || spec.Duration < 0 {
			return fmt.Errorf("animation %s duration must be a finite value >= 0, got %v", name, spec.Duration)
		}
		if _, ok := utils.EasingByName(spec.Easing); !ok {
			return fmt.Errorf("animation %s: unknown easing %q", name, spec.Easing)
		}
	}

	if c.Panel.Width <= 0 || c.Panel.Height <= 0 {
		return fmt.Errorf("panel size must be positive, got %.0fx%.0f", c.Panel.Width, c.Panel.Height)
	}
	if c.Panel.HeaderHeight <= 0 || c.Panel.HeaderHeight >= c.Panel.Height {
		return fmt.Errorf("headerHeight %.0f out of range (0, %.0f)", c.Panel.HeaderHeight, c.Panel.Height)
	}
	if c.Panel.CornerRadius < 0 {
		return fmt.Errorf("cornerRadius must be >= 0, got %.0f", c.Panel.CornerRadius)
	}
	if c.Panel.CloseButtonSize <= 0 || c.Panel.CloseButtonSize > c.Panel.HeaderHeight {
		return fmt.Errorf("closeButtonSize %.0f out of range (0, %.0f]", c.Panel.CloseButtonSize, c.Panel.HeaderHeight)
	}
	if c.Text.TitleSize <= 0 || c.Text.BodySize <= 0 {
		return fmt.Errorf("text sizes must be positive")
	}
	return nil
}
