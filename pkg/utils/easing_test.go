package utils

import (
	"math"
	"testing"
)

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3 = 0.875
		{"四分之一", 0.25, 0.578125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}

	t.Run("整体快于线性", func(t *testing.T) {
		for p := 0.0; p <= 1.0; p += 0.1 {
			if eased := EaseOutCubic(p); eased < p-1e-9 {
				t.Errorf("EaseOutCubic(%v) = %v 不应该落后于线性值", p, eased)
			}
		}
	})
}

// TestEaseInCubic 测试三次方缓入函数
func TestEaseInCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseInCubic(tt.input)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("EaseInCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestEasingMonotonic 所有可配置缓动函数在 [0,1] 上单调不减，且端点精确
func TestEasingMonotonic(t *testing.T) {
	for name, fn := range easingByName {
		t.Run(name, func(t *testing.T) {
			if fn(0) != 0 {
				t.Errorf("%s(0) = %v, 期望 0", name, fn(0))
			}
			if fn(1) != 1 {
				t.Errorf("%s(1) = %v, 期望 1", name, fn(1))
			}
			prev := fn(0)
			for i := 1; i <= 1000; i++ {
				cur := fn(float64(i) / 1000)
				if cur < prev {
					t.Fatalf("%s 在 t=%v 处递减: %v < %v", name, float64(i)/1000, cur, prev)
				}
				prev = cur
			}
		})
	}
}

// TestLerp 测试线性插值函数
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a        float64
		b        float64
		t        float64
		expected float64
	}{
		{"起点", 0.0, 100.0, 0.0, 0.0},
		{"中点", 0.0, 100.0, 0.5, 50.0},
		{"终点", 0.0, 100.0, 1.0, 100.0},
		{"逆向范围", 1.0, 0.0, 0.25, 0.75},
		{"缩放范围", 0.9, 1.0, 0.5, 0.95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lerp(tt.a, tt.b, tt.t)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, result, tt.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"区间内", 0.3, 0.3},
		{"低于下限", -2, 0},
		{"高于上限", 7, 1},
		{"NaN", math.NaN(), 0},
		{"正无穷", math.Inf(1), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.in, 0, 1); got != tt.want {
				t.Errorf("Clamp(%v) = %v, 期望 %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEasingByName(t *testing.T) {
	if _, ok := EasingByName("easeOutCubic"); !ok {
		t.Error("easeOutCubic 应该存在")
	}
	if _, ok := EasingByName("bounce"); ok {
		t.Error("未知缓动函数不应该存在")
	}
}
