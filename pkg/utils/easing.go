package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数把线性进度 alpha ∈ [0, 1] 映射成缓动值 ∈ [0, 1]，
// 用于驱动记事本面板的淡入淡出和缩放。
// 所有函数满足 f(0) = 0、f(1) = 1，且在 [0, 1] 上单调不减。
//
// 参考：https://easings.net/

// EasingFunc 缓动函数类型
type EasingFunc func(t float64) float64

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（面板弹出）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseInCubic 三次方缓入
// 特点：开始慢，结束快（面板收起）
// 公式：f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseInOutCubic 三次方缓入缓出
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutQuad 二次方缓出
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInQuad 二次方缓入
// 公式：f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutExpo 指数缓出
// 公式：f(t) = 1 - 2^(-10t)，t=1 时直接返回 1，避免终点漂移
func EaseOutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp 把 v 限制在 [lo, hi] 区间内
// NaN 视为 lo
func Clamp(v, lo, hi float64) float64 {
	if v != v || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// easingByName 配置文件中可用的缓动函数名
var easingByName = map[string]EasingFunc{
	"linear":         EaseLinear,
	"easeOutCubic":   EaseOutCubic,
	"easeInCubic":    EaseInCubic,
	"easeInOutCubic": EaseInOutCubic,
	"easeOutQuad":    EaseOutQuad,
	"easeInQuad":     EaseInQuad,
	"easeOutExpo":    EaseOutExpo,
}

// EasingByName 按名称查找缓动函数（用于 YAML 配置）
func EasingByName(name string) (EasingFunc, bool) {
	fn, ok := easingByName[name]
	return fn, ok
}
