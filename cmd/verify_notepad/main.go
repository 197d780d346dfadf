// Package main 提供记事本动画的无窗口验证工具
//
// 用法:
//
//	go run ./cmd/verify_notepad -fps 60 -close-at 0.5 -reopen-at 0.55 -duration 1.2
//
// 使用合成帧时钟逐帧推进，打印每帧的阶段、透明度、缩放和订阅数，
// 用于检查快速开关、关闭期间重新打开等时序。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/notepad/internal/frameclock"
	"github.com/decker502/notepad/pkg/config"
	"github.com/decker502/notepad/pkg/ecs"
	"github.com/decker502/notepad/pkg/modules"
)

var (
	// 命令行参数
	fps        = flag.Int("fps", 60, "模拟帧率")
	closeAt    = flag.Float64("close-at", 0.5, "关闭时刻（秒），负数表示不关闭")
	reopenAt   = flag.Float64("reopen-at", -1, "重新打开时刻（秒），负数表示不重新打开")
	duration   = flag.Float64("duration", 1.0, "模拟总时长（秒）")
	configPath = flag.String("config", "", "记事本配置文件路径（为空使用默认配置）")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}
	if *fps <= 0 {
		fmt.Fprintln(os.Stderr, "fps must be positive")
		os.Exit(2)
	}

	cfg := config.DefaultNotepadConfig()
	if *configPath != "" {
		loaded, err := config.LoadNotepadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	clock := frameclock.NewManualClock()
	notepad, err := modules.NewNotepadModule(ecs.NewEntityManager(), clock, cfg, 800, 600, modules.NotepadCallbacks{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "创建记事本失败: %v\n", err)
		os.Exit(1)
	}
	defer notepad.Dispose()

	dt := 1.0 / float64(*fps)
	frames := int(*duration*float64(*fps) + 0.5)
	closed, reopened := *closeAt < 0, *reopenAt < 0

	fmt.Printf("%6s %8s %-18s %12s %8s %9s\n", "frame", "time", "phase", "transparency", "scale", "listeners")
	notepad.SetOpen(true)
	printRow(0, clock.Now(), notepad.State(), clock.ListenerCount())

	for i := 1; i <= frames; i++ {
		now := float64(i) * dt
		if !closed && now >= *closeAt {
			notepad.SetOpen(false)
			closed = true
		}
		if closed && !reopened && now >= *reopenAt {
			notepad.SetOpen(true)
			reopened = true
		}
		clock.Advance(dt)
		printRow(i, clock.Now(), notepad.State(), clock.ListenerCount())
	}
}

func printRow(frame int, now float64, state modules.NotepadState, listeners int) {
	fmt.Printf("%6d %8.4f %-18s %12.4f %8.4f %9d\n",
		frame, now, state.Phase, state.Transparency, state.Scale, listeners)
}
