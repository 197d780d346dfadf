package main

import (
	"flag"
	"log"

	"github.com/decker502/notepad/pkg/app"
	"github.com/decker502/notepad/pkg/config"
	"github.com/decker502/notepad/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// 命令行参数
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", config.DefaultNotepadConfigPath, "记事本配置文件路径")
	startOpen  = flag.Bool("open", true, "启动时打开记事本（未指定时使用已保存的设置）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（默认配置）
	embedded.Init(dataFS)

	cfg := app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
	}
	// 只有显式指定 -open 时才覆盖已保存的设置
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "open" {
			cfg.StartOpen = startOpen
		}
	})

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(app.WindowWidth, app.WindowHeight)
	ebiten.SetWindowTitle("Notepad")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(application); err != nil {
		log.Fatal(err)
	}
	application.Shutdown()
}
