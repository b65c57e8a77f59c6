// termmole 在终端中运行打地鼠
//
// 用法:
//
//	go run ./cmd/termmole [--seed N] [--config path] [--verbose]
//
// 需要支持鼠标的终端。--verbose 时日志写入 termmole.log（终端被游戏占用）。
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/whackamole/internal/audio"
	"github.com/decker502/whackamole/internal/audio/speakersink"
	"github.com/decker502/whackamole/pkg/config"
	"github.com/decker502/whackamole/pkg/game"
	"github.com/decker502/whackamole/pkg/terminal"
)

var (
	verbose    = flag.Bool("verbose", false, "把详细日志写入 termmole.log")
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置配置）")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	mute       = flag.Bool("mute", false, "不初始化音频设备")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "termmole: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	closeLog, err := setupLogging(*verbose)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		if cfg, err = config.LoadGameConfig(*configPath); err != nil {
			return err
		}
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	log.Printf("[termmole] Seed: %d", s)

	var gdataManager *gdata.Manager
	if m, err := gdata.Open(gdata.Config{AppName: game.AppName}); err != nil {
		log.Printf("[termmole] Warning: settings will not persist: %v", err)
	} else {
		gdataManager = m
	}
	settings := game.NewSettingsManager(gdataManager)

	var sink audio.Sink
	if !*mute {
		if speakerSink, err := newSpeakerSink(cfg, s); err != nil {
			log.Printf("[termmole] Warning: audio disabled: %v", err)
		} else {
			defer speakerSink.Close()
			sink = speakerSink
		}
	}
	audioManager := game.NewAudioManager(sink, settings)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	controller := game.NewController(cfg, rand.New(rand.NewSource(s)), audioManager)
	runner := terminal.NewRunner(screen, controller, audioManager, s)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return runner.Run(ctx)
}

func newSpeakerSink(cfg *config.GameConfig, seed int64) (*speakersink.Sink, error) {
	synth, err := audio.NewSynth(cfg.Audio, seed)
	if err != nil {
		return nil, err
	}
	return speakersink.New(synth)
}

// setupLogging 非 verbose 时丢弃日志；verbose 时写入文件
func setupLogging(verbose bool) (func(), error) {
	if !verbose {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile("termmole.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	return func() { f.Close() }, nil
}
