package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/status"
)

// options holds the parsed command line
type options struct {
	config   string
	debug    bool
	clock    bool
	headless bool
	ticks    int
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("vi-pong", flag.ContinueOnError)
	fs.StringVar(&opts.config, "config", "", "YAML config file, defaults to the classic 1600x1200 field")
	fs.BoolVar(&opts.debug, "debug", false, "Write debug log to logs/vi-pong.log")
	fs.BoolVar(&opts.clock, "clock", true, "Show the clock overlay")
	fs.BoolVar(&opts.headless, "headless", false, "Simulate without a terminal and print metrics")
	fs.IntVar(&opts.ticks, "ticks", 10000, "Ticks to simulate in headless mode")
	err := fs.Parse(args)
	return opts, err
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run returns the process exit code; every deferred cleanup completes before main exits
func run(args []string, stdout io.Writer) int {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	opts, err := parseFlags(args)
	if err != nil {
		return 2
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig(opts.config)
	if err != nil {
		log.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	reg := status.NewRegistry()
	game := engine.NewGame(cfg, reg)

	if opts.headless {
		runHeadless(game, opts.ticks)
		fmt.Fprintln(stdout, reg.Summary())
		return 0
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		log.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	core.SetCrashTerminal(screen)
	// Normal exit terminal cleanup
	defer screen.Fini()

	cols, rows := screen.Size()
	log.Printf("terminal %dx%d, field %vx%v, tick %v", cols, rows, cfg.ScreenWidth, cfg.ScreenHeight, cfg.Tick)

	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	window := render.NewTerminalWindow(screen)
	renderer := render.NewTerminalRenderer(screen, cfg, opts.clock)

	scheduler := engine.NewClockScheduler(game, clock, window, renderer)
	scheduler.Run()

	log.Printf("exit after %d ticks: %s", scheduler.TickCount(), reg.Summary())
	return 0
}

// loadConfig returns defaults when path is empty
func loadConfig(path string) (parameter.Config, error) {
	if path == "" {
		log.Printf("config: defaults")
		return parameter.Default(), nil
	}
	cfg, err := parameter.Load(path)
	if err != nil {
		return parameter.Config{}, err
	}
	log.Printf("config: %s", path)
	return cfg, nil
}

// runHeadless advances the game back to back, no tick gating
func runHeadless(game *engine.Game, ticks int) {
	for i := 0; i < ticks; i++ {
		game.Tick()
	}
	log.Printf("headless run finished at tick %d", game.State().Tick)
}
