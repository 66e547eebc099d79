package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ellery/tabdock/internal/config"
	"github.com/ellery/tabdock/internal/util"
	"github.com/go-errors/errors"
	isatty "github.com/mattn/go-isatty"
	"github.com/micro-editor/tcell/v2"
)

var (
	// Command line flags
	flagVersion   = flag.Bool("version", false, "Show the version number and information")
	flagConfigDir = flag.String("config-dir", "", "Specify a custom location for the configuration directory")
	flagDebug     = flag.Bool("debug", false, "Enable debug mode (prints debug info to ./log.txt)")

	screen tcell.Screen
)

func versionString() string {
	return util.Version
}

func InitFlags() {
	flag.Usage = func() {
		fmt.Println("Usage: tabdock [OPTION]...")
		fmt.Println("-config-dir dir")
		fmt.Println("    \tSpecify a custom location for the configuration directory")
		fmt.Println("-debug")
		fmt.Println("    \tEnable debug mode (enables logging to ./log.txt)")
		fmt.Println("-version")
		fmt.Println("    \tShow the version number and exit")
	}

	flag.Parse()

	if *flagVersion {
		fmt.Println("Version:", util.Version)
		exit(0)
	}

	if util.Debug == "OFF" && *flagDebug {
		util.Debug = "ON"
	}
}

func exit(rc int) {
	if screen != nil {
		screen.Fini()
	}
	os.Exit(rc)
}

func main() {
	InitFlags()

	logCloser := initLog()
	defer logCloser.Close()

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println("tabdock needs an interactive terminal")
		exit(1)
	}

	if err := config.InitConfigDir(*flagConfigDir); err != nil {
		fmt.Println(err)
	}
	if err := config.EnsureSettingsFile(); err != nil {
		log.Printf("TABDOCK: Could not write default settings: %v", err)
	}
	settings, errs := config.LoadSettings()
	for _, e := range errs {
		fmt.Println("settings.json:", e)
	}

	var err error
	screen, err = tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		fmt.Println(err)
		fmt.Println("Fatal: tabdock could not initialize a Screen.")
		screen = nil
		exit(1)
	}
	screen.EnableMouse()

	defer func() {
		if err := recover(); err != nil {
			if screen != nil {
				screen.Fini()
				screen = nil
			}
			fmt.Println("tabdock encountered an error:", errors.Wrap(err, 2).ErrorStack())
			exit(1)
		}
	}()

	app := NewApp(screen, settings)
	app.OpenDefaultWorkspace()

	// the watcher runs on its own goroutine; reloads are applied by the loop
	reloads := make(chan settingsReload, 1)
	watcher, err := config.NewWatcher(config.SettingsFilePath(), func(s *config.Settings, errs []config.ValidationError) {
		select {
		case reloads <- settingsReload{settings: s, errs: errs}:
		default:
			log.Println("TABDOCK: Dropped settings reload, one is already pending")
		}
	})
	if err == nil {
		err = watcher.Start()
	}
	if err != nil {
		log.Printf("TABDOCK: Settings will not reload: %v", err)
	} else {
		defer watcher.Stop()
	}

	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGTERM, syscall.SIGINT, syscall.SIGHUP)

	events := make(chan tcell.Event)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	app.Draw()
	for !app.Done() {
		select {
		case ev := <-events:
			if app.HandleEvent(ev) && !app.Done() {
				app.Draw()
			}
		case r := <-reloads:
			if app.Reload(r) {
				app.Draw()
			}
		case <-sigterm:
			log.Println("TABDOCK: Terminated by signal")
			app.Quit()
		}
	}

	log.Println("TABDOCK: Exiting")
	screen.Fini()
	screen = nil
}
