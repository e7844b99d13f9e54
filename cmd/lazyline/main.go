package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/willothy/lazyline/config"
	"github.com/willothy/lazyline/engine"
	"github.com/willothy/lazyline/event"
	"github.com/willothy/lazyline/internal/buffer"
	"github.com/willothy/lazyline/lua"
	"github.com/willothy/lazyline/timer"
	"github.com/willothy/lazyline/ui"
)

func main() {
	script := flag.String("config", config.ScriptFile(), "Path to the status line Lua script")
	flag.Parse()

	host := ui.NewTermHost()
	eng := engine.New(host)

	loader := lua.NewLoader(host.Warn)
	defer loader.Close()

	layout, intervals, err := loadScript(loader, *script)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lazyline:", err)
		os.Exit(1)
	}
	if err := eng.Setup(layout); err != nil {
		os.Exit(1)
	}

	model := ui.NewModel(host, eng, demoBody())
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	// Timer fires arrive on timer goroutines. Route them through an
	// unbounded buffer so producers never block, then onto the update
	// loop where the engine may be called.
	timerIn, timerOut := buffer.Unbounded[timer.Event](16, 1024)
	timers := timer.NewService(timerIn)
	defer timers.CancelAll()
	scheduleIntervals(timers, intervals)

	go func() {
		for ev := range timerOut {
			k := event.Parse(ev.EventName)
			program.Send(ui.FireMsg{Event: k.Base, Pattern: k.Pattern})
		}
	}()

	// Reconfigure on script changes. Setup runs on the update loop via
	// ReloadMsg, keeping mutation on the single engine thread.
	if watcher, err := fsnotify.NewWatcher(); err == nil {
		defer watcher.Close()
		if err := watcher.Add(*script); err == nil {
			go watchScript(watcher, *script, program, host, timers)
		}
	}

	if _, err := program.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "lazyline:", err)
		os.Exit(1)
	}
}

// loadScript runs the script and returns its declared layout and intervals.
func loadScript(loader *lua.Loader, path string) (engine.Layout, []lua.Interval, error) {
	if err := loader.DoFile(path); err != nil {
		return engine.Layout{}, nil, err
	}
	layout, ok := loader.Layout()
	if !ok {
		return engine.Layout{}, nil, fmt.Errorf("%s never called lazyline.setup", path)
	}
	return layout, loader.Intervals(), nil
}

func scheduleIntervals(timers *timer.Service, intervals []lua.Interval) {
	for _, iv := range intervals {
		timers.Every(iv.Every, iv.Event)
	}
}

// watchScript reloads the configuration whenever the script is rewritten.
// Each reload uses a fresh Lua VM; the old one is kept alive by the
// previous layout's closures until the engine swaps it out.
func watchScript(watcher *fsnotify.Watcher, path string, program *tea.Program, host *ui.TermHost, timers *timer.Service) {
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			loader := lua.NewLoader(host.Warn)
			layout, intervals, err := loadScript(loader, path)
			if err != nil {
				host.Warn("lazyline: reload: " + err.Error())
				loader.Close()
				continue
			}
			timers.CancelAll()
			scheduleIntervals(timers, intervals)
			program.Send(ui.ReloadMsg{Layout: layout})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			host.Warn("lazyline: watch: " + err.Error())
		}
	}
}

func demoBody() string {
	return strings.Join([]string{
		"lazyline demo",
		"",
		"The bottom row is composed by the engine from your Lua script.",
		"Move the mouse over components to trigger hover callbacks,",
		"click clickable ones, and edit the script to hot-reload.",
		"",
		"Press q to quit.",
	}, "\n")
}
