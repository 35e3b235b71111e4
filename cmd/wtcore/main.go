// Command wtcore is a minimal host demonstrating the federation core: it
// loads config, joins (or starts) a federation for the configured build
// variant, registers a resolver that always opens a new window, runs the
// command line it was launched with through that federation, and prints
// the outcome. A real terminal host would replace the resolver and the
// peasant callbacks with actual window management; this one only proves
// the wiring.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/myT-x/wtcore/internal/config"
	"github.com/myT-x/wtcore/internal/desktop"
	"github.com/myT-x/wtcore/internal/remoting"
	"github.com/myT-x/wtcore/internal/windowmanager"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("wtcore", flag.ContinueOnError)
	configPath := fs.String("config", config.DefaultPath(), "path to the federation config file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	commandline := fs.Args()

	cfg, err := config.EnsureFile(*configPath)
	if err != nil {
		slog.Warn("[wtcore] failed to load config, running with defaults", "path", *configPath, "error", err)
		cfg = config.DefaultConfig()
	}
	for _, warning := range config.ConsumeDefaultPathWarnings() {
		slog.Warn("[wtcore] " + warning)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	pid := uint64(os.Getpid())
	wm, err := windowmanager.New(pid, cfg.Variant(), cfg.PipeNamePrefixOverride, desktop.AlwaysCurrent{})
	if err != nil {
		slog.Error("[wtcore] failed to join federation", "error", err)
		return 1
	}
	defer wm.Shutdown()

	wm.SetResolver(func(remoting.CommandlineArgs) remoting.FindTargetWindowArgs {
		return remoting.FindTargetWindowArgs{ResultTargetWindow: remoting.UseNew}
	})
	wm.Peasant().OnExecuteCommandlineRequested = func(args remoting.CommandlineArgs) {
		slog.Info("[wtcore] executing command line", "args", args.Args, "dir", args.CurrentDir)
	}
	wm.Peasant().OnSummonRequested = func(behavior remoting.SummonWindowBehavior) {
		slog.Info("[wtcore] summon requested", "toggleVisibility", behavior.ToggleVisibility)
	}
	wm.Peasant().OnQuitRequested = func() {
		slog.Info("[wtcore] quit requested by leader")
	}

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	result, err := wm.ProposeCommandline(remoting.CommandlineArgs{Args: commandline, CurrentDir: wd})
	if err != nil {
		slog.Error("[wtcore] propose commandline failed", "error", err)
		return 1
	}

	fmt.Printf("pid=%d leader=%v isolated=%v newWindow=%v\n", pid, wm.IsLeader(), wm.IsIsolated(), result.ShouldCreateNewWindow)

	if !result.ShouldCreateNewWindow {
		return 0
	}

	waitForSignal()
	return 0
}

func waitForSignal() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	<-ch
}
