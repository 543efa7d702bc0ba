package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"bifrost-engine/internal/demo"
	"bifrost-engine/internal/engine"
	"bifrost-engine/internal/engineconfig"
	"bifrost-engine/internal/fonts"
	"bifrost-engine/internal/graphics"
	"bifrost-engine/internal/gui"
	"bifrost-engine/internal/logger"
	"bifrost-engine/internal/updatemodel"
)

func init() {
	// raylib must stay on the main OS thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", engineconfig.EngineConfigPath, "path to the engine YAML config")
	envPath := flag.String("env", ".env", "optional env file with BIFROST_* overrides")
	flag.Parse()

	if err := run(*configPath, *envPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, envPath string) error {
	if err := engineconfig.LoadEnvFile(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "env file %s: %v\n", envPath, err)
	}
	cfg, cfgErr := engineconfig.Load(configPath)
	envErr := engineconfig.ApplyEnv(&cfg, nil)

	log := logger.New(cfg.LogFile)
	level, levelErr := logger.ParseLevel(cfg.LogLevel)
	logger.SetLogger(log.Slog(level))
	for _, err := range []error{cfgErr, envErr, levelErr} {
		if err != nil {
			logger.L().Warn("config problem, using defaults where needed", "err", err)
		}
	}

	model, err := updatemodel.Parse(cfg.UpdateModel)
	if err != nil {
		logger.L().Warn("falling back to atomic update model", "err", err)
	}

	win, err := graphics.Open(graphics.Config{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
		VSync:      model.VSync(),
	})
	if err != nil {
		return err
	}
	defer win.Close()

	panel := gui.New()
	panel.Interactive = win.MouseVisible
	if cfg.UIFont != "" {
		path, err := fonts.Find(fonts.BaseDirs(), cfg.UIFont)
		if err == nil {
			err = panel.LoadFont(path)
		}
		if err != nil {
			logger.L().Warn("using default overlay font", "err", err)
		}
	}

	eng := engine.New(win, panel, engine.Config{
		TargetFPS:   cfg.TargetFPS,
		StartApp:    cfg.StartApp,
		HideOverlay: cfg.HideOverlay,
		UpdateModel: model,
		LogLines:    log.Lines,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.L().Info("starting", "title", cfg.Title, "model", model, "start_app", cfg.StartApp)
	return eng.Run(ctx, demo.New(demo.Options{
		UpdateModel: model,
		Sensitivity: cfg.CameraSensitivity,
	}))
}
