package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/ayutaki/sekai-dl/internal/config"
	"github.com/ayutaki/sekai-dl/internal/download"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	app := &cli.Command{
		Name:    "sekai-dl",
		Usage:   "Download and tag Project Sekai music",
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output directory (overrides config)",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "Maximum concurrent track downloads (0 = one worker per track)",
			},
			&cli.IntFlag{
				Name:  "max-attempts",
				Usage: "Download attempts per asset (0 = retry forever)",
			},
			&cli.BoolFlag{
				Name:    "playlist",
				Aliases: []string{"p"},
				Usage:   "Create a playlist per vocal-type directory",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Show verbose output",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Load the catalog without downloading",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, logger)
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}

func run(ctx context.Context, cmd *cli.Command, logger *log.Logger) error {
	verbose := cmd.Bool("verbose")
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	settings := config.DefaultSettings()
	if path := cmd.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		settings = loaded
	}

	if output := cmd.String("output"); output != "" {
		settings.DownloadsPath = output
	}
	if cmd.IsSet("concurrency") {
		settings.MaxConcurrentTracks = cmd.Int("concurrency")
	}
	if cmd.IsSet("max-attempts") {
		settings.DownloadMaxAttempts = cmd.Int("max-attempts")
	}
	if cmd.Bool("playlist") {
		settings.CreatePlaylist = true
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Warn("Interrupted, cancelling...")
		cancel()
	}()

	manager := download.NewManager(settings, func(event download.ProgressEvent) {
		switch event.Level {
		case download.LevelError:
			logger.Error(event.Message)
		case download.LevelWarning:
			logger.Warn(event.Message)
		case download.LevelVerbose:
			logger.Debug(event.Message)
		default:
			logger.Info(event.Message)
		}
	})

	if err := manager.Initialize(ctx); err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	if cmd.Bool("dry-run") {
		for _, name := range manager.GetMusicNames() {
			fmt.Println(name)
		}
		return nil
	}

	if err := manager.StartDownloads(ctx); err != nil {
		if ctx.Err() != nil {
			logger.Warn("Download cancelled.")
			os.Exit(130)
		}
		return fmt.Errorf("downloading: %w", err)
	}

	musicsDone, musicsTotal, vocalsDone, vocalsTotal := manager.GetProgress()
	logger.Info("Complete", "tracks", fmt.Sprintf("%d/%d", musicsDone, musicsTotal),
		"vocals", fmt.Sprintf("%d/%d", vocalsDone, vocalsTotal))
	return nil
}
