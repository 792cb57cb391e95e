package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/soocke/camocr/app"
	"github.com/soocke/camocr/app/services"
	"github.com/soocke/camocr/config"
	"github.com/soocke/camocr/debug"
	"github.com/soocke/camocr/domain/camera"
	"github.com/soocke/camocr/domain/camera/gocvcam"
	"github.com/soocke/camocr/domain/camera/screencam"
	"github.com/soocke/camocr/domain/recognition/tesseract"
)

const windowTitle = "OCRテキスト認識"

var (
	configPath string
	debugFlag  bool
	sourceFlag string
	deviceFlag string
	langFlag   string

	cfg    *config.Config
	logger *slog.Logger
)

// Execute runs the camocr command tree.
func Execute() error {
	root := &cobra.Command{
		Use:          "camocr",
		Short:        "Capture a camera frame and recognize its text",
		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = config.DefaultPath()
			}
			loaded, err := config.Load(configPath)
			logger = NewLogger(slog.LevelInfo)
			if err != nil {
				logger.Warn("config load failed, using defaults", "path", configPath, "err", err)
			}
			cfg = loaded
			applyFlagOverrides(cmd, cfg)
			if cfg.Debug {
				logger = NewLogger(slog.LevelDebug)
			}
			return nil
		},
		RunE: runGUI,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default per-user config dir)")
	root.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging and runtime stats")
	root.PersistentFlags().StringVar(&sourceFlag, "source", "", "frame source: camera or screen")
	root.PersistentFlags().StringVar(&deviceFlag, "device", "", "camera device index or stream URL")
	root.PersistentFlags().StringVar(&langFlag, "lang", "", "OCR language (tesseract code, e.g. jpn)")

	root.AddCommand(snapCmd(), configCmd())
	return root.Execute()
}

// applyFlagOverrides copies explicitly set flags over the loaded config.
func applyFlagOverrides(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("debug") {
		c.Debug = debugFlag
	}
	if flags.Changed("source") {
		c.Source = sourceFlag
	}
	if flags.Changed("device") {
		c.Device = deviceFlag
	}
	if flags.Changed("lang") {
		c.Language = langFlag
	}
	_ = c.Validate()
}

// buildServices binds the configured frame source and the Tesseract engine.
func buildServices() services.Services {
	var opener camera.Opener = gocvcam.Opener{}
	if cfg.Source == config.SourceScreen {
		opener = screencam.Opener{}
	}
	return services.Build(cfg, logger, opener, tesseract.NewTesseractEngine(cfg.TessdataPrefix))
}

func runGUI(cmd *cobra.Command, args []string) error {
	svc := buildServices()
	if cfg.Debug {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		startDebugLoggers(ctx, svc)
	}
	logger.Info("camocr starting", "source", cfg.Source, "device", cfg.Device, "lang", cfg.Language)
	app.NewApp(windowTitle, cfg, logger, svc).Start()
	return nil
}

func startDebugLoggers(ctx context.Context, svc services.Services) {
	period := time.Duration(cfg.DebugLogPeriod) * time.Second
	debug.StartGoroutineLogger(ctx, period, logger)
	debug.StartMemLogger(ctx, period, logger, func() []slog.Attr {
		st := svc.Session.Stats()
		return []slog.Attr{
			slog.Bool("camera_running", svc.Session.Running()),
			slog.Uint64("camera_frames", st.Frames),
			slog.Uint64("camera_read_errors", st.ReadErrors),
			slog.Duration("camera_frame_age", st.LatestFrameAge),
		}
	})
}

func snapCmd() *cobra.Command {
	var (
		out     string
		dataURI bool
	)
	cmd := &cobra.Command{
		Use:   "snap",
		Short: "Capture one frame headlessly and print the recognized text",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			svc := buildServices()
			if err := svc.Session.Start(ctx); err != nil {
				return fmt.Errorf("start camera: %w", err)
			}
			defer svc.Session.Stop()

			img, ok := svc.Snapshot.Capture(svc.Session)
			if !ok {
				return errors.New("no frame captured")
			}
			if out != "" {
				if err := os.WriteFile(out, img.PNG, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", out, err)
				}
				logger.Info("snapshot written", "path", out, "id", img.ID, "w", img.Width, "h", img.Height)
			}
			if dataURI {
				fmt.Fprintln(cmd.OutOrStdout(), img.DataURI())
			}

			res := svc.Recognizer.Recognize(ctx, img)
			fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			if res.Failed {
				return errors.New("recognition failed")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "also write the captured frame as PNG to this path")
	cmd.Flags().BoolVar(&dataURI, "data-uri", false, "print the captured frame as a data URI before the text")
	return cmd
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(configPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
			}
			if err := config.DefaultConfig().Save(configPath); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}
