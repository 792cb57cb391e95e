package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Frame sources understood by the camera layer.
const (
	SourceCamera = "camera"
	SourceScreen = "screen"
)

const (
	defaultFailureText     = "テキスト認識に失敗しました。もう一度お試しください。"
	defaultCameraErrorText = "カメラへのアクセスに失敗しました。カメラの接続とアクセス許可を確認してください。"
)

// Config holds runtime configuration for capture, recognition and the UI.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug    bool `json:"debug"`
	DarkMode bool `json:"dark_mode"`

	// Camera parameters. IdealWidth/IdealHeight are advisory; the device may
	// deliver a different native size.
	Source      string `json:"source"`
	Device      string `json:"device"`
	Facing      string `json:"facing"`
	IdealWidth  int    `json:"ideal_width"`
	IdealHeight int    `json:"ideal_height"`

	// Recognition parameters
	Language        string `json:"language"`
	PageSegMode     int    `json:"page_seg_mode"`
	TessdataPrefix  string `json:"tessdata_prefix"`
	FoldWidth       bool   `json:"fold_width"`
	FailureText     string `json:"failure_text"`
	CameraErrorText string `json:"camera_error_text"`

	// UI
	TextSize       string `json:"text_size"`
	RefreshMillis  int    `json:"refresh_ms"`
	WindowWidth    int    `json:"window_width"`
	WindowHeight   int    `json:"window_height"`
	PreviewMaxW    int    `json:"preview_max_w"`
	PreviewMaxH    int    `json:"preview_max_h"`
	DebugLogPeriod int    `json:"debug_log_period_s"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:           false,
		DarkMode:        false,
		Source:          SourceCamera,
		Device:          "0",
		Facing:          "environment",
		IdealWidth:      1280,
		IdealHeight:     720,
		Language:        "jpn",
		PageSegMode:     0,
		TessdataPrefix:  "",
		FoldWidth:       false,
		FailureText:     defaultFailureText,
		CameraErrorText: defaultCameraErrorText,
		TextSize:        "large",
		RefreshMillis:   66,
		WindowWidth:     720,
		WindowHeight:    900,
		PreviewMaxW:     640,
		PreviewMaxH:     360,
		DebugLogPeriod:  5,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	c.Source = strings.ToLower(strings.TrimSpace(c.Source))
	if c.Source != SourceCamera && c.Source != SourceScreen {
		c.Source = SourceCamera
	}
	if strings.TrimSpace(c.Device) == "" {
		c.Device = "0"
	}
	if c.Facing != "environment" && c.Facing != "user" {
		c.Facing = "environment"
	}
	if c.IdealWidth <= 0 {
		c.IdealWidth = 1280
	}
	if c.IdealHeight <= 0 {
		c.IdealHeight = 720
	}
	if strings.TrimSpace(c.Language) == "" {
		c.Language = "jpn"
	}
	if c.PageSegMode < 0 || c.PageSegMode > 13 {
		c.PageSegMode = 0
	}
	if c.FailureText == "" {
		c.FailureText = defaultFailureText
	}
	if c.CameraErrorText == "" {
		c.CameraErrorText = defaultCameraErrorText
	}
	switch c.TextSize {
	case "normal", "large", "extra-large":
	default:
		c.TextSize = "large"
	}
	if c.RefreshMillis < 15 {
		c.RefreshMillis = 66
	}
	if c.WindowWidth < 320 {
		c.WindowWidth = 720
	}
	if c.WindowHeight < 240 {
		c.WindowHeight = 900
	}
	if c.PreviewMaxW < 100 {
		c.PreviewMaxW = 640
	}
	if c.PreviewMaxH < 100 {
		c.PreviewMaxH = 360
	}
	if c.DebugLogPeriod <= 0 {
		c.DebugLogPeriod = 5
	}
	return nil
}

// DefaultPath returns the per-user config file location, falling back to the
// working directory when no user config dir is available.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "camocr.json"
	}
	return filepath.Join(dir, "camocr", "config.json")
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format, creating
// the parent directory when needed.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
