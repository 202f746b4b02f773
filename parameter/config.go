package parameter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the immutable simulation configuration shared by all components
// Passed by value; nothing mutates it after Load/Default
type Config struct {
	ScreenWidth  float32 `yaml:"screen_width"`
	ScreenHeight float32 `yaml:"screen_height"`

	PaddleWidth  float32 `yaml:"paddle_width"`
	PaddleHeight float32 `yaml:"paddle_height"`
	PaddleSpeed  float32 `yaml:"paddle_speed"`
	PaddleInset  float32 `yaml:"paddle_inset"`

	BallSize     float32 `yaml:"ball_size"`
	BallSpeed    float32 `yaml:"ball_speed"`
	SpeedGrowth  float32 `yaml:"speed_growth"`
	MaxBallSpeed float32 `yaml:"max_ball_speed"`

	Tick time.Duration `yaml:"tick"`
}

// Default returns the configuration of the classic 1600x1200 field
func Default() Config {
	return Config{
		ScreenWidth:  ScreenWidth,
		ScreenHeight: ScreenHeight,
		PaddleWidth:  PaddleWidth,
		PaddleHeight: PaddleHeight,
		PaddleSpeed:  PaddleSpeed,
		PaddleInset:  PaddleInset,
		BallSize:     BallSize,
		BallSpeed:    BallSpeed,
		SpeedGrowth:  BallSpeedGrowth,
		MaxBallSpeed: BallSpeedMax,
		Tick:         TickInterval,
	}
}

// Load reads a YAML file over the defaults and validates the result
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults, unknown keys are rejected
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks dimensions and speeds for a playable field
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value float32
	}{
		{"screen_width", c.ScreenWidth},
		{"screen_height", c.ScreenHeight},
		{"paddle_width", c.PaddleWidth},
		{"paddle_height", c.PaddleHeight},
		{"paddle_speed", c.PaddleSpeed},
		{"ball_size", c.BallSize},
		{"ball_speed", c.BallSpeed},
		{"max_ball_speed", c.MaxBallSpeed},
	}
	for _, p := range positive {
		if !(p.value > 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}

	if c.BallSpeed < BallSpeedMin {
		return fmt.Errorf("%w: ball_speed must be at least %v, got %v", ErrInvalidConfig, BallSpeedMin, c.BallSpeed)
	}
	// float32 steps below half the spacing at the far wall leave x unchanged
	if float32(c.ScreenWidth+c.BallSpeed) == c.ScreenWidth {
		return fmt.Errorf("%w: ball_speed %v cannot move the ball across screen_width %v", ErrInvalidConfig, c.BallSpeed, c.ScreenWidth)
	}
	if c.PaddleInset < 0 {
		return fmt.Errorf("%w: paddle_inset must not be negative, got %v", ErrInvalidConfig, c.PaddleInset)
	}
	if c.PaddleHeight >= c.ScreenHeight {
		return fmt.Errorf("%w: paddle_height %v does not fit screen_height %v", ErrInvalidConfig, c.PaddleHeight, c.ScreenHeight)
	}
	if c.BallSize >= c.ScreenHeight {
		return fmt.Errorf("%w: ball_size %v does not fit screen_height %v", ErrInvalidConfig, c.BallSize, c.ScreenHeight)
	}
	// The field between the paddles must leave room for the serve
	if c.LeftPaddleX()+c.PaddleWidth+c.BallSize >= c.CenterX() {
		return fmt.Errorf("%w: paddles too wide for screen_width %v", ErrInvalidConfig, c.ScreenWidth)
	}
	if c.SpeedGrowth < 1 {
		return fmt.Errorf("%w: speed_growth must be at least 1, got %v", ErrInvalidConfig, c.SpeedGrowth)
	}
	if c.MaxBallSpeed < c.BallSpeed {
		return fmt.Errorf("%w: max_ball_speed %v below ball_speed %v", ErrInvalidConfig, c.MaxBallSpeed, c.BallSpeed)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("%w: tick must be positive, got %v", ErrInvalidConfig, c.Tick)
	}
	return nil
}

// LeftPaddleX is the fixed x of the left paddle's left edge
func (c Config) LeftPaddleX() float32 { return c.PaddleInset }

// RightPaddleX is the fixed x of the right paddle's left edge
func (c Config) RightPaddleX() float32 { return c.ScreenWidth - c.PaddleInset - c.PaddleWidth }

// CenterX is the serve x
func (c Config) CenterX() float32 { return c.ScreenWidth / 2 }

// CenterY is the serve y
func (c Config) CenterY() float32 { return c.ScreenHeight / 2 }

// MaxPaddleY is the largest top edge that keeps a paddle fully on screen
func (c Config) MaxPaddleY() float32 { return c.ScreenHeight - c.PaddleHeight }
