// Package config resolves runtime settings from built-in defaults and
// environment variable overrides. Invalid overrides are ignored rather
// than rejected, so a bad variable can never stop the game from starting.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/tilt-snake/constants"
)

// Input modes
const (
	ModeStick = "stick"
	ModeTilt  = "tilt"
)

// GameConfig holds step pacing settings
type GameConfig struct {
	StartInterval time.Duration
	MinInterval   time.Duration
	Speedup       time.Duration
}

// DefaultGame returns the default pacing configuration
func DefaultGame() GameConfig {
	return GameConfig{
		StartInterval: constants.StartStepInterval,
		MinInterval:   constants.MinStepInterval,
		Speedup:       constants.StepSpeedup,
	}
}

// GameFromEnv returns pacing configuration with environment overrides
func GameFromEnv() GameConfig {
	cfg := DefaultGame()

	if ms := getEnvInt("TILTSNAKE_START_INTERVAL_MS", 0); ms > 0 {
		cfg.StartInterval = time.Duration(ms) * time.Millisecond
	}
	if ms := getEnvInt("TILTSNAKE_MIN_INTERVAL_MS", 0); ms > 0 {
		cfg.MinInterval = time.Duration(ms) * time.Millisecond
	}
	if ms := getEnvInt("TILTSNAKE_SPEEDUP_MS", 0); ms > 0 {
		cfg.Speedup = time.Duration(ms) * time.Millisecond
	}

	return cfg
}

// InputConfig holds steering settings
type InputConfig struct {
	Mode     string // stick or tilt
	Alpha    float64
	DeadZone float64
	Trigger  float64
	InvertX  bool
	InvertY  bool
	SwapAxes bool
}

// DefaultInput returns the default steering configuration
func DefaultInput() InputConfig {
	return InputConfig{
		Mode:     ModeStick,
		Alpha:    constants.SmoothingAlpha,
		DeadZone: constants.DeadZone,
		Trigger:  constants.TriggerThreshold,
	}
}

// InputFromEnv returns steering configuration with environment overrides
func InputFromEnv() InputConfig {
	cfg := DefaultInput()

	if m := os.Getenv("TILTSNAKE_INPUT_MODE"); m == ModeStick || m == ModeTilt {
		cfg.Mode = m
	}
	if a := getEnvFloat("TILTSNAKE_ALPHA", -1); a >= 0 && a < 1 {
		cfg.Alpha = a
	}
	if dz := getEnvFloat("TILTSNAKE_DEAD_ZONE", -1); dz > 0 && dz < 1 {
		cfg.DeadZone = dz
	}
	if tr := getEnvFloat("TILTSNAKE_TRIGGER", -1); tr > 0 && tr < 1 {
		cfg.Trigger = tr
	}
	cfg.InvertX = getEnvBool("TILTSNAKE_INVERT_X", false)
	cfg.InvertY = getEnvBool("TILTSNAKE_INVERT_Y", false)
	cfg.SwapAxes = getEnvBool("TILTSNAKE_SWAP_AXES", false)

	return cfg
}

// AudioConfig holds mixer settings
type AudioConfig struct {
	Volume float64
	Muted  bool
}

// DefaultAudio returns the default audio configuration
func DefaultAudio() AudioConfig {
	return AudioConfig{
		Volume: constants.DefaultVolume,
	}
}

// AudioFromEnv returns audio configuration with environment overrides
func AudioFromEnv() AudioConfig {
	cfg := DefaultAudio()

	if v := getEnvFloat("TILTSNAKE_VOLUME", -1); v >= 0 && v <= 1 {
		cfg.Volume = v
	}
	cfg.Muted = getEnvBool("TILTSNAKE_MUTED", false)

	return cfg
}

// AppConfig holds the complete application configuration
type AppConfig struct {
	Game  GameConfig
	Input InputConfig
	Audio AudioConfig
}

// Load returns the complete configuration with environment overrides
func Load() AppConfig {
	return AppConfig{
		Game:  GameFromEnv(),
		Input: InputFromEnv(),
		Audio: AudioFromEnv(),
	}
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}
