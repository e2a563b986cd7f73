package config

import (
	"time"

	"tictac/physics"
)

// Config is the top-level YAML structure.
type Config struct {
	Physics    physics.Config `yaml:"physics"`
	View       ViewConf       `yaml:"view"`
	Evaluation EvalConf       `yaml:"evaluation"`
	Run        RunConf        `yaml:"run"`
	Log        LogConf        `yaml:"log"`
}

// ViewConf seeds the initial visualization state.
type ViewConf struct {
	RenderedCount int    `yaml:"rendered_count"`
	ColoringMode  string `yaml:"coloring_mode"` // depth, probabilistic or minimax
}

type EvalConf struct {
	BatchSize int `yaml:"batch_size"` // nodes evaluated between yields
}

// RunConf drives the headless layout run.
type RunConf struct {
	Ticks        int           `yaml:"ticks"`
	Seed         uint64        `yaml:"seed"`          // 0 seeds from the clock
	TickInterval time.Duration `yaml:"tick_interval"` // frame period when serving
}

type LogConf struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

const (
	DefaultRenderedCount = 6000
	DefaultColoringMode  = "depth"
	DefaultBatchSize     = 1
	DefaultTicks         = 600
	DefaultTickInterval  = 16 * time.Millisecond
	DefaultLogLevel      = "info"
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	p := &cfg.Physics
	if p.Damping == 0 {
		p.Damping = physics.DefaultDamping
	}
	if p.CellSize == 0 {
		p.CellSize = physics.DefaultCellSize
	}
	if p.TimeStep == 0 {
		p.TimeStep = physics.DefaultTimeStep
	}
	if p.Repulsion == 0 {
		p.Repulsion = physics.DefaultRepulsion
	}
	if p.RestLength == 0 {
		p.RestLength = physics.DefaultRestLength
	}
	if p.SpringStiffness == 0 {
		p.SpringStiffness = physics.DefaultSpringStiffness
	}
	if cfg.View.RenderedCount == 0 {
		cfg.View.RenderedCount = DefaultRenderedCount
	}
	if cfg.View.ColoringMode == "" {
		cfg.View.ColoringMode = DefaultColoringMode
	}
	if cfg.Evaluation.BatchSize == 0 {
		cfg.Evaluation.BatchSize = DefaultBatchSize
	}
	if cfg.Run.Ticks == 0 {
		cfg.Run.Ticks = DefaultTicks
	}
	if cfg.Run.TickInterval == 0 {
		cfg.Run.TickInterval = DefaultTickInterval
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
