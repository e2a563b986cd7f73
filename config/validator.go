package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"tictac/viz"
)

// Validate checks every section and reports all violations at once.
func Validate(cfg *Config) error {
	var errs []string

	p := cfg.Physics
	if p.Damping <= 0 || p.Damping > 1 {
		errs = append(errs, fmt.Sprintf("physics.damping: %v not in (0, 1]", p.Damping))
	}
	if p.CellSize <= 0 {
		errs = append(errs, fmt.Sprintf("physics.cell_size: %v must be positive", p.CellSize))
	}
	if p.TimeStep <= 0 {
		errs = append(errs, fmt.Sprintf("physics.time_step: %v must be positive", p.TimeStep))
	}
	if p.Repulsion < 0 {
		errs = append(errs, fmt.Sprintf("physics.repulsion: %v must not be negative", p.Repulsion))
	}
	if p.RestLength < 0 {
		errs = append(errs, fmt.Sprintf("physics.rest_length: %v must not be negative", p.RestLength))
	}
	if p.SpringStiffness < 0 {
		errs = append(errs, fmt.Sprintf("physics.spring_stiffness: %v must not be negative", p.SpringStiffness))
	}

	if cfg.View.RenderedCount < 0 {
		errs = append(errs, fmt.Sprintf("view.rendered_count: %d must not be negative", cfg.View.RenderedCount))
	}
	if _, err := viz.ParseColoringMode(cfg.View.ColoringMode); err != nil {
		errs = append(errs, fmt.Sprintf("view.coloring_mode: %v", err))
	}
	if cfg.Evaluation.BatchSize < 1 {
		errs = append(errs, fmt.Sprintf("evaluation.batch_size: %d must be at least 1", cfg.Evaluation.BatchSize))
	}
	if cfg.Run.Ticks < 0 {
		errs = append(errs, fmt.Sprintf("run.ticks: %d must not be negative", cfg.Run.Ticks))
	}
	if cfg.Run.TickInterval <= 0 {
		errs = append(errs, fmt.Sprintf("run.tick_interval: %s must be positive", cfg.Run.TickInterval))
	}
	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("log.level: %v", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
