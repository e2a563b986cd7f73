package physics

// Config holds the layout parameters. It is a value; swap it between steps
// with Engine.SetConfig.
type Config struct {
	Damping         float64 `yaml:"damping"`
	CellSize        float64 `yaml:"cell_size"`
	TimeStep        float64 `yaml:"time_step"`
	Repulsion       float64 `yaml:"repulsion"`
	RestLength      float64 `yaml:"rest_length"`
	SpringStiffness float64 `yaml:"spring_stiffness"`
}

const (
	DefaultDamping         = 0.85
	DefaultCellSize        = 5.0
	DefaultTimeStep        = 0.016
	DefaultRepulsion       = 0.3
	DefaultRestLength      = 1.0
	DefaultSpringStiffness = 120.0
)

func DefaultConfig() Config {
	return Config{
		Damping:         DefaultDamping,
		CellSize:        DefaultCellSize,
		TimeStep:        DefaultTimeStep,
		Repulsion:       DefaultRepulsion,
		RestLength:      DefaultRestLength,
		SpringStiffness: DefaultSpringStiffness,
	}
}
