package prefabs

// ProjectFile is the name of the project settings prefab.
const ProjectFile = "project.yaml"

type PhysicsSettings struct {
	DefaultGravity float64 `yaml:"default_gravity"`
	TicksPerSecond int     `yaml:"ticks_per_second"`
}

type InputSettings struct {
	Bindings map[string][]string `yaml:"bindings"`
}

type SceneSettings struct {
	Level   string   `yaml:"level"`
	Player  string   `yaml:"player"`
	Prefabs []string `yaml:"prefabs"`
}

// ProjectSettings are the project-wide values every scene reads.
type ProjectSettings struct {
	Name    string          `yaml:"name"`
	Physics PhysicsSettings `yaml:"physics"`
	Input   InputSettings   `yaml:"input"`
	Scene   SceneSettings   `yaml:"scene"`
}

const (
	defaultGravity        = 9.8
	defaultTicksPerSecond = 60
)

// LoadProjectSettings reads project.yaml and fills unset physics values.
func LoadProjectSettings() (ProjectSettings, error) {
	settings, err := LoadSpec[ProjectSettings](ProjectFile)
	if err != nil {
		return ProjectSettings{}, err
	}
	if settings.Physics.DefaultGravity == 0 {
		settings.Physics.DefaultGravity = defaultGravity
	}
	if settings.Physics.TicksPerSecond <= 0 {
		settings.Physics.TicksPerSecond = defaultTicksPerSecond
	}
	return settings, nil
}
