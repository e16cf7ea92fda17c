package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type NameComponentSpec struct {
	Value string `yaml:"value"`
}

type PlayerComponentSpec struct {
	Speed                 float64 `yaml:"speed"`
	JumpVelocity          float64 `yaml:"jump_velocity"`
	Deceleration          float64 `yaml:"deceleration"`
	RotationSpeed         float64 `yaml:"rotation_speed"`
	CameraRotationSpeed   float64 `yaml:"camera_rotation_speed"`
	WeaponRotationSpeed   float64 `yaml:"weapon_rotation_speed"`
	VerticalRotationLimit float64 `yaml:"vertical_rotation_limit"`
	CameraNode            string  `yaml:"camera_node"`
	WeaponRigNode         string  `yaml:"weapon_rig_node"`
	AnimationPlayer       string  `yaml:"animation_player"`
	AnimationTree         string  `yaml:"animation_tree"`
	ArmPlaybackPath       string  `yaml:"arm_playback_path"`
	IdleAnim              string  `yaml:"idle_anim"`
	InspectAnim           string  `yaml:"inspect_anim"`
	ReloadAnim            string  `yaml:"reload_anim"`
	FireAnim              string  `yaml:"fire_anim"`
	AnimationTriggers     bool    `yaml:"animation_triggers"`
}

const (
	DefaultPlayerSpeed  = 5.0
	DefaultJumpVelocity = 4.5
)

// UnmarshalYAML fills speed and jump velocity with their defaults when the
// prefab leaves them out.
func (s *PlayerComponentSpec) UnmarshalYAML(node *yaml.Node) error {
	type plain PlayerComponentSpec
	out := plain{Speed: DefaultPlayerSpeed, JumpVelocity: DefaultJumpVelocity}
	if err := node.Decode(&out); err != nil {
		return err
	}
	*s = PlayerComponentSpec(out)
	return nil
}

// TransformComponentSpec positions a node; angles are in degrees.
type TransformComponentSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Z     float64 `yaml:"z"`
	Pitch float64 `yaml:"pitch"`
	Yaw   float64 `yaml:"yaw"`
	Roll  float64 `yaml:"roll"`
}

type CharacterBodyComponentSpec struct {
	Radius float64 `yaml:"radius"`
}

type LookComponentSpec struct {
	Pitch float64 `yaml:"pitch"`
	Yaw   float64 `yaml:"yaw"`
}

type AnimationClipSpec struct {
	Length float64 `yaml:"length"`
	Loop   bool    `yaml:"loop"`
}

type AnimationPlayerComponentSpec struct {
	Clips map[string]AnimationClipSpec `yaml:"clips"`
}

type AnimationStateSpec struct {
	Name   string  `yaml:"name"`
	Length float64 `yaml:"length"`
	Loop   bool    `yaml:"loop"`
}

type AnimationTransitionSpec struct {
	From              string `yaml:"from"`
	To                string `yaml:"to"`
	Switch            string `yaml:"switch"`
	AutoAdvance       bool   `yaml:"auto_advance"`
	AdvanceExpression string `yaml:"advance_expression"`
}

type StateMachineSpec struct {
	Name        string                    `yaml:"name"`
	Start       string                    `yaml:"start"`
	States      []AnimationStateSpec      `yaml:"states"`
	Transitions []AnimationTransitionSpec `yaml:"transitions"`
}

type AnimationTreeComponentSpec struct {
	Active     *bool              `yaml:"active"`
	Parameters map[string]any     `yaml:"parameters"`
	Machines   []StateMachineSpec `yaml:"machines"`
}
