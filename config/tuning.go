package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is an optional YAML overlay applied on top of the built-in
// defaults. Every field is a pointer so a tuning file can override a single
// value and leave the rest alone.
type Tuning struct {
	Physics *PhysicsTuning          `yaml:"physics"`
	Player  *PlayerTuning           `yaml:"player"`
	Enemies map[string]*EnemyTuning `yaml:"enemies"`
	Combat  *CombatTuning           `yaml:"combat"`
}

type PhysicsTuning struct {
	Gravity        *float64 `yaml:"gravity"`
	WallSlideSpeed *float64 `yaml:"wall_slide_speed"`
}

type PlayerTuning struct {
	Acceleration   *float64 `yaml:"acceleration"`
	MaxSpeed       *float64 `yaml:"max_speed"`
	JumpSpeed      *float64 `yaml:"jump_speed"`
	MaxJumps       *int     `yaml:"max_jumps"`
	DashSpeed      *float64 `yaml:"dash_speed"`
	DashDuration   *float64 `yaml:"dash_duration"`
	DashCooldown   *float64 `yaml:"dash_cooldown"`
	AttackDuration *float64 `yaml:"attack_duration"`
	Health         *int     `yaml:"health"`
}

type EnemyTuning struct {
	Health         *int     `yaml:"health"`
	PatrolSpeed    *float64 `yaml:"patrol_speed"`
	ChaseSpeed     *float64 `yaml:"chase_speed"`
	DetectRange    *float64 `yaml:"detect_range"`
	AttackRange    *float64 `yaml:"attack_range"`
	ChaseDuration  *float64 `yaml:"chase_duration"`
	PauseDuration  *float64 `yaml:"pause_duration"`
	AttackCooldown *float64 `yaml:"attack_cooldown"`
	Damage         *int     `yaml:"damage"`
	KnockbackForce *float64 `yaml:"knockback_force"`
}

type CombatTuning struct {
	PlayerDamage    *int     `yaml:"player_damage"`
	PlayerKnockback *float64 `yaml:"player_knockback"`
}

// LoadTuning reads a YAML tuning file and applies it over the current
// values. The demo calls this again whenever the file changes on disk.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning file: %w", err)
	}
	if err := ApplyTuning(data); err != nil {
		return fmt.Errorf("tuning file %s: %w", path, err)
	}
	return nil
}

// ApplyTuning parses raw YAML tuning data and applies it.
func ApplyTuning(data []byte) error {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("parse tuning: %w", err)
	}
	t.apply()
	return nil
}

func (t *Tuning) apply() {
	if p := t.Physics; p != nil {
		setFloat(&Physics.Gravity, p.Gravity)
		setFloat(&Physics.WallSlideSpeed, p.WallSlideSpeed)
	}
	if p := t.Player; p != nil {
		setFloat(&Player.Acceleration, p.Acceleration)
		setFloat(&Player.MaxSpeed, p.MaxSpeed)
		setFloat(&Player.JumpSpeed, p.JumpSpeed)
		setInt(&Player.MaxJumps, p.MaxJumps)
		setFloat(&Player.DashSpeed, p.DashSpeed)
		setFloat(&Player.DashDuration, p.DashDuration)
		setFloat(&Player.DashCooldown, p.DashCooldown)
		setFloat(&Player.AttackDuration, p.AttackDuration)
		setInt(&Player.Health, p.Health)
	}
	for name, e := range t.Enemies {
		tc, ok := Enemy.Types[name]
		if !ok || e == nil {
			continue
		}
		setInt(&tc.Health, e.Health)
		setFloat(&tc.PatrolSpeed, e.PatrolSpeed)
		setFloat(&tc.ChaseSpeed, e.ChaseSpeed)
		setFloat(&tc.DetectRange, e.DetectRange)
		setFloat(&tc.AttackRange, e.AttackRange)
		setFloat(&tc.ChaseDuration, e.ChaseDuration)
		setFloat(&tc.PauseDuration, e.PauseDuration)
		setFloat(&tc.AttackCooldown, e.AttackCooldown)
		setInt(&tc.Damage, e.Damage)
		setFloat(&tc.KnockbackForce, e.KnockbackForce)
		Enemy.Types[name] = tc
	}
	if c := t.Combat; c != nil {
		setInt(&Combat.PlayerDamage, c.PlayerDamage)
		setFloat(&Combat.PlayerKnockback, c.PlayerKnockback)
	}
}

func setFloat(dst, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst, src *int) {
	if src != nil {
		*dst = *src
	}
}
