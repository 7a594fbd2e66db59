package energy

import (
	"fmt"
	"strconv"
	"strings"
)

type ActivityLevel int

const (
	Sedentary ActivityLevel = iota + 1
	Light
	Moderate
	Active
	VeryActive
)

type activityStep struct {
	key   string
	label string
	mult  float64
	desc  string
}

var activitySteps = map[ActivityLevel]activityStep{
	Sedentary:  {"sedentary", "Sedentary", 1.2, "Desk job, little to no exercise"},
	Light:      {"light", "Light", 1.375, "1-3 light workouts/week or on-feet part of day"},
	Moderate:   {"moderate", "Moderate", 1.55, "3-5 moderate workouts/week"},
	Active:     {"active", "Active", 1.725, "6-7 hard sessions/week or physical job"},
	VeryActive: {"very-active", "Very Active", 1.9, "Athlete-level training + physical job"},
}

// ActivityLevels lists the steps in order.
func ActivityLevels() []ActivityLevel {
	return []ActivityLevel{Sedentary, Light, Moderate, Active, VeryActive}
}

// step falls back to Moderate for unknown levels.
func (a ActivityLevel) step() activityStep {
	if s, ok := activitySteps[a]; ok {
		return s
	}
	return activitySteps[Moderate]
}

func (a ActivityLevel) Multiplier() float64 { return a.step().mult }
func (a ActivityLevel) String() string { return a.step().label }
func (a ActivityLevel) Description() string { return a.step().desc }
func (a ActivityLevel) Key() string { return a.step().key }

// ParseActivity accepts a level name ("very-active", "very_active") or its step number 1-5.
func ParseActivity(v string) (ActivityLevel, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if n, err := strconv.Atoi(v); err == nil {
		if _, ok := activitySteps[ActivityLevel(n)]; ok {
			return ActivityLevel(n), nil
		}
		return Moderate, fmt.Errorf("activity step %d out of range 1-5", n)
	}
	v = strings.NewReplacer("_", "-", " ", "-").Replace(v)
	for _, lvl := range ActivityLevels() {
		if lvl.Key() == v {
			return lvl, nil
		}
	}
	return Moderate, fmt.Errorf("unknown activity level %q", v)
}
