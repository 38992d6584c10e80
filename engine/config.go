// api/engine/config.go
package engine

// Config holds the construction-time settings of the validation engine.
// The engine never mutates it after NewEngine, so a single engine instance
// is safe to share across concurrent callers.
type Config struct {
	// StrictSkillMatching makes critical skill gaps invalidate the request
	// instead of producing a warning. Default false.
	StrictSkillMatching bool
	// AllowOverAllocation downgrades over-allocation threshold breaches
	// from errors to warnings. Default false.
	AllowOverAllocation bool
	// MaxSkillGapTolerance is reserved for future use. Default 2.
	MaxSkillGapTolerance int
	// ValidateLeaveSchedules enables leave-overlap detection during
	// availability checks. Default true.
	ValidateLeaveSchedules bool
	// ValidateCapacityLimits enables enforcement of capacity thresholds.
	// Default true.
	ValidateCapacityLimits bool
}

// DefaultConfig returns the documented default engine settings.
func DefaultConfig() Config {
	return Config{
		StrictSkillMatching:    false,
		AllowOverAllocation:    false,
		MaxSkillGapTolerance:   2,
		ValidateLeaveSchedules: true,
		ValidateCapacityLimits: true,
	}
}

// Overrides carries caller-supplied settings. Nil fields keep the default;
// each set field replaces the corresponding Config field.
type Overrides struct {
	StrictSkillMatching    *bool
	AllowOverAllocation    *bool
	MaxSkillGapTolerance   *int
	ValidateLeaveSchedules *bool
	ValidateCapacityLimits *bool
}

// Apply merges the overrides into a copy of the config, field by field.
func (c Config) Apply(o *Overrides) Config {
	if o == nil {
		return c
	}
	if o.StrictSkillMatching != nil {
		c.StrictSkillMatching = *o.StrictSkillMatching
	}
	if o.AllowOverAllocation != nil {
		c.AllowOverAllocation = *o.AllowOverAllocation
	}
	if o.MaxSkillGapTolerance != nil {
		c.MaxSkillGapTolerance = *o.MaxSkillGapTolerance
	}
	if o.ValidateLeaveSchedules != nil {
		c.ValidateLeaveSchedules = *o.ValidateLeaveSchedules
	}
	if o.ValidateCapacityLimits != nil {
		c.ValidateCapacityLimits = *o.ValidateCapacityLimits
	}
	return c
}
