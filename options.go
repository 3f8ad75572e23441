package trail

import (
	"time"

	"github.com/gogpu/ggtrail/tween"
)

// Defaults.
const (
	// DefaultRemoveDelay is how long a sample survives after capture.
	DefaultRemoveDelay = 400 * time.Millisecond

	// DefaultAgeStep is added to a sample's age on every outline visit.
	DefaultAgeStep = 0.2

	// DefaultTaper scales the ribbon half-width.
	DefaultTaper = 0.6

	// DefaultDirectionScale is the share of the pointer delta kept as a
	// sample's direction.
	DefaultDirectionScale = 0.25

	// DefaultDriftJitter is the width of the random drift band, centered on 0.
	DefaultDriftJitter = 3.0

	// DefaultSpawnChance is the probability band of each decoration kind.
	DefaultSpawnChance = 0.1
)

// Option configures an Engine during creation.
//
// Example:
//
//	e := trail.New(s, gg.Hex("#f36"),
//	    trail.WithRemoveDelay(250*time.Millisecond),
//	    trail.WithRand(trail.NewRand(42)),
//	)
type Option func(*options)

// options holds optional configuration for Engine creation.
type options struct {
	clock          Clock
	rand           Rand
	animator       tween.Animator
	removeDelay    time.Duration
	outline        OutlineOptions
	directionScale float64
	driftJitter    float64
	spawnChance    float64
	onSpawn        func(Shape)
}

// defaultOptions returns the default engine options.
func defaultOptions() options {
	return options{
		clock:          SystemClock(),
		rand:           globalRand{},
		removeDelay:    DefaultRemoveDelay,
		outline:        DefaultOutlineOptions(),
		directionScale: DefaultDirectionScale,
		driftJitter:    DefaultDriftJitter,
		spawnChance:    DefaultSpawnChance,
	}
}

// WithClock sets the time source for capture timestamps and expiry.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithRand sets the random source.
func WithRand(r Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rand = r
		}
	}
}

// WithAnimator sets the tween collaborator for decorations.
//
// The caller owns the animator and must advance it every frame, typically
// by adding it to the same Loop as the engine. Without this option the
// engine creates a private tween.Engine and advances it from Tick.
func WithAnimator(a tween.Animator) Option {
	return func(o *options) {
		o.animator = a
	}
}

// WithRemoveDelay sets how long samples live.
func WithRemoveDelay(d time.Duration) Option {
	return func(o *options) {
		o.removeDelay = d
	}
}

// WithAgeStep sets the per-visit age increment. Zero freezes ages.
func WithAgeStep(step float64) Option {
	return func(o *options) {
		o.outline.AgeStep = step
	}
}

// WithTaper sets the ribbon width factor.
func WithTaper(taper float64) Option {
	return func(o *options) {
		o.outline.Taper = taper
	}
}

// WithDriftJitter sets the width of the random drift band.
// Zero disables random drift, leaving only half the direction.
func WithDriftJitter(j float64) Option {
	return func(o *options) {
		o.driftJitter = j
	}
}

// WithSpawnChance sets the probability of each decoration kind. The three
// kinds use consecutive bands, so values above 1/3 leave no empty band.
// Zero disables decorations.
func WithSpawnChance(p float64) Option {
	return func(o *options) {
		o.spawnChance = p
	}
}

// WithSpawnHook registers fn to be called for every spawned decoration.
// fn runs while the engine is locked and must not call back into it.
func WithSpawnHook(fn func(Shape)) Option {
	return func(o *options) {
		o.onSpawn = fn
	}
}
