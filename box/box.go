package box

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tailored-agentic-units/statebox/observability"
)

// DefaultName is the name used when a config leaves it empty.
const DefaultName = "Box One"

// DefaultMeditation is how long MeditateDefault waits unless overridden.
const DefaultMeditation = time.Second

// Observation is the result of collapsing a box.
type Observation struct {
	PhysicalState string    `json:"physical_state"`
	MentalState   string    `json:"mental_state"`
	ObservedAt    time.Time `json:"observation_time"`
	Intent        string    `json:"observer_intent"`
}

// Status is a point-in-time snapshot of a box.
type Status struct {
	Name           string     `json:"name"`
	ID             string     `json:"id"`
	PhysicalState  string     `json:"physical_state"`
	MentalState    string     `json:"mental_state"`
	Phase          Phase      `json:"observation_state"`
	AgeSeconds     float64    `json:"age_seconds"`
	LastObservedAt *time.Time `json:"last_interaction"`
}

// Option configures a Box during New.
type Option func(*Box)

// WithClock overrides the system clock. A nil clock keeps SystemClock.
func WithClock(c Clock) Option {
	return func(b *Box) { b.clock = c }
}

// WithRand overrides the entropy-seeded random source. A nil source keeps
// the default.
func WithRand(r Rand) Option {
	return func(b *Box) { b.rng = r }
}

// WithObserver overrides the default NoOpObserver. A nil observer keeps it.
func WithObserver(o observability.Observer) Option {
	return func(b *Box) { b.observer = o }
}

// WithDefaultIntent sets the intent used by ObserveDefault.
func WithDefaultIntent(intent string) Option {
	return func(b *Box) { b.defaultIntent = intent }
}

// WithMeditation sets the duration used by MeditateDefault.
func WithMeditation(d time.Duration) Option {
	return func(b *Box) { b.meditation = d }
}

// Box holds one entity's phase and descriptors.
type Box struct {
	name      string
	id        string
	phase     Phase
	physical  string
	mental    string
	createdAt time.Time
	lastSeen  time.Time
	observed  bool

	clock         Clock
	rng           Rand
	observer      observability.Observer
	defaultIntent string
	meditation    time.Duration
}

// New creates an unresolved box. The creation time is read from the clock
// after options are applied.
func New(name string, opts ...Option) *Box {
	b := &Box{
		name:          name,
		id:            uuid.New().String(),
		phase:         PhaseUnresolved,
		physical:      Undefined,
		mental:        Undefined,
		clock:         SystemClock{},
		observer:      observability.NoOpObserver{},
		defaultIntent: DefaultIntent,
		meditation:    DefaultMeditation,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.clock == nil {
		b.clock = SystemClock{}
	}
	if b.rng == nil {
		b.rng = NewRand(0)
	}
	if b.observer == nil {
		b.observer = observability.NoOpObserver{}
	}

	b.createdAt = b.clock.Now()

	b.emit(context.Background(), EventCreate, observability.LevelVerbose, "box.New", map[string]any{
		"name": b.name,
		"id":   b.id,
	})

	return b
}

// Name returns the label the box was created with.
func (b *Box) Name() string { return b.name }

// ID returns the box's instance UUID.
func (b *Box) ID() string { return b.id }

// Phase returns the current phase.
func (b *Box) Phase() Phase { return b.phase }

// CreatedAt returns the construction timestamp.
func (b *Box) CreatedAt() time.Time { return b.createdAt }

// EnterSuperposition puts the box into superposition from any phase.
// Repeated calls leave the same state.
func (b *Box) EnterSuperposition() {
	b.phase = PhaseSuperposed
	b.physical = AllPossibleStates
	b.mental = AllPossibleThoughts

	b.emit(context.Background(), EventSuperpose, observability.LevelVerbose, "box.EnterSuperposition", map[string]any{
		"id": b.id,
	})
}

// Observe collapses the box according to intent. Any intent is accepted;
// unknown ones take the random branch. The observation time never moves
// backwards even if the clock does.
func (b *Box) Observe(intent string) Observation {
	now := b.clock.Now()
	if b.observed && now.Before(b.lastSeen) {
		now = b.lastSeen
	}

	out, random := Resolve(intent, b.rng)

	b.phase = PhaseObserved
	b.physical = out.Physical
	b.mental = out.Mental
	b.lastSeen = now
	b.observed = true

	b.emit(context.Background(), EventObserve, observability.LevelInfo, "box.Observe", map[string]any{
		"id":       b.id,
		"intent":   intent,
		"physical": out.Physical,
		"mental":   out.Mental,
		"random":   random,
	})

	return Observation{
		PhysicalState: out.Physical,
		MentalState:   out.Mental,
		ObservedAt:    now,
		Intent:        intent,
	}
}

// ObserveDefault observes with the box's default intent.
func (b *Box) ObserveDefault() Observation {
	return b.Observe(b.defaultIntent)
}

// Status returns a snapshot of the box. Age is recomputed on every call.
func (b *Box) Status() Status {
	st := Status{
		Name:          b.name,
		ID:            b.id,
		PhysicalState: b.physical,
		MentalState:   b.mental,
		Phase:         b.phase,
		AgeSeconds:    b.clock.Now().Sub(b.createdAt).Seconds(),
	}
	if b.observed {
		last := b.lastSeen
		st.LastObservedAt = &last
	}
	return st
}

// Meditate waits for d and returns an insight. A zero duration returns at
// once; a negative one fails with ErrInvalidDuration. Cancelling ctx ends the
// wait early with ctx.Err(). The box's phase and descriptors are untouched.
func (b *Box) Meditate(ctx context.Context, d time.Duration) (string, error) {
	if d < 0 {
		return "", fmt.Errorf("meditate for %s: %w", d, ErrInvalidDuration)
	}

	b.emit(ctx, EventMeditateStart, observability.LevelVerbose, "box.Meditate", map[string]any{
		"id":                b.id,
		"requested_seconds": d.Seconds(),
	})

	if d > 0 {
		select {
		case <-b.clock.After(d):
		case <-ctx.Done():
			b.emit(ctx, EventMeditateCancel, observability.LevelWarning, "box.Meditate", map[string]any{
				"id":    b.id,
				"error": ctx.Err().Error(),
			})
			return "", ctx.Err()
		}
	}

	insight := pick(b.rng, insights)

	b.emit(ctx, EventMeditateComplete, observability.LevelInfo, "box.Meditate", map[string]any{
		"id":                      b.id,
		"insight":                 insight,
		observability.DurationKey: d.Seconds(),
	})

	return insight, nil
}

// MeditateDefault meditates for the box's default duration.
func (b *Box) MeditateDefault(ctx context.Context) (string, error) {
	return b.Meditate(ctx, b.meditation)
}

func (b *Box) emit(ctx context.Context, typ observability.EventType, level observability.Level, source string, data map[string]any) {
	b.observer.OnEvent(ctx, observability.Event{
		Type:      typ,
		Level:     level,
		Timestamp: b.clock.Now(),
		Source:    source,
		Data:      data,
	})
}
