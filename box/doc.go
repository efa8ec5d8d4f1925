// Package box implements a small stateful entity that moves between an
// unresolved, a superposed and an observed phase.
//
// Observing a box collapses it into a physical and a mental descriptor chosen
// by the observer's intent. Three intents map to fixed outcomes; anything else,
// the empty string included, draws each descriptor at random from a fixed
// pool. Meditation blocks for a while and returns one of five insights without
// touching the box's phase.
//
//	b := box.New("Box One")
//	b.EnterSuperposition()
//	obs := b.Observe("peaceful") // harmonious / serene
//	st := b.Status()             // st.Phase == box.PhaseObserved
//
// Time and randomness are injected through WithClock and WithRand so tests can
// control age, monotonicity and the random branch. A Box is owned by a single
// goroutine and is not safe for concurrent use.
package box
