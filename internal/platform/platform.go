// Package platform prepares the process environment before the render
// loop starts.
package platform

// Environment is run once at startup. Failures are cosmetic; callers
// log them and carry on.
type Environment interface {
	Setup() error
}

// Nop does nothing. It is the environment on platforms without a
// console window to hide.
type Nop struct{}

func (Nop) Setup() error { return nil }
