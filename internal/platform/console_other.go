//go:build !windows

package platform

// Default returns the environment for this platform.
func Default() Environment {
	return Nop{}
}
