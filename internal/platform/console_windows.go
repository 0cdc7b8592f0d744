//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows"
)

const swHide = 0

var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
	procShowWindow       = user32.NewProc("ShowWindow")
)

// HideConsole hides the console window the process was started with.
type HideConsole struct{}

func (HideConsole) Setup() error {
	if err := procGetConsoleWindow.Find(); err != nil {
		return fmt.Errorf("locate GetConsoleWindow: %w", err)
	}
	if err := procShowWindow.Find(); err != nil {
		return fmt.Errorf("locate ShowWindow: %w", err)
	}

	hwnd, _, _ := procGetConsoleWindow.Call()
	if hwnd == 0 {
		// started without a console
		return nil
	}
	procShowWindow.Call(hwnd, swHide)
	return nil
}

// Default returns the environment for this platform.
func Default() Environment {
	return HideConsole{}
}
