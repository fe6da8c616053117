//go:build !ebiten

package gui

// Run reports that the desktop window is not compiled in.
func Run(Options) error {
	return ErrNoGUI
}
