//go:build !ebiten

package gui

// Run reports that this binary was built without window support.
func Run(Options) error {
	return ErrUnavailable
}
