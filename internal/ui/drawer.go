// Package ui tracks per-session presentation state.
package ui

// Drawer tracks whether the cart drawer is open
type Drawer struct {
	Open bool `json:"open"`
}

// OpenDrawer shows the drawer
func (d *Drawer) OpenDrawer() { d.Open = true }

// Close hides the drawer
func (d *Drawer) Close() { d.Open = false }

// Toggle flips the drawer and returns the new state
func (d *Drawer) Toggle() bool {
	d.Open = !d.Open
	return d.Open
}

// IsOpen reports whether the drawer is shown
func (d *Drawer) IsOpen() bool { return d.Open }
