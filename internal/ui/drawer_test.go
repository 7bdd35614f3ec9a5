package ui

import "testing"

func TestDrawer(t *testing.T) {
	var d Drawer
	if d.IsOpen() {
		t.Fatal("drawer should start closed")
	}

	d.OpenDrawer()
	d.OpenDrawer()
	if !d.IsOpen() {
		t.Error("expected open after OpenDrawer")
	}

	if d.Toggle() {
		t.Error("toggle from open should close")
	}
	if !d.Toggle() {
		t.Error("toggle from closed should open")
	}

	d.Close()
	if d.IsOpen() {
		t.Error("expected closed after Close")
	}
}
