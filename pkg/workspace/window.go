// Package workspace models a desktop of stacked rectangular module
// windows and resolves cable drops against it: point-in-window hit
// testing, recursive descent through group windows, compatibility
// matching against a window's slot list, and connector hover tracking.
package workspace

import (
	"image"

	"github.com/google/uuid"

	"github.com/wesen/patchbay/pkg/patchgraph"
)

// Window is a positioned, sized surface in the shared coordinate space.
type Window interface {
	ID() string
	Title() string
	Pos() image.Point
	Size() image.Point
}

// ContainerHolder is implemented only by leaf windows that own slot
// containers. Group windows do not implement it.
type ContainerHolder interface {
	Containers() []*patchgraph.Container
}

// Bounds returns the bounding rectangle of a window.
func Bounds(w Window) image.Rectangle {
	p := w.Pos()
	sz := w.Size()
	return image.Rect(p.X, p.Y, p.X+sz.X, p.Y+sz.Y)
}

// IsGroup reports whether the window aggregates other windows instead
// of owning containers.
func IsGroup(w Window) bool {
	_, holder := w.(ContainerHolder)
	return !holder
}

// ModuleWindow is a leaf window holding an ordered list of slot
// containers.
type ModuleWindow struct {
	WindowID string
	Name     string
	X, Y     int
	W, H     int
	Slots    []*patchgraph.Container
}

// NewModuleWindow creates a leaf window with a fresh uuid.
func NewModuleWindow(name string, x, y, w, h int, slots ...*patchgraph.Container) *ModuleWindow {
	return &ModuleWindow{
		WindowID: uuid.NewString(),
		Name:     name,
		X:        x, Y: y, W: w, H: h,
		Slots: slots,
	}
}

func (m *ModuleWindow) ID() string        { return m.WindowID }
func (m *ModuleWindow) Title() string     { return m.Name }
func (m *ModuleWindow) Pos() image.Point  { return image.Pt(m.X, m.Y) }
func (m *ModuleWindow) Size() image.Point { return image.Pt(m.W, m.H) }

// Containers implements ContainerHolder.
func (m *ModuleWindow) Containers() []*patchgraph.Container { return m.Slots }

// GroupWindow visually aggregates the windows its rectangle encloses.
// It owns no containers and is never an edge endpoint.
type GroupWindow struct {
	WindowID string
	Name     string
	X, Y     int
	W, H     int
}

// NewGroupWindow creates a group window with a fresh uuid.
func NewGroupWindow(name string, x, y, w, h int) *GroupWindow {
	return &GroupWindow{
		WindowID: uuid.NewString(),
		Name:     name,
		X:        x, Y: y, W: w, H: h,
	}
}

func (g *GroupWindow) ID() string        { return g.WindowID }
func (g *GroupWindow) Title() string     { return g.Name }
func (g *GroupWindow) Pos() image.Point  { return image.Pt(g.X, g.Y) }
func (g *GroupWindow) Size() image.Point { return image.Pt(g.W, g.H) }
