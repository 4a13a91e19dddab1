package engine

import (
	"fmt"
	"image/color"
)

// Scene owns the group registry and the per-group colors for one simulated
// world. Callers create a Scene, populate it, and pass it into render
// passes, which treat it as a frozen read-only snapshot.
type Scene struct {
	groups []*Group
	colors map[int]color.NRGBA
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{
		groups: make([]*Group, 0, 16),
		colors: make(map[int]color.NRGBA),
	}
}

// AddGroup registers a group and returns its id. Ids are monotonic indices
// into the registry, never reused or reassigned.
func (s *Scene) AddGroup(g *Group) int {
	g.id = len(s.groups)
	s.groups = append(s.groups, g)
	return g.id
}

// Group returns the registered group with the given id.
func (s *Scene) Group(id int) (*Group, error) {
	if id < 0 || id >= len(s.groups) {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownGroup, id)
	}
	return s.groups[id], nil
}

// Len returns the number of registered groups.
func (s *Scene) Len() int {
	return len(s.groups)
}

// ColorGroup assigns an RGBA color to a group. Only colored groups are
// visible to sensing.
func (s *Scene) ColorGroup(id int, c color.NRGBA) error {
	if id < 0 || id >= len(s.groups) {
		return fmt.Errorf("%w: id %d", ErrUnknownGroup, id)
	}
	s.colors[id] = c
	return nil
}

// UncolorGroup removes a group's color, making it invisible to sensing.
func (s *Scene) UncolorGroup(id int) error {
	if id < 0 || id >= len(s.groups) {
		return fmt.Errorf("%w: id %d", ErrUnknownGroup, id)
	}
	delete(s.colors, id)
	return nil
}

// Color returns the group's assigned color, if any.
func (s *Scene) Color(id int) (color.NRGBA, bool) {
	c, ok := s.colors[id]
	return c, ok
}

// UncoloredIDs returns the ids of all groups without an assigned color, in
// ascending order.
func (s *Scene) UncoloredIDs() []int {
	ids := make([]int, 0)
	for id := range s.groups {
		if _, ok := s.colors[id]; !ok {
			ids = append(ids, id)
		}
	}
	return ids
}
