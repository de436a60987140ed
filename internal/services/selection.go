package services

import "snailmail-delivery/internal/domain"

// Selection is the single expanded transport option, if any. The zero
// value is Unselected.
type Selection struct {
	mode domain.TransportMode
	set  bool
}

// Toggle returns the next state: toggling the selected mode clears it,
// any other mode becomes the selection.
func (s Selection) Toggle(mode domain.TransportMode) Selection {
	if s.set && s.mode == mode {
		return Selection{}
	}
	return Selection{mode: mode, set: true}
}

func (s Selection) Selected() (domain.TransportMode, bool) { return s.mode, s.set }

func (s Selection) IsSelected(mode domain.TransportMode) bool { return s.set && s.mode == mode }
