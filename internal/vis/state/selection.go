package state

// Selection tracks the selected zone and the advisory hover zone. At
// most one zone is selected at a time. Hover is presentation-only and
// never drives the viewport.
type Selection struct {
	SelectedID string
	HoverID    string
}

// Toggle applies a click on id: an unselected zone becomes selected,
// clicking the selected zone again (or empty id, i.e. water) clears
// the selection. Returns the new selected id, empty meaning none.
func (s *Selection) Toggle(id string) string {
	if id == "" || id == s.SelectedID {
		s.SelectedID = ""
	} else {
		s.SelectedID = id
	}
	return s.SelectedID
}

// SetHover updates the advisory hover id.
func (s *Selection) SetHover(id string) {
	s.HoverID = id
}

// Clear drops selection and hover.
func (s *Selection) Clear() {
	s.SelectedID = ""
	s.HoverID = ""
}

// IsSelected reports whether id is the selected zone.
func (s *Selection) IsSelected(id string) bool {
	return id != "" && id == s.SelectedID
}
