package state

import "github.com/atelier-dev/atelier-store/pkg/catalog"

// SetLanguage switches the active interface language.
func (s *Store) SetLanguage(lang catalog.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
}

// Language returns the active interface language.
func (s *Store) Language() catalog.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// SetTheme switches the active theme and projects it onto the style
// surface. The full variable map is re-applied on every change; the
// projection is idempotent, so there is no diffing against the previous
// theme.
func (s *Store) SetTheme(theme catalog.Theme) {
	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()

	s.applyTheme(theme)
}

// Theme returns the active theme.
func (s *Store) Theme() catalog.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

func (s *Store) applyTheme(theme catalog.Theme) {
	if s.surface == nil {
		return
	}
	for name, value := range catalog.Themes[theme] {
		s.surface.SetProperty(name, value)
	}
}
