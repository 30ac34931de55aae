package session

import "sort"

// Frontend runs the interactive loop for s until the user quits.
type Frontend func(s *Session) error

var frontends = map[string]Frontend{}

// Register adds a frontend under the provided name.
func Register(name string, f Frontend) {
	if name == "" || f == nil {
		return
	}
	frontends[name] = f
}

// Frontends exposes the registry of available frontends.
func Frontends() map[string]Frontend {
	return frontends
}

// FrontendNames lists the registered frontends alphabetically.
func FrontendNames() []string {
	names := make([]string, 0, len(frontends))
	for name := range frontends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
