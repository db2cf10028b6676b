package bridge

// MemoryLocation is a Location held in memory, for callers without a
// browser (the HTTP adapter and tripctl). Replace always succeeds.
type MemoryLocation struct {
	href string
}

var _ Location = (*MemoryLocation)(nil)

// NewMemoryLocation returns a MemoryLocation pointing at href.
func NewMemoryLocation(href string) *MemoryLocation {
	return &MemoryLocation{href: href}
}

// Href returns the current URL.
func (l *MemoryLocation) Href() string { return l.href }

// Replace swaps the current URL.
func (l *MemoryLocation) Replace(href string) error {
	l.href = href
	return nil
}
