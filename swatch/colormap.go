package swatch

// ColorMap accumulates usages per color. Colors keep the order in which they were
// first added; usage lists only grow.
type ColorMap struct {
	order []Code
	users map[Code][]Usage
}

// NewColorMap returns an empty map.
func NewColorMap() *ColorMap {
	return &ColorMap{users: make(map[Code][]Usage)}
}

// Add appends usages under code.
func (m *ColorMap) Add(code Code, usages ...Usage) {
	if _, ok := m.users[code]; !ok {
		m.order = append(m.order, code)
	}
	m.users[code] = append(m.users[code], usages...)
}

// Codes returns the colors in first-seen order.
func (m *ColorMap) Codes() []Code {
	return append([]Code(nil), m.order...)
}

// Users returns the usages recorded for code.
func (m *ColorMap) Users(code Code) []Usage {
	return m.users[code]
}

// Len returns the number of distinct colors.
func (m *ColorMap) Len() int {
	return len(m.order)
}

// Usages returns the number of usages across all colors.
func (m *ColorMap) Usages() int {
	n := 0
	for _, users := range m.users {
		n += len(users)
	}
	return n
}

// absorb folds other into m in place.
func (m *ColorMap) absorb(other *ColorMap) {
	for _, code := range other.order {
		m.Add(code, other.users[code]...)
	}
}

// Merge returns a new map holding a's usages followed by b's. Usage lists of colors
// present in both are concatenated; neither input is modified.
func Merge(a, b *ColorMap) *ColorMap {
	merged := NewColorMap()
	for _, m := range []*ColorMap{a, b} {
		if m != nil {
			merged.absorb(m)
		}
	}
	return merged
}
