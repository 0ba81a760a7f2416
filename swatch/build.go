package swatch

import "github.com/swatchkit/swatchkit/log"

// Build turns a color map into a set with exactly one swatch per color, in the map's
// first-seen order. Usage lists are copied so the set does not alias the map.
func Build(m *ColorMap) Set {
	set := make(Set, 0, m.Len())
	index := make(map[Code]*Swatch, m.Len())

	for _, code := range m.order {
		users := m.users[code]
		if sw, ok := index[code]; ok {
			sw.Users = append(sw.Users, users...)
			continue
		}

		sw := &Swatch{Color: code, Users: append([]Usage(nil), users...)}
		index[code] = sw
		set = append(set, sw)
	}

	log.Debugf("built %d swatches", len(set))
	return set
}
