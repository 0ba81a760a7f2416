package swatch

import "github.com/swatchkit/swatchkit/log"

// Repaint writes every swatch's current color to each of its usages. Usages whose
// element has left the document are skipped.
func Repaint(set Set) {
	written, skipped := 0, 0
	for _, sw := range set {
		value := sw.Color.CSS()
		for _, u := range sw.Users {
			if !u.Element.Attached() {
				skipped++
				continue
			}
			u.Element.SetStyle(u.Property, value)
			written++
		}
	}

	log.Debugf("repainted %d usages, skipped %d detached", written, skipped)
}
