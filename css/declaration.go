package css

import (
	"strings"

	"github.com/samber/lo"
)

// Raw is a declaration as written: any property, untouched value.
type Raw struct {
	Name      string
	Value     string
	Important bool
}

// Declaration is a color declaration after shorthand expansion.
type Declaration struct {
	Property  Property
	Value     Value
	Important bool
}

// SplitDeclarations splits a declaration block ("a: b; c: d !important") into raw
// declarations. Semicolons inside parentheses or quotes do not split. Entries without
// a colon are dropped.
func SplitDeclarations(block string) []Raw {
	var raws []Raw
	for _, part := range splitTopLevel(block, ';') {
		colon := strings.IndexByte(part, ':')
		if colon == -1 {
			continue
		}

		name := strings.ToLower(strings.TrimSpace(part[:colon]))
		value := strings.TrimSpace(part[colon+1:])
		if name == "" || value == "" {
			continue
		}

		important := false
		if i := strings.LastIndex(strings.ToLower(value), "!important"); i != -1 && strings.TrimSpace(value[i+len("!important"):]) == "" {
			important = true
			value = strings.TrimSpace(value[:i])
		}

		raws = append(raws, Raw{Name: name, Value: value, Important: important})
	}
	return raws
}

// FormatDeclarations renders raw declarations back into an inline style string.
func FormatDeclarations(raws []Raw) string {
	var b strings.Builder
	for i, r := range raws {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(r.Name)
		b.WriteString(": ")
		b.WriteString(r.Value)
		if r.Important {
			b.WriteString(" !important")
		}
		b.WriteString(";")
	}
	return b.String()
}

// SetDeclaration removes every declaration named name and appends name: value, so the
// new value wins over any earlier shorthand in the same block.
func SetDeclaration(raws []Raw, name, value string) []Raw {
	kept := make([]Raw, 0, len(raws)+1)
	for _, r := range raws {
		if r.Name != name {
			kept = append(kept, r)
		}
	}
	return append(kept, Raw{Name: name, Value: value})
}

// ParseDeclarations splits a block and expands it into color declarations.
func ParseDeclarations(block string) []Declaration {
	var decls []Declaration
	for _, raw := range SplitDeclarations(block) {
		decls = append(decls, Expand(raw)...)
	}
	return decls
}

// Expand maps one raw declaration onto the color longhands it sets. Shorthands that
// omit a color reset the longhand to its initial value. Invalid values and properties
// that carry no color expand to nothing.
func Expand(raw Raw) []Declaration {
	one := func(p Property, v Value) []Declaration {
		return []Declaration{{Property: p, Value: v, Important: raw.Important}}
	}
	many := func(ps []Property, v Value) []Declaration {
		decls := make([]Declaration, len(ps))
		for i, p := range ps {
			decls[i] = Declaration{Property: p, Value: v, Important: raw.Important}
		}
		return decls
	}

	if p, ok := PropertyByName(raw.Name); ok {
		v, ok := ParseValue(raw.Value)
		if !ok {
			return nil
		}
		return one(p, v)
	}

	switch raw.Name {
	case "background":
		layers := splitTopLevel(raw.Value, ',')
		if len(layers) == 0 {
			return nil
		}
		v, ok := shorthandColor(layers[len(layers)-1], LiteralValue(Transparent))
		if !ok {
			return nil
		}
		return one(BackgroundColor, v)
	case "border":
		v, ok := shorthandColor(raw.Value, Value{Keyword: CurrentColor})
		if !ok {
			return nil
		}
		return many(borderSides, v)
	case "border-top", "border-right", "border-bottom", "border-left":
		p, _ := PropertyByName(raw.Name + "-color")
		v, ok := shorthandColor(raw.Value, Value{Keyword: CurrentColor})
		if !ok {
			return nil
		}
		return one(p, v)
	case "border-color":
		return expandBorderColor(raw)
	case "outline":
		v, ok := shorthandColor(raw.Value, Value{Keyword: CurrentColor})
		if !ok {
			return nil
		}
		return one(OutlineColor, v)
	}

	return nil
}

// shorthandColor finds the color component of a shorthand value. A CSS-wide keyword
// applies to the whole shorthand; a missing color yields fallback.
func shorthandColor(value string, fallback Value) (Value, bool) {
	tokens := splitTopLevel(value, ' ')
	if len(tokens) == 1 {
		if v, ok := ParseValue(tokens[0]); ok && v.Keyword != Literal {
			return v, true
		}
	}

	for _, token := range tokens {
		if c, ok := ParseColor(token); ok {
			return LiteralValue(c), true
		}
		if strings.EqualFold(token, "currentcolor") {
			return Value{Keyword: CurrentColor}, true
		}
	}
	return fallback, true
}

// expandBorderColor applies the 1-4 value box rule to border-color.
func expandBorderColor(raw Raw) []Declaration {
	tokens := splitTopLevel(raw.Value, ' ')
	if len(tokens) == 0 || len(tokens) > 4 {
		return nil
	}

	values := make([]Value, len(tokens))
	for i, token := range tokens {
		v, ok := ParseValue(token)
		if !ok {
			return nil
		}
		values[i] = v
	}

	// top, right, bottom, left
	var sides [4]Value
	switch len(values) {
	case 1:
		sides = [4]Value{values[0], values[0], values[0], values[0]}
	case 2:
		sides = [4]Value{values[0], values[1], values[0], values[1]}
	case 3:
		sides = [4]Value{values[0], values[1], values[2], values[1]}
	case 4:
		sides = [4]Value{values[0], values[1], values[2], values[3]}
	}

	decls := make([]Declaration, 4)
	for i, p := range borderSides {
		decls[i] = Declaration{Property: p, Value: sides[i], Important: raw.Important}
	}
	return decls
}

// splitTopLevel splits s on sep, ignoring separators nested in parentheses or quotes.
// With sep == ' ' any run of whitespace separates and empty tokens are dropped.
func splitTopLevel(s string, sep byte) []string {
	var (
		parts []string
		depth int
		quote byte
		start int
	)

	isSep := func(c byte) bool {
		if sep == ' ' {
			return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
		}
		return c == sep
	}

	flush := func(end int) {
		part := strings.TrimSpace(s[start:end])
		if part != "" || sep != ' ' {
			parts = append(parts, part)
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0 && isSep(c):
			flush(i)
			start = i + 1
		}
	}
	flush(len(s))

	if sep == ' ' {
		return parts
	}
	return lo.Compact(parts)
}
