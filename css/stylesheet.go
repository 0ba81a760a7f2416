package css

import "strings"

// Rule is a style rule: a selector list and the color declarations of its block.
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// groupingAtRules are at-rules whose blocks hold ordinary style rules. Their conditions
// are not evaluated; the nested rules always apply.
var groupingAtRules = []string{"@media", "@supports", "@layer", "@container", "@document"}

// ParseStylesheet extracts style rules from a stylesheet in source order. Rules that
// declare no color are kept out. Unknown at-rules are skipped with their blocks.
func ParseStylesheet(src string) []Rule {
	var rules []Rule
	parseRules(stripComments(src), &rules)
	return rules
}

func parseRules(src string, rules *[]Rule) {
	pos := 0
	for pos < len(src) {
		open := strings.IndexByte(src[pos:], '{')
		semi := strings.IndexByte(src[pos:], ';')

		// statement at-rules such as @import or @charset
		if semi != -1 && (open == -1 || semi < open) && strings.HasPrefix(strings.TrimSpace(src[pos:pos+semi]), "@") {
			pos += semi + 1
			continue
		}
		if open == -1 {
			return
		}

		prelude := strings.TrimSpace(src[pos : pos+open])
		bodyStart := pos + open + 1
		bodyEnd := matchingBrace(src, bodyStart)
		body := src[bodyStart:min(bodyEnd, len(src))]
		pos = bodyEnd + 1

		switch {
		case strings.HasPrefix(prelude, "@"):
			if isGroupingAtRule(prelude) {
				parseRules(body, rules)
			}
		case prelude != "":
			decls := ParseDeclarations(body)
			if len(decls) > 0 {
				*rules = append(*rules, Rule{Selector: prelude, Declarations: decls})
			}
		}
	}
}

func isGroupingAtRule(prelude string) bool {
	name := strings.ToLower(strings.Fields(prelude)[0])
	for _, at := range groupingAtRules {
		if name == at {
			return true
		}
	}
	return false
}

// matchingBrace returns the index of the '}' closing the block that starts at from,
// or len(src) when the block is unterminated.
func matchingBrace(src string, from int) int {
	depth := 1
	var quote byte
	for i := from; i < len(src); i++ {
		c := src[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(src)
}

func stripComments(src string) string {
	var b strings.Builder
	for {
		start := strings.Index(src, "/*")
		if start == -1 {
			b.WriteString(src)
			return b.String()
		}
		b.WriteString(src[:start])
		end := strings.Index(src[start+2:], "*/")
		if end == -1 {
			return b.String()
		}
		src = src[start+2+end+2:]
	}
}
