package ui

import "fmt"

// selector is the parsed form of the simplified selector syntax the view
// layer uses: "tag", "#id", ".class", "[name=x]" and "tag[attr=value]".
// Attribute selectors match the name attribute and the Attrs map.
type selector struct {
	tag   string
	id    string
	class string
	attr  string
	value string
}

func parseSelector(raw string) selector {
	var sel selector
	rest := raw

	i := 0
	for i < len(rest) && rest[i] != '#' && rest[i] != '.' && rest[i] != '[' {
		i++
	}
	sel.tag = rest[:i]
	rest = rest[i:]

	for len(rest) > 0 {
		switch rest[0] {
		case '#':
			sel.id, rest = takeToken(rest[1:])
		case '.':
			sel.class, rest = takeToken(rest[1:])
		case '[':
			end := 1
			for end < len(rest) && rest[end] != ']' {
				end++
			}
			body := rest[1:end]
			for j := 0; j < len(body); j++ {
				if body[j] == '=' {
					sel.attr = body[:j]
					sel.value = trimQuotes(body[j+1:])
					break
				}
			}
			if end < len(rest) {
				end++
			}
			rest = rest[end:]
		default:
			return sel
		}
	}
	return sel
}

func takeToken(s string) (token, rest string) {
	i := 0
	for i < len(s) && s[i] != '#' && s[i] != '.' && s[i] != '[' {
		i++
	}
	return s[:i], s[i:]
}

func trimQuotes(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

func (sel selector) matches(el *Element) bool {
	if sel.tag != "" && el.Tag != sel.tag {
		return false
	}
	if sel.id != "" && el.ID != sel.id {
		return false
	}
	if sel.class != "" && !el.HasClass(sel.class) {
		return false
	}
	if sel.attr != "" {
		if sel.attr == "name" {
			if el.Name != sel.value {
				return false
			}
		} else if el.Attrs[sel.attr] != sel.value {
			return false
		}
	}
	return true
}

// Find returns the first element in the subtree matching the selector, in
// depth-first order, or nil when none matches.
func Find(root *Element, sel string) *Element {
	parsed := parseSelector(sel)
	var found *Element
	var walk func(*Element) bool
	walk = func(el *Element) bool {
		if parsed.matches(el) {
			found = el
			return true
		}
		for _, c := range el.children {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(root)
	return found
}

// MustFind returns the first element matching the selector and panics when
// none does. A missing required element is a markup defect that fails fast
// at construction time and is not recoverable.
func MustFind(root *Element, sel string) *Element {
	el := Find(root, sel)
	if el == nil {
		panic(fmt.Sprintf("ui: required element %q not found", sel))
	}
	return el
}
