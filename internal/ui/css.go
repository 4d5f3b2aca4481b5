package ui

import (
	"errors"
	"strings"
)

// ErrUnterminatedRule is returned when a rule block has no closing brace.
var ErrUnterminatedRule = errors.New("ui: unterminated rule")

// Rule is a single CSS rule: one selector and a set of property values (raw strings).
type Rule struct {
	Selector string            // ".panel" or "#menu"
	Props    map[string]string // "background" -> "#333"
}

// Stylesheet is a list of rules. Later rules override earlier ones.
type Stylesheet struct {
	Rules []Rule
}

// ParseCSS parses a small CSS subset: selectors .class or #id and blocks of "key: value;".
// Blocks with any other selector are skipped. Comments are removed first.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	rest := stripComments(content)
	for {
		head, body, found := strings.Cut(rest, "{")
		if !found {
			if strings.TrimSpace(head) != "" {
				return nil, ErrUnterminatedRule
			}
			return sheet, nil
		}
		body, tail, closed := strings.Cut(body, "}")
		if !closed {
			return nil, ErrUnterminatedRule
		}
		rest = tail
		sel := strings.TrimSpace(head)
		if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') {
			continue
		}
		sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: declarations(body)})
	}
}

// Props merges the properties of every rule matching class or id, in sheet order.
func (s *Stylesheet) Props(class, id string) map[string]string {
	merged := make(map[string]string)
	if s == nil {
		return merged
	}
	for _, r := range s.Rules {
		if (class != "" && r.Selector == "."+class) || (id != "" && r.Selector == "#"+id) {
			for k, v := range r.Props {
				merged[k] = v
			}
		}
	}
	return merged
}

func stripComments(s string) string {
	var b strings.Builder
	for {
		before, after, found := strings.Cut(s, "/*")
		b.WriteString(before)
		if !found {
			return b.String()
		}
		_, s, _ = strings.Cut(after, "*/")
	}
}

func declarations(body string) map[string]string {
	props := make(map[string]string)
	for _, decl := range strings.Split(body, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if k = strings.TrimSpace(k); k != "" {
			props[k] = strings.TrimSpace(v)
		}
	}
	return props
}
