package common

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseList decodes a list-literal cell such as ['Paris', "Quai d'Orsay"] into
// its string items. Only quoted string items are accepted; anything else is an
// error so callers can normalize the cell to an empty list.
func ParseList(cell string) ([]string, error) {
	s := strings.TrimSpace(cell)
	if !strings.HasPrefix(s, "[") {
		return nil, fmt.Errorf("list literal must start with '[': %q", truncate(s))
	}

	items := []string{}
	i := 1
	expectItem := true
	for {
		i = skipSpace(s, i)
		if i >= len(s) {
			return nil, fmt.Errorf("unterminated list literal: %q", truncate(s))
		}

		c := s[i]
		switch {
		case c == ']':
			if rest := strings.TrimSpace(s[i+1:]); rest != "" {
				return nil, fmt.Errorf("trailing data after list literal: %q", truncate(rest))
			}
			return items, nil
		case c == ',' && !expectItem:
			expectItem = true
			i++
		case (c == '\'' || c == '"') && expectItem:
			item, next, err := readQuoted(s, i)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
			i = next
			expectItem = false
		default:
			return nil, fmt.Errorf("unexpected %q at offset %d", c, i)
		}
	}
}

// FormatList encodes items in the same list-literal syntax ParseList reads.
func FormatList(items []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		quote := byte('\'')
		if strings.Contains(item, "'") && !strings.Contains(item, `"`) {
			quote = '"'
		}
		b.WriteByte(quote)
		for _, r := range item {
			switch r {
			case '\\':
				b.WriteString(`\\`)
			case '\n':
				b.WriteString(`\n`)
			case '\r':
				b.WriteString(`\r`)
			case '\t':
				b.WriteString(`\t`)
			default:
				if r == rune(quote) {
					b.WriteByte('\\')
				}
				b.WriteRune(r)
			}
		}
		b.WriteByte(quote)
	}
	b.WriteByte(']')
	return b.String()
}

func readQuoted(s string, start int) (string, int, error) {
	quote := s[start]
	var b strings.Builder
	i := start + 1
	for i < len(s) {
		c := s[i]
		switch {
		case c == quote:
			return b.String(), i + 1, nil
		case c == '\\':
			if i+1 >= len(s) {
				return "", 0, fmt.Errorf("dangling escape at offset %d", i)
			}
			n, err := readEscape(s, i+1, &b)
			if err != nil {
				return "", 0, err
			}
			i = n
		default:
			r, size := utf8.DecodeRuneInString(s[i:])
			b.WriteRune(r)
			i += size
		}
	}
	return "", 0, fmt.Errorf("unterminated string starting at offset %d", start)
}

// readEscape handles the escape sequence at s[i] (just after the backslash)
// and returns the offset following it.
func readEscape(s string, i int, b *strings.Builder) (int, error) {
	switch c := s[i]; c {
	case '\\', '\'', '"':
		b.WriteByte(c)
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case 'r':
		b.WriteByte('\r')
	case 'x', 'u', 'U':
		width := map[byte]int{'x': 2, 'u': 4, 'U': 8}[c]
		if i+1+width > len(s) {
			return 0, fmt.Errorf("short \\%c escape at offset %d", c, i)
		}
		code, err := strconv.ParseUint(s[i+1:i+1+width], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("bad \\%c escape at offset %d: %w", c, i, err)
		}
		b.WriteRune(rune(code))
		return i + 1 + width, nil
	default:
		// unknown escapes are kept verbatim
		b.WriteByte('\\')
		b.WriteByte(c)
	}
	return i + 1, nil
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return i
}

func truncate(s string) string {
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}
