package krill

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrBadLiteral is returned by the unquote helpers when the token text is
// not a well-formed literal of the expected class.
var ErrBadLiteral = errors.New("krill: malformed literal")

// UnquoteString decodes the verbatim text of a String token into its value:
// the surrounding quotes are stripped and escape sequences are resolved.
// The input is expected in the exact form TokenText returns it.
func UnquoteString(text string) (string, error) {
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return "", ErrBadLiteral
	}
	body := text[1 : len(text)-1]
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}

	var sb strings.Builder
	for i := 0; i < len(body); {
		r, w := utf8.DecodeRuneInString(body[i:])
		i += w
		if r != '\\' {
			sb.WriteRune(r)
			continue
		}
		if i >= len(body) {
			return "", ErrBadLiteral
		}
		e, w := utf8.DecodeRuneInString(body[i:])
		i += w
		switch e {
		case 'a':
			sb.WriteByte('\a')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'v':
			sb.WriteByte('\v')
		case '\\':
			sb.WriteByte('\\')
		case '"':
			sb.WriteByte('"')
		case '0', '1', '2', '3', '4', '5', '6', '7':
			v, n, err := hexOrOctalVal(body[i-1:], 8, 3)
			if err != nil {
				return "", err
			}
			i += n - 1
			sb.WriteRune(rune(v))
		case 'x':
			v, n, err := hexOrOctalVal(body[i:], 16, 2)
			if err != nil {
				return "", err
			}
			i += n
			sb.WriteByte(byte(v))
		case 'u':
			v, n, err := hexOrOctalVal(body[i:], 16, 4)
			if err != nil {
				return "", err
			}
			i += n
			sb.WriteRune(rune(v))
		case 'U':
			v, n, err := hexOrOctalVal(body[i:], 16, 8)
			if err != nil {
				return "", err
			}
			i += n
			sb.WriteRune(rune(v))
		default:
			return "", ErrBadLiteral
		}
	}
	return sb.String(), nil
}

// hexOrOctalVal reads exactly n digits of the given base from the front of
// s and returns the value and the number of bytes consumed.
func hexOrOctalVal(s string, base, n int) (int, int, error) {
	v := 0
	for i := 0; i < n; i++ {
		if i >= len(s) {
			return 0, 0, ErrBadLiteral
		}
		d := digitVal(rune(s[i]))
		if d >= base {
			return 0, 0, ErrBadLiteral
		}
		v = v*base + d
	}
	return v, n, nil
}

// UnquoteRaw decodes the verbatim text of a RawString token delimited by
// delim: the outer delimiters are stripped and each doubled delimiter
// inside collapses to one literal delimiter character.
func UnquoteRaw(text string, delim rune) (string, error) {
	d := string(delim)
	if len(text) < 2*len(d) || !strings.HasPrefix(text, d) || !strings.HasSuffix(text, d) {
		return "", ErrBadLiteral
	}
	body := text[len(d) : len(text)-len(d)]
	return strings.ReplaceAll(body, d+d, d), nil
}
