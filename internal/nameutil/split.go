package nameutil

import (
	"errors"
	"strings"
	"unicode"
)

type splitState int

const (
	stateBare splitState = iota
	stateSingle
	stateDouble
)

// ErrUnterminatedQuote is returned by SplitCommand when a quoted
// section is never closed.
var ErrUnterminatedQuote = errors.New("unterminated quote in command string")

// SplitCommand tokenizes a shell-style command string: single quotes
// are literal, double quotes honor backslash escapes for `"` `\` `$`,
// and a bare backslash escapes the next character. Quoted empty
// strings yield empty tokens.
func SplitCommand(input string) ([]string, error) {
	var (
		tokens  []string
		current strings.Builder
		state   = stateBare
		started bool
	)

	flush := func() {
		if started || current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
			started = false
		}
	}

	runes := []rune(input)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		switch state {
		case stateSingle:
			if ch == '\'' {
				state = stateBare
			} else {
				current.WriteRune(ch)
			}

		case stateDouble:
			switch {
			case ch == '\\' && i+1 < len(runes):
				// Inside double quotes only " \ $ are escapable.
				if next := runes[i+1]; next == '"' || next == '\\' || next == '$' {
					current.WriteRune(next)
					i++
				} else {
					current.WriteRune(ch)
				}
			case ch == '"':
				state = stateBare
			default:
				current.WriteRune(ch)
			}

		default:
			switch {
			case ch == '\\':
				if i+1 < len(runes) {
					current.WriteRune(runes[i+1])
					i++
				} else {
					current.WriteRune(ch)
				}
				started = true
			case ch == '\'':
				state = stateSingle
				started = true
			case ch == '"':
				state = stateDouble
				started = true
			case unicode.IsSpace(ch):
				flush()
			default:
				current.WriteRune(ch)
				started = true
			}
		}
	}

	if state != stateBare {
		return nil, ErrUnterminatedQuote
	}
	flush()

	return tokens, nil
}
