package guid

import (
	"fmt"
	"strconv"

	"github.com/krotik/common/errorutil"
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes
const (
	hyphenCode = iota + 1
	hex8Code
	hex4Code
)

// Token definitions
var (
	hyphenToken = parsly.NewToken(hyphenCode, "-", matcher.NewByte('-'))
	hex8Token   = parsly.NewToken(hex8Code, "Hex8", newHexGroupMatcher(8))
	hex4Token   = parsly.NewToken(hex4Code, "Hex4", newHexGroupMatcher(4))
)

// groupTokens lists the six scanned groups in order. The 12-digit last text
// group is read as a 4-digit and an 8-digit group with no separator between.
var groupTokens = [6]*parsly.Token{hex8Token, hex4Token, hex4Token, hex4Token, hex4Token, hex8Token}

// groupShifts places each scanned group; the first three go to High, the rest to Low.
var groupShifts = [6]uint{32, 16, 0, 48, 32, 0}

func newHexGroupMatcher(width int) parsly.Matcher {
	return &hexGroupMatcher{width: width}
}

// hexGroupMatcher matches exactly width hex digits of either case
type hexGroupMatcher struct {
	width int
}

func (m *hexGroupMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	matched := 0
	for i := pos; i < size && matched < m.width; i++ {
		if !isHexDigit(input[i]) {
			break
		}
		matched++
	}
	if matched != m.width {
		return 0
	}
	return matched
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// TryParse parses the canonical form xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
// (hex digits of either case, no braces or prefixes). It reports whether all
// six groups were scanned and nothing followed them. On failure the returned
// Guid may hold the groups scanned so far and must not be used.
func TryParse(s string) (Guid, bool) {
	return tryParse([]byte(s))
}

// TryParseBytes is like TryParse but takes the text as bytes. A nil slice
// is a caller contract violation and panics; an empty slice simply fails.
func TryParseBytes(b []byte) (Guid, bool) {
	errorutil.AssertTrue(b != nil, "guid: nil input")
	return tryParse(b)
}

func tryParse(b []byte) (Guid, bool) {
	var g Guid
	cursor := parsly.NewCursor("", b, 0)
	for i, token := range groupTokens {
		if i > 0 && i < 5 {
			if matched := cursor.MatchOne(hyphenToken); matched.Code != hyphenCode {
				return g, false
			}
		}
		matched := cursor.MatchOne(token)
		if matched.Code != token.Code {
			return g, false
		}
		v, err := strconv.ParseUint(matched.Text(cursor), 16, 32)
		if err != nil {
			return g, false
		}
		if i < 3 {
			g.High |= v << groupShifts[i]
		} else {
			g.Low |= v << groupShifts[i]
		}
	}
	return g, cursor.Pos == cursor.InputSize
}

// Parse is TryParse without the success flag. The result is only meaningful
// for input the caller has already validated.
func Parse(s string) Guid {
	g, _ := TryParse(s)
	return g
}

// ParseStrict parses s and returns ErrInvalidFormat if it is not a canonical GUID.
func ParseStrict(s string) (Guid, error) {
	g, ok := TryParse(s)
	if !ok {
		return Nil, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return g, nil
}

// MustParse is like ParseStrict but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) Guid {
	g, err := ParseStrict(s)
	if err != nil {
		panic(fmt.Sprintf("guid: MustParse(%q): %v", s, err))
	}
	return g
}
