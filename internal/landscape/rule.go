package landscape

import (
	"strconv"
	"strings"

	"gopkg.in/errgo.v1"
)

// Family selects which rule evaluator drives a step.
type Family uint8

const (
	// LifeLike rules decide a cell from its live neighbour count.
	LifeLike Family = iota
	// Elementary rules propagate a 1-D Wolfram code down the grid row by row.
	Elementary
)

const (
	lifeFieldBits   = 9
	elementaryMask  = 0xff
	maxNeighbours   = 8
	elementaryLimit = 1 << 8
)

// Conway is B3/S23.
var Conway = BirthBit(3) | SurviveBit(2) | SurviveBit(3)

// Rule110 is the default elementary rule.
const Rule110 uint32 = 110

var (
	// ErrUnknownFamily is the cause of ParseFamily failures.
	ErrUnknownFamily = errgo.New("unknown rule family")
	// ErrInvalidRule is the cause of rule parsing failures.
	ErrInvalidRule = errgo.New("invalid rule")
)

func (f Family) String() string {
	switch f {
	case Elementary:
		return "elementary"
	default:
		return "life-like"
	}
}

// ParseFamily converts a family name to its value. "1" and "2" name the
// elementary and life-like families after their dimensionality.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "life", "lifelike", "life-like", "2", "2d":
		return LifeLike, nil
	case "elementary", "wolfram", "1", "1d":
		return Elementary, nil
	}
	return LifeLike, errgo.WithCausef(nil, ErrUnknownFamily, "unknown rule family %q", s)
}

// BirthBit is the life-like rule bit under which a dead cell with n live
// neighbours becomes alive.
func BirthBit(n int) uint32 { return 1 << (lifeFieldBits + n) }

// SurviveBit is the life-like rule bit under which a live cell with n live
// neighbours stays alive.
func SurviveBit(n int) uint32 { return 1 << n }

// BirthSet lists, ascending, the neighbour counts that give birth under rule.
func BirthSet(rule uint32) []int {
	return countsIn(rule >> lifeFieldBits)
}

// SurviveSet lists, ascending, the neighbour counts that survive under rule.
func SurviveSet(rule uint32) []int {
	return countsIn(rule)
}

func countsIn(field uint32) []int {
	var counts []int
	for n := 0; n <= maxNeighbours; n++ {
		if field&(1<<n) != 0 {
			counts = append(counts, n)
		}
	}
	return counts
}

// FormatLifeLike renders a life-like rule in B/S notation, e.g. "B3/S23".
func FormatLifeLike(rule uint32) string {
	var b strings.Builder
	b.WriteByte('B')
	for _, n := range BirthSet(rule) {
		b.WriteByte(byte('0' + n))
	}
	b.WriteString("/S")
	for _, n := range SurviveSet(rule) {
		b.WriteByte(byte('0' + n))
	}
	return b.String()
}

// FormatElementary renders an elementary rule as its Wolfram number.
func FormatElementary(rule uint32) string {
	return strconv.Itoa(int(rule & elementaryMask))
}

// FormatRule renders rule the way family interprets it.
func (f Family) FormatRule(rule uint32) string {
	if f == Elementary {
		return FormatElementary(rule)
	}
	return FormatLifeLike(rule)
}

// ParseLifeLike parses B/S notation ("B3/S23", case-insensitive, either
// field may be empty) into the 18-bit life-like encoding.
func ParseLifeLike(s string) (uint32, error) {
	birth, survive, ok := strings.Cut(strings.ToUpper(strings.TrimSpace(s)), "/")
	if !ok || !strings.HasPrefix(birth, "B") || !strings.HasPrefix(survive, "S") {
		return 0, errgo.WithCausef(nil, ErrInvalidRule, "rule %q is not in B/S notation", s)
	}
	var rule uint32
	for _, field := range []struct {
		digits string
		bit    func(int) uint32
	}{
		{birth[1:], BirthBit},
		{survive[1:], SurviveBit},
	} {
		for _, c := range field.digits {
			if c < '0' || c > '0'+maxNeighbours {
				return 0, errgo.WithCausef(nil, ErrInvalidRule, "rule %q: neighbour count %q out of range", s, c)
			}
			rule |= field.bit(int(c - '0'))
		}
	}
	return rule, nil
}

// ParseRule accepts either B/S notation or a decimal rule number.
func ParseRule(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		return uint32(n), nil
	}
	rule, err := ParseLifeLike(s)
	if err != nil {
		return 0, errgo.Mask(err, errgo.Is(ErrInvalidRule))
	}
	return rule, nil
}

// ParseFamilyRule parses s as a rule for family, additionally checking that
// numeric elementary rules fit in eight bits.
func ParseFamilyRule(family Family, s string) (uint32, error) {
	rule, err := ParseRule(s)
	if err != nil {
		return 0, errgo.Mask(err, errgo.Is(ErrInvalidRule))
	}
	if family == Elementary && rule >= elementaryLimit {
		return 0, errgo.WithCausef(nil, ErrInvalidRule, "elementary rule %d out of range [0, 255]", rule)
	}
	return rule, nil
}
