package lattice

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxNeighbors is the size of the 3D Moore neighbourhood.
const MaxNeighbors = 26

// Rule holds survive and birth sets as bitmasks over neighbour counts 0..26.
type Rule struct {
	Survive uint32
	Birth   uint32
}

// DefaultRule returns 4/4: a cell is alive next generation iff exactly four
// neighbours are alive, whatever its own state.
func DefaultRule() Rule {
	return Rule{Survive: 1 << 4, Birth: 1 << 4}
}

// Next returns the state that follows self given n alive neighbours.
func (r Rule) Next(self uint8, n int) uint8 {
	if n < 0 || n > MaxNeighbors {
		return 0
	}
	set := r.Birth
	if self == 1 {
		set = r.Survive
	}
	return uint8(set>>uint(n)) & 1
}

// String formats the rule in the same S/B notation ParseRule accepts.
func (r Rule) String() string {
	return formatCounts(r.Survive) + "/" + formatCounts(r.Birth)
}

// ParseRule reads "S/B" where each side is a comma-separated list of counts
// or inclusive ranges, for example "4/4" or "4-5/2,6". Either side may be
// empty.
func ParseRule(s string) (Rule, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("%w: %q (want S/B)", ErrInvalidRule, s)
	}
	survive, err := parseCounts(parts[0])
	if err != nil {
		return Rule{}, fmt.Errorf("%w: survive %q: %v", ErrInvalidRule, parts[0], err)
	}
	birth, err := parseCounts(parts[1])
	if err != nil {
		return Rule{}, fmt.Errorf("%w: birth %q: %v", ErrInvalidRule, parts[1], err)
	}
	return Rule{Survive: survive, Birth: birth}, nil
}

func parseCounts(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	var mask uint32
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		lo, hi := field, field
		if i := strings.Index(field, "-"); i >= 0 {
			lo, hi = field[:i], field[i+1:]
		}
		a, err := parseCount(lo)
		if err != nil {
			return 0, err
		}
		b, err := parseCount(hi)
		if err != nil {
			return 0, err
		}
		if a > b {
			return 0, fmt.Errorf("descending range %d-%d", a, b)
		}
		for n := a; n <= b; n++ {
			mask |= 1 << uint(n)
		}
	}
	return mask, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 0 || n > MaxNeighbors {
		return 0, fmt.Errorf("count %d outside [0,%d]", n, MaxNeighbors)
	}
	return n, nil
}

func formatCounts(mask uint32) string {
	if mask == 0 {
		return ""
	}
	var out []string
	for n := 0; n <= MaxNeighbors; {
		if mask&(1<<uint(n)) == 0 {
			n++
			continue
		}
		end := n
		for end+1 <= MaxNeighbors && mask&(1<<uint(end+1)) != 0 {
			end++
		}
		switch {
		case end == n:
			out = append(out, strconv.Itoa(n))
		case end == n+1:
			out = append(out, strconv.Itoa(n), strconv.Itoa(end))
		default:
			out = append(out, strconv.Itoa(n)+"-"+strconv.Itoa(end))
		}
		n = end + 1
	}
	return strings.Join(out, ",")
}
