package matching

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/lgbarn/pgn-tree-go/internal/errors"
	"github.com/lgbarn/pgn-tree-go/internal/game"
)

// TagOperator is the comparison applied to a header value.
type TagOperator int

const (
	OpEqual TagOperator = iota
	OpNotEqual
	OpLessThan
	OpLessOrEqual
	OpGreaterThan
	OpGreaterOrEqual
	OpContains // case-insensitive substring
	OpRegex
	OpSoundex
)

// PlayerTag is a pseudo tag matching either the White or the Black tag.
const PlayerTag = "_Player"

// operatorPrefixes is ordered so two-character operators are tried first.
var operatorPrefixes = []struct {
	text string
	op   TagOperator
}{
	{"<=", OpLessOrEqual},
	{">=", OpGreaterOrEqual},
	{"<>", OpNotEqual},
	{"!=", OpNotEqual},
	{"<", OpLessThan},
	{">", OpGreaterThan},
	{"=", OpEqual},
	{"~", OpRegex},
}

// TagCriterion is one test on a header value.
type TagCriterion struct {
	Tag      string
	Value    string
	Operator TagOperator

	regex   *regexp.Regexp
	soundex string
	lower   string
}

// TagMatcher selects games by header values.
type TagMatcher struct {
	criteria []*TagCriterion
	matchAll bool
}

// NewTagMatcher creates a matcher requiring every criterion to hold.
func NewTagMatcher() *TagMatcher {
	return &TagMatcher{matchAll: true}
}

// SetMatchAll chooses between AND (true) and OR (false) of the criteria.
func (tm *TagMatcher) SetMatchAll(all bool) {
	tm.matchAll = all
}

// AddCriterion adds a test of tag against value.
func (tm *TagMatcher) AddCriterion(tag, value string, op TagOperator) error {
	c := &TagCriterion{Tag: tag, Value: value, Operator: op}

	switch op {
	case OpRegex:
		re, err := regexp.Compile(value)
		if err != nil {
			return fmt.Errorf("tag %s: %w", tag, err)
		}
		c.regex = re
	case OpSoundex:
		c.soundex = Soundex(value)
	case OpContains:
		c.lower = strings.ToLower(value)
	}

	tm.criteria = append(tm.criteria, c)
	return nil
}

// AddPlayerCriterion matches name against either player, phonetically when
// soundex is set and as a substring otherwise.
func (tm *TagMatcher) AddPlayerCriterion(name string, soundex bool) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("empty player name: %w", errors.ErrInvalidConfig)
	}
	op := OpContains
	if soundex {
		op = OpSoundex
	}
	return tm.AddCriterion(PlayerTag, name, op)
}

// ParseCriterion parses a line such as `White "Fischer"`, `Date >= "1970"`
// or `Event ~ "^World"`. Blank lines and lines starting with # are ignored.
func (tm *TagMatcher) ParseCriterion(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	tagEnd := strings.IndexAny(line, " \t<>=!~")
	if tagEnd <= 0 {
		return fmt.Errorf("tag criterion %q: %w", line, errors.ErrInvalidConfig)
	}
	tag := line[:tagEnd]
	rest := strings.TrimSpace(line[tagEnd:])

	op := OpEqual
	for _, p := range operatorPrefixes {
		if strings.HasPrefix(rest, p.text) {
			op = p.op
			rest = strings.TrimSpace(rest[len(p.text):])
			break
		}
	}

	if len(rest) >= 2 && rest[0] == '"' && rest[len(rest)-1] == '"' {
		rest = rest[1 : len(rest)-1]
	}
	return tm.AddCriterion(tag, rest, op)
}

// Load reads one criterion per line from r.
func (tm *TagMatcher) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if err := tm.ParseCriterion(scanner.Text()); err != nil {
			return errors.Wrapf(err, "line %d", lineNum)
		}
	}
	return scanner.Err()
}

// Match implements GameMatcher. A matcher without criteria accepts every game.
func (tm *TagMatcher) Match(g *game.Game) bool {
	if len(tm.criteria) == 0 {
		return true
	}
	for _, c := range tm.criteria {
		if tm.matchCriterion(g, c) != tm.matchAll {
			return !tm.matchAll
		}
	}
	return tm.matchAll
}

// Name implements GameMatcher.
func (tm *TagMatcher) Name() string {
	return fmt.Sprintf("TagMatcher(%d)", len(tm.criteria))
}

// CriteriaCount returns the number of criteria.
func (tm *TagMatcher) CriteriaCount() int {
	return len(tm.criteria)
}

func (tm *TagMatcher) matchCriterion(g *game.Game, c *TagCriterion) bool {
	if c.Tag == PlayerTag {
		return c.matchValue(g.Header.Value("White")) || c.matchValue(g.Header.Value("Black"))
	}

	value, ok := g.Header.Get(c.Tag)
	if !ok {
		// Only != holds for a missing tag.
		return c.Operator == OpNotEqual
	}
	return c.matchValue(value)
}

func (c *TagCriterion) matchValue(value string) bool {
	switch c.Operator {
	case OpEqual:
		return strings.EqualFold(value, c.Value)
	case OpNotEqual:
		return !strings.EqualFold(value, c.Value)
	case OpContains:
		return strings.Contains(strings.ToLower(value), c.lower)
	case OpRegex:
		return c.regex.MatchString(value)
	case OpSoundex:
		return Soundex(value) == c.soundex
	default:
		return c.Operator.holds(compareValues(value, c.Value))
	}
}

// holds applies a relational operator to a three-way comparison result.
func (op TagOperator) holds(cmp int) bool {
	switch op {
	case OpLessThan:
		return cmp < 0
	case OpLessOrEqual:
		return cmp <= 0
	case OpGreaterThan:
		return cmp > 0
	case OpGreaterOrEqual:
		return cmp >= 0
	}
	return false
}

// compareValues orders two header values as PGN dates when both parse as
// dates, then as numbers, and otherwise case-insensitively as text.
func compareValues(a, b string) int {
	if da, db := parseDate(a), parseDate(b); da > 0 && db > 0 {
		return compareInts(da, db)
	}
	if na, err := strconv.ParseFloat(a, 64); err == nil {
		if nb, err := strconv.ParseFloat(b, 64); err == nil {
			switch {
			case na < nb:
				return -1
			case na > nb:
				return 1
			}
			return 0
		}
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// parseDate encodes a "YYYY.MM.DD" date as YYYYMMDD. Unknown ("??") month
// and day parts count as 1. It returns 0 when there is no plausible year.
func parseDate(s string) int {
	parts := strings.Split(s, ".")
	year, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || year < 100 || year > 3000 {
		return 0
	}

	field := func(i, hi int) int {
		if i < len(parts) {
			if v, err := strconv.Atoi(strings.TrimSpace(parts[i])); err == nil && v >= 1 && v <= hi {
				return v
			}
		}
		return 1
	}
	return year*10000 + field(1, 12)*100 + field(2, 31)
}
