package matching

import (
	"errors"
	"strings"
	"testing"

	pgnerrors "github.com/lgbarn/pgn-tree-go/internal/errors"
)


func TestTagMatcher_Operators(t *testing.T) {
	g := headerGame(
		"White", "Fischer, Robert",
		"Black", "Spassky, Boris",
		"Result", "1-0",
		"Date", "1972.07.11",
		"WhiteElo", "2785",
	)

	tests := []struct {
		name  string
		tag   string
		value string
		op    TagOperator
		want  bool
	}{
		{"equal", "White", "Fischer, Robert", OpEqual, true},
		{"equal ignores case", "White", "fischer, robert", OpEqual, true},
		{"equal mismatch", "White", "Kasparov", OpEqual, false},
		{"not equal", "Result", "0-1", OpNotEqual, true},
		{"not equal missing tag", "Annotator", "X", OpNotEqual, true},
		{"missing tag", "Annotator", "X", OpEqual, false},
		{"contains", "Black", "SPASSKY", OpContains, true},
		{"regex", "White", "^Fisch", OpRegex, true},
		{"regex is case sensitive", "White", "^fisch", OpRegex, false},
		{"soundex", "White", "Fisher, Robert", OpSoundex, true},
		{"date before", "Date", "1973.01.01", OpLessThan, true},
		{"date after", "Date", "1972.07.11", OpGreaterOrEqual, true},
		{"partial date", "Date", "1972", OpGreaterThan, true},
		{"number", "WhiteElo", "2700", OpGreaterThan, true},
		{"number bound", "WhiteElo", "2785", OpLessOrEqual, true},
		{"text order", "Black", "T", OpLessThan, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := NewTagMatcher()
			if err := tm.AddCriterion(tt.tag, tt.value, tt.op); err != nil {
				t.Fatalf("AddCriterion: %v", err)
			}
			if got := tm.Match(g); got != tt.want {
				t.Errorf("Match() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestTagMatcher_RegexCompilationError(t *testing.T) {
	tm := NewTagMatcher()
	if err := tm.AddCriterion("White", "[invalid", OpRegex); err == nil {
		t.Error("expected error for invalid regex pattern")
	}
	if tm.CriteriaCount() != 0 {
		t.Errorf("CriteriaCount() = %d; want 0", tm.CriteriaCount())
	}
}

func TestTagMatcher_Player(t *testing.T) {
	g := headerGame("White", "Carlsen, Magnus", "Black", "Nepomniachtchi, Ian")

	tm := NewTagMatcher()
	if err := tm.AddPlayerCriterion("nepomniachtchi", false); err != nil {
		t.Fatalf("AddPlayerCriterion() error: %v", err)
	}
	if !tm.Match(g) {
		t.Error("expected substring match on Black")
	}

	tm = NewTagMatcher()
	if err := tm.AddPlayerCriterion("Carlson, Magnus", true); err != nil {
		t.Fatalf("AddPlayerCriterion() error: %v", err)
	}
	if !tm.Match(g) {
		t.Error("expected soundex match on White")
	}

	tm = NewTagMatcher()
	if err := tm.AddPlayerCriterion("  ", true); !errors.Is(err, pgnerrors.ErrInvalidConfig) {
		t.Errorf("AddPlayerCriterion(blank) error = %v; want ErrInvalidConfig", err)
	}
	if tm.CriteriaCount() != 0 {
		t.Errorf("CriteriaCount() = %d; want 0", tm.CriteriaCount())
	}

	if err := tm.AddPlayerCriterion("Caruana", false); err != nil {
		t.Fatalf("AddPlayerCriterion() error: %v", err)
	}
	if tm.Match(g) {
		t.Error("expected no match")
	}
}

func TestTagMatcher_MatchAll(t *testing.T) {
	g := headerGame("White", "Tal", "Result", "1-0")

	tm := NewTagMatcher()
	_ = tm.AddCriterion("White", "Tal", OpEqual)
	_ = tm.AddCriterion("Result", "0-1", OpEqual)
	if tm.Match(g) {
		t.Error("AND: expected no match")
	}

	tm.SetMatchAll(false)
	if !tm.Match(g) {
		t.Error("OR: expected match")
	}
}

func TestTagMatcher_NoCriteria(t *testing.T) {
	if !NewTagMatcher().Match(headerGame()) {
		t.Error("matcher without criteria should accept every game")
	}
}

func TestParseCriterion(t *testing.T) {
	tests := []struct {
		line  string
		tag   string
		value string
		op    TagOperator
	}{
		{`White "Fischer"`, "White", "Fischer", OpEqual},
		{`Date >= "1970.01.01"`, "Date", "1970.01.01", OpGreaterOrEqual},
		{`Date<="1980"`, "Date", "1980", OpLessOrEqual},
		{`Result <> "1-0"`, "Result", "1-0", OpNotEqual},
		{`Result != "0-1"`, "Result", "0-1", OpNotEqual},
		{`WhiteElo > 2600`, "WhiteElo", "2600", OpGreaterThan},
		{`BlackElo < "2000"`, "BlackElo", "2000", OpLessThan},
		{`Event ~ "^World"`, "Event", "^World", OpRegex},
		{`ECO = "B90"`, "ECO", "B90", OpEqual},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			tm := NewTagMatcher()
			if err := tm.ParseCriterion(tt.line); err != nil {
				t.Fatalf("ParseCriterion(%q): %v", tt.line, err)
			}
			if tm.CriteriaCount() != 1 {
				t.Fatalf("CriteriaCount() = %d; want 1", tm.CriteriaCount())
			}
			c := tm.criteria[0]
			if c.Tag != tt.tag || c.Value != tt.value || c.Operator != tt.op {
				t.Errorf("got (%q, %q, %d); want (%q, %q, %d)",
					c.Tag, c.Value, c.Operator, tt.tag, tt.value, tt.op)
			}
		})
	}
}

func TestParseCriterion_SkipsAndRejects(t *testing.T) {
	tm := NewTagMatcher()
	for _, line := range []string{"", "   ", "# comment"} {
		if err := tm.ParseCriterion(line); err != nil {
			t.Errorf("ParseCriterion(%q) = %v; want nil", line, err)
		}
	}
	if tm.CriteriaCount() != 0 {
		t.Errorf("CriteriaCount() = %d; want 0", tm.CriteriaCount())
	}

	err := tm.ParseCriterion(`= "x"`)
	if !errors.Is(err, pgnerrors.ErrInvalidConfig) {
		t.Errorf("ParseCriterion without tag = %v; want ErrInvalidConfig", err)
	}
}

func TestTagMatcher_Load(t *testing.T) {
	tm := NewTagMatcher()
	input := "# players\nWhite \"Fischer\"\n\nDate >= \"1970\"\n"
	if err := tm.Load(strings.NewReader(input)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tm.CriteriaCount() != 2 {
		t.Errorf("CriteriaCount() = %d; want 2", tm.CriteriaCount())
	}

	err := NewTagMatcher().Load(strings.NewReader("White \"ok\"\nEvent ~ \"(\"\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Load() = %v; want error on line 2", err)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1972.07.11", 19720711},
		{"1972.??.??", 19720101},
		{"1972", 19720101},
		{"????.??.??", 0},
		{"12", 0},
	}
	for _, tt := range tests {
		if got := parseDate(tt.in); got != tt.want {
			t.Errorf("parseDate(%q) = %d; want %d", tt.in, got, tt.want)
		}
	}
}
