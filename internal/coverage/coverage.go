// Package coverage tallies questions per category and difficulty and finds
// the combinations that fall below the minimum question count.
package coverage

import (
	"fmt"
	"sort"

	"github.com/triviagame/checkquestions/internal/questions"
)

// MinPerLevel is the minimum number of questions required for every
// (category, difficulty) combination.
const MinPerLevel = 3

// Table maps category to difficulty to question count.
type Table map[string]map[questions.Difficulty]int

// Tally counts qs by category and difficulty. Difficulties outside the
// recognized levels are counted too; they just never appear in reports.
func Tally(qs []questions.Question) Table {
	t := make(Table)
	for _, q := range qs {
		levels, ok := t[q.Category]
		if !ok {
			levels = make(map[questions.Difficulty]int)
			t[q.Category] = levels
		}
		levels[q.Difficulty]++
	}
	return t
}

// Categories returns the category names in ascending order.
func (t Table) Categories() []string {
	cats := make([]string, 0, len(t))
	for c := range t {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// Count returns the number of questions for category at level, 0 if none.
func (t Table) Count(category string, level questions.Difficulty) int {
	return t[category][level]
}

// Len returns the number of distinct categories.
func (t Table) Len() int {
	return len(t)
}

// Total returns the sum of all cells, unknown levels included.
func (t Table) Total() int {
	n := 0
	for _, levels := range t {
		for _, c := range levels {
			n += c
		}
	}
	return n
}

// Deficiency is a (category, difficulty) combination with fewer than
// MinPerLevel questions.
type Deficiency struct {
	Category string
	Level    questions.Difficulty
	Count    int
}

func (d Deficiency) String() string {
	return fmt.Sprintf("%s %s (%d/%d)", d.Category, d.Level, d.Count, MinPerLevel)
}

// Deficiencies lists every short combination, ordered by category and
// then by level (EASY, MEDIUM, HARD).
func (t Table) Deficiencies() []Deficiency {
	var out []Deficiency
	for _, cat := range t.Categories() {
		for _, level := range questions.Levels() {
			if n := t.Count(cat, level); n < MinPerLevel {
				out = append(out, Deficiency{Category: cat, Level: level, Count: n})
			}
		}
	}
	return out
}

// UnknownLevels returns the difficulties seen in the table that are not
// recognized levels, sorted.
func (t Table) UnknownLevels() []questions.Difficulty {
	seen := make(map[questions.Difficulty]bool)
	for _, levels := range t {
		for d := range levels {
			if !d.Valid() {
				seen[d] = true
			}
		}
	}
	out := make([]questions.Difficulty, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
