package questions

// Difficulty is the difficulty level of a question as stored in the dataset.
type Difficulty string

const (
	Easy   Difficulty = "EASY"
	Medium Difficulty = "MEDIUM"
	Hard   Difficulty = "HARD"
)

// Levels returns the recognized difficulty levels, easiest first.
func Levels() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// Valid reports whether d is one of the recognized levels.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// Question is the subset of a dataset record needed for coverage checks.
// Other fields in the source (prompt, choices, answer, ...) are ignored.
type Question struct {
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
}
