// Package content holds the static game data: curriculum lessons, the quest
// catalog, the gear and character catalogs, the level table and the scoring
// constants. All of it is read-only configuration; none of it contains
// executable logic.
package content

// TeachingPoint is a single concept inside a lesson.
type TeachingPoint struct {
	ID          string `json:"point_id"`
	Concept     string `json:"concept"`
	Explanation string `json:"explanation"`
	BadExample  string `json:"bad_example,omitempty"`
	GoodExample string `json:"good_example"`
}

// Lesson is one curriculum sector's teaching material.
type Lesson struct {
	Title          string          `json:"lesson_title"`
	TeachingPoints []TeachingPoint `json:"teaching_points"`
}

// Curriculum maps sector keys to lessons.
type Curriculum map[string]Lesson
