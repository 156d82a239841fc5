package models

// Category labels a task may carry. CategoryUndetermined is a sentinel
// assigned when no explicit category was supplied and classification was
// unavailable or failed; it is never offered to the classifier as a
// candidate.
const (
	CategoryStudy         = "Study"
	CategoryWork          = "Work"
	CategoryPersonalGoals = "Personal Goals"
	CategoryHealth        = "Health"
	CategoryHousehold     = "Household"

	CategoryUndetermined = "Undetermined"
)

// CandidateLabels returns the fixed label set handed to the zero-shot
// classifier. The returned slice is a fresh copy on every call.
func CandidateLabels() []string {
	return []string{
		CategoryStudy,
		CategoryWork,
		CategoryPersonalGoals,
		CategoryHealth,
		CategoryHousehold,
	}
}

// ValidCategory reports whether category is one of the known labels,
// including the CategoryUndetermined sentinel.
func ValidCategory(category string) bool {
	switch category {
	case CategoryStudy, CategoryWork, CategoryPersonalGoals,
		CategoryHealth, CategoryHousehold, CategoryUndetermined:
		return true
	}
	return false
}

// LabelScore is a single classifier verdict: a candidate label and the
// model's confidence in it.
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}
