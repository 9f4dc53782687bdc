package swot

// Category is one of the four fixed SWOT assessment categories.
type Category string

const (
	CategoryStrengths     Category = "strengths"
	CategoryWeaknesses    Category = "weaknesses"
	CategoryOpportunities Category = "opportunities"
	CategoryThreats       Category = "threats"
)

// Categories returns all categories in assessment order.
func Categories() []Category {
	return []Category{
		CategoryStrengths,
		CategoryWeaknesses,
		CategoryOpportunities,
		CategoryThreats,
	}
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryStrengths, CategoryWeaknesses, CategoryOpportunities, CategoryThreats:
		return true
	}
	return false
}

// Title returns the capitalized display name, e.g. "Strengths".
func (c Category) Title() string {
	switch c {
	case CategoryStrengths:
		return "Strengths"
	case CategoryWeaknesses:
		return "Weaknesses"
	case CategoryOpportunities:
		return "Opportunities"
	case CategoryThreats:
		return "Threats"
	}
	return string(c)
}

// TrailingQuestion returns the fixed open-ended question appended to a
// generated question list for this category. It is always optional.
func (c Category) TrailingQuestion() string {
	return "What other " + c.Title() + " do you wish to add?"
}
