package models

// FilterAll is the wildcard value for the category, level and price filters.
const FilterAll = "all"

const (
	PriceFree = "free"
	PricePaid = "paid"
)

type FilterOptions struct {
	Search    string
	Category  string
	Level     string
	Price     string
	MinRating float64
}

// DefaultFilterOptions matches every course.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		Category: FilterAll,
		Level:    FilterAll,
		Price:    FilterAll,
	}
}
