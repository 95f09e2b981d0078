package model

// Allocation is one turn's integer percentage split, indexed by Category.
type Allocation [NumCategories]int

// Sum returns the total percentage allocated.
func (a Allocation) Sum() int {
	total := 0
	for _, v := range a {
		total += v
	}
	return total
}

// Get returns the percentage allocated to a category.
func (a Allocation) Get(c Category) int {
	return a[c]
}

// Reference is a normalized historical split for one year. Its values sum to 100.
type Reference [NumCategories]float64

// Sum returns the total of the reference percentages.
func (r Reference) Sum() float64 {
	total := 0.0
	for _, v := range r {
		total += v
	}
	return total
}
