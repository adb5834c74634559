package feasibility

// CatalogEntry is one of the classic worked examples, named ex0..ex9 after
// the exercise sheets they come from.
type CatalogEntry struct {
	Name string
	Set  ServiceSet
}

// Catalog returns the ten standard example task sets. All use implicit
// deadlines and are already in rate monotonic priority order. The noted
// utilizations are the exact totals; several sets sit exactly at U = 1,
// which is what makes them interesting boundary cases.
func Catalog() []CatalogEntry {
	return []CatalogEntry{
		{Name: "ex0", Set: mustSet([]int64{2, 10, 15}, []int64{1, 1, 2})},   // U≈0.7333
		{Name: "ex1", Set: mustSet([]int64{2, 5, 7}, []int64{1, 1, 2})},     // U≈0.9857
		{Name: "ex2", Set: mustSet([]int64{2, 5, 7, 13}, []int64{1, 1, 1, 2})}, // U≈0.9967
		{Name: "ex3", Set: mustSet([]int64{3, 5, 15}, []int64{1, 2, 3})},    // U≈0.9333
		{Name: "ex4", Set: mustSet([]int64{2, 4, 16}, []int64{1, 1, 4})},    // U=1.0
		{Name: "ex5", Set: mustSet([]int64{2, 5, 10}, []int64{1, 2, 1})},    // U=1.0
		{Name: "ex6", Set: mustSet([]int64{2, 5, 7, 13}, []int64{1, 1, 1, 2})}, // U≈0.9967
		{Name: "ex7", Set: mustSet([]int64{3, 5, 15}, []int64{1, 2, 4})},    // U=1.0
		{Name: "ex8", Set: mustSet([]int64{2, 5, 7, 13}, []int64{1, 1, 1, 2})}, // U≈0.9967
		{Name: "ex9", Set: mustSet([]int64{6, 8, 12, 24}, []int64{1, 2, 4, 6})}, // U=1.0
	}
}

// mustSet builds a catalog set; the literals above are known-valid.
func mustSet(periods, wcets []int64) ServiceSet {
	set, err := NewServiceSet(periods, wcets)
	if err != nil {
		panic(err)
	}
	return set
}
