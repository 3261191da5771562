package grammar

// Range is an inclusive integer table stepping from Min to Max
type Range struct {
	Min  int
	Max  int
	Step int
}

var (
	// ByteWidths are the valid M for bytes<M>
	ByteWidths = Range{Min: 1, Max: 32, Step: 1}

	// BitWidths are the valid M for int<M> and uint<M>
	BitWidths = Range{Min: 8, Max: 256, Step: 8}
)

// NewRange returns the table of every integer in [min, max]
func NewRange(min, max int) Range {
	return Range{Min: min, Max: max, Step: 1}
}

// Len returns the number of values in the table
func (r Range) Len() int {
	if r.Step < 1 || r.Max < r.Min {
		return 0
	}
	return (r.Max-r.Min)/r.Step + 1
}

// Values returns the table in ascending order
func (r Range) Values() []int {
	values := make([]int, 0, r.Len())
	for i := 0; i < r.Len(); i++ {
		values = append(values, r.Min+i*r.Step)
	}
	return values
}

// Contains reports whether n is one of the table values
func (r Range) Contains(n int) bool {
	if r.Len() == 0 || n < r.Min || n > r.Max {
		return false
	}
	return (n-r.Min)%r.Step == 0
}
