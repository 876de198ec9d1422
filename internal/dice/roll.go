package dice

// Roll draws one value per die from src, each uniform in
// [1, d.Sides] inclusive. The returned slice has length d.Count and
// preserves draw order.
//
// d must come from New or Parse; src must be non-nil.
func Roll(d Descriptor, src Source) []int {
	out := make([]int, d.Count)
	for i := range out {
		out[i] = src.Intn(d.Sides) + 1
	}
	return out
}
