package carousel

// Progress is the percentage [0,100] shown by the progress indicator.
// One item counts as complete; an empty carousel reports 0.
func Progress(index, count int) float64 {
	if count <= 0 {
		return 0
	}
	if count == 1 {
		return 100
	}
	p := float64(index) / float64(count-1) * 100
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}
