package motion

// scriptedRand replays fixed values; the last value repeats once exhausted
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int

	floatCalls int
}

func (r *scriptedRand) Float64() float64 {
	r.floatCalls++
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[min(r.fi, len(r.floats)-1)]
	r.fi++
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 || n <= 0 {
		return 0
	}
	v := r.ints[min(r.ii, len(r.ints)-1)]
	r.ii++
	return v % n
}

// countingPolicy records how many times a color was picked
type countingPolicy struct {
	picks int
}

func (p *countingPolicy) Name() string { return "counting" }

func (p *countingPolicy) Pick(_ RandSource, _ *HueBanList) Color {
	p.picks++
	return ColorFromHSV(float64(p.picks%10)/10, 0.8, 0.8)
}
