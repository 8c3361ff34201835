package dataset

import "math"

/*
Entropy returns the Shannon entropy in bits of the label column of the
dataset: the sum of -p*log2(p) over every distinct label, p being the share
of records carrying it. A dataset with a single label has entropy 0.

Calling Entropy on an empty dataset returns a *PreconditionError.
*/
func (d Dataset) Entropy() (float64, error) {
	if len(d) == 0 {
		return 0.0, NewPreconditionError("entropy", "empty dataset")
	}
	var result float64
	total := float64(len(d))
	// counts are summed in first-occurrence order so the result is
	// reproducible bit for bit
	for _, lc := range d.CountLabels() {
		p := float64(lc.Count) / total
		result -= p * math.Log2(p)
	}
	return result, nil
}
