package report

import (
	"envreport/internal/gpu"
)

// Report is everything gathered during one invocation. It is built fresh each
// time and thrown away after rendering.
type Report struct {
	Facts []Fact

	// Probe is the result of running nvidia-smi without arguments
	Probe gpu.SMIProbe

	// GPUCount is the number of devices the compute runtime sees
	GPUCount int

	// MissingOptional lists optional packages whose absence degraded a fact
	MissingOptional []string

	// ShowFull prints the raw nvidia-smi output inside the fence
	ShowFull bool

	// InstallCommand prefixes the package list in the install hint
	InstallCommand string
}

func (r *Report) add(label, value string) {
	r.Facts = append(r.Facts, NewFact(label, value))
}

func (r *Report) addNested(label, value string) {
	r.Facts = append(r.Facts, NestedFact(label, value))
}

func (r *Report) addHeader(label string) {
	r.Facts = append(r.Facts, Header(label))
}

func (r *Report) recommend(pkg string) {
	for _, existing := range r.MissingOptional {
		if existing == pkg {
			return
		}
	}
	r.MissingOptional = append(r.MissingOptional, pkg)
}

// Lookup returns the value of the first fact with label, ignoring headers
func (r Report) Lookup(label string) (string, bool) {
	for _, f := range r.Facts {
		if f.Label == label && f.Value != nil {
			return *f.Value, true
		}
	}
	return "", false
}
