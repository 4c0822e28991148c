package search

const (
	SourceKey   = "source"
	SourceValue = "go"
)

// Params maps query parameter names to values, e.g. q=coffee or engine=google.
type Params map[string]string

func (p Params) Clone() Params {
	clone := make(Params, len(p))
	for k, v := range p {
		clone[k] = v
	}
	return clone
}

// Merge builds the query sent to serpapi. It starts from the source marker, adds every
// default that the overrides don't mention, then applies the overrides. Defaults never
// replace the marker, overrides win over everything.
func Merge(defaults, overrides Params) Params {
	merged := make(Params, len(defaults)+len(overrides)+1)
	merged[SourceKey] = SourceValue

	for key, value := range defaults {
		if key == SourceKey {
			continue
		}
		if _, ok := overrides[key]; !ok {
			merged[key] = value
		}
	}

	for key, value := range overrides {
		merged[key] = value
	}

	return merged
}
