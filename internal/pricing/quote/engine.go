// Package quote prices a project from its type and selected add-on features.
package quote

// Rate is the price and duration contribution of one table entry.
type Rate struct {
	Price int `json:"price"`
	Days  int `json:"days"`
}

// Feature is a named add-on and its rate.
type Feature struct {
	ID string `json:"id"`
	Rate
}

// DefaultBase applies to any project type missing from the base table.
var DefaultBase = Rate{Price: 20000, Days: 7}

var baseRates = map[string]Rate{
	"SaaS":       {Price: 50000, Days: 20},
	"E-commerce": {Price: 40000, Days: 15},
}

// catalog order is the order features are listed to clients.
var catalog = []Feature{
	{ID: "MERN Fullstack", Rate: Rate{Price: 25000, Days: 5}},
	{ID: "AI Matching", Rate: Rate{Price: 15000, Days: 3}},
	{ID: "Admin Dashboard", Rate: Rate{Price: 12000, Days: 4}},
	{ID: "PWA Mobile", Rate: Rate{Price: 8000, Days: 2}},
	{ID: "Kathmandu Geo", Rate: Rate{Price: 5000, Days: 1}},
}

var featureRates = func() map[string]Rate {
	m := make(map[string]Rate, len(catalog))
	for _, f := range catalog {
		m[f.ID] = f.Rate
	}
	return m
}()

// Compute returns the total price and timeline for projectType with features.
// Unknown project types use DefaultBase and unknown features add nothing.
// Every listed occurrence counts, so callers deduplicate first.
func Compute(projectType string, features []string) (totalPrice, timelineDays int) {
	base, _ := BaseRate(projectType)
	totalPrice, timelineDays = base.Price, base.Days
	for _, id := range features {
		if r, ok := featureRates[id]; ok {
			totalPrice += r.Price
			timelineDays += r.Days
		}
	}
	return totalPrice, timelineDays
}

// BaseRate reports the base rate for projectType and whether it is a known type.
func BaseRate(projectType string) (Rate, bool) {
	r, ok := baseRates[projectType]
	if !ok {
		return DefaultBase, false
	}
	return r, true
}

// ProjectTypes lists the project types with a dedicated base rate.
func ProjectTypes() map[string]Rate {
	out := make(map[string]Rate, len(baseRates))
	for k, v := range baseRates {
		out[k] = v
	}
	return out
}

// Features lists the add-on catalog in display order.
func Features() []Feature {
	out := make([]Feature, len(catalog))
	copy(out, catalog)
	return out
}

// Dedupe drops repeated and blank feature ids, keeping first occurrences in order.
func Dedupe(features []string) []string {
	seen := make(map[string]struct{}, len(features))
	out := make([]string, 0, len(features))
	for _, f := range features {
		if f == "" {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
