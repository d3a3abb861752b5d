package reconcile

import (
	"sort"

	"github.com/cardinal-labs/dinescout/internal/model"
	"github.com/cardinal-labs/dinescout/internal/scrape"
)

// minSingletonDescription is the description length a single-source
// candidate needs to survive without a plausible-looking name.
const minSingletonDescription = 20

// Reconcile groups candidates by normalized name and emits one record per
// identity. Multi-source groups are validated and represented by the member
// with the longest description (first encountered wins ties). Singletons
// survive only with a corroborating quality signal: a description longer
// than 20 characters or a name that looks like a real venue. Output order
// is deterministic for a fixed input order.
func Reconcile(candidates []model.Candidate) []model.Reconciled {
	type group struct {
		members []model.Candidate
	}

	var order []string
	groups := make(map[string]*group)
	for _, c := range candidates {
		key := Normalize(c.Name)
		if key == "" {
			continue
		}
		g, ok := groups[key]
		if !ok {
			g = &group{}
			groups[key] = g
			order = append(order, key)
		}
		g.members = append(g.members, c)
	}

	var out []model.Reconciled
	for _, key := range order {
		g := groups[key]
		if len(g.members) >= 2 {
			rep := g.members[0]
			for _, m := range g.members[1:] {
				if len(m.Description) > len(rep.Description) {
					rep = m
				}
			}
			out = append(out, model.Reconciled{
				Candidate:   rep,
				Validated:   true,
				SourceCount: len(g.members),
			})
			continue
		}

		single := g.members[0]
		if len(single.Description) > minSingletonDescription || scrape.LooksLikeVenueName(single.Name) {
			out = append(out, model.Reconciled{
				Candidate:   single,
				Validated:   false,
				SourceCount: 1,
			})
		}
	}

	Sort(out)
	return out
}

// Sort orders records by tier (directory > validated multi-source >
// singleton), then directory rating, then source count. Ties keep
// insertion order.
func Sort(records []model.Reconciled) {
	sort.SliceStable(records, func(i, j int) bool {
		ti, tj := tier(records[i]), tier(records[j])
		if ti != tj {
			return ti > tj
		}
		ri, rj := records[i].DirectoryRating(), records[j].DirectoryRating()
		if ri != rj {
			return ri > rj
		}
		return records[i].SourceCount > records[j].SourceCount
	})
}

func tier(r model.Reconciled) int {
	switch {
	case r.PlaceID != "":
		return 2
	case r.Validated:
		return 1
	default:
		return 0
	}
}
