package catalog

// Profile describes one career track: the skills that define it and a short
// human description. Core skills carry the most weight when scoring, support
// skills less; soft skills are detected and reported but do not enter the
// score.
type Profile struct {
	Title       string   `json:"title"`
	Core        []string `json:"core"`
	Support     []string `json:"support"`
	Soft        []string `json:"soft"`
	Description string   `json:"description"`
}

// Catalog is an ordered, read-only table of career profiles. It is built once
// at startup and shared by all requests; declaration order matters because
// equal scores keep it and missing-skill hints follow it.
type Catalog struct {
	profiles []Profile
}

// New builds a catalog from profiles, preserving their order.
func New(profiles []Profile) *Catalog {
	return &Catalog{profiles: profiles}
}

// Profiles returns the profiles in declaration order. Callers must not mutate
// the returned slice.
func (c *Catalog) Profiles() []Profile {
	return c.profiles
}

// Vocabulary returns the union of all core, support and soft keywords across
// every profile, in first-seen order.
func (c *Catalog) Vocabulary() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(kw string) {
		if _, ok := seen[kw]; ok {
			return
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	for _, p := range c.profiles {
		for _, kw := range p.Core {
			add(kw)
		}
		for _, kw := range p.Support {
			add(kw)
		}
		for _, kw := range p.Soft {
			add(kw)
		}
	}
	return out
}
