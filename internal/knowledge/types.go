package knowledge

// Component is one catalog entry in the component reference database.
type Component struct {
	PartNumber  string   `json:"part_number"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Domains     []string `json:"domains,omitempty"`
	Keywords    []string `json:"-"`
}

// Standard is one compliance or qualification standard record.
type Standard struct {
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Domains []string `json:"domains,omitempty"`
	Summary string   `json:"summary"`
}

// Context is the retrieval result attached to an analysis response.
type Context struct {
	Components []Component `json:"components,omitempty"`
	Standards  []Standard  `json:"standards,omitempty"`
}

// Empty reports whether retrieval found nothing relevant.
func (c Context) Empty() bool {
	return len(c.Components) == 0 && len(c.Standards) == 0
}
