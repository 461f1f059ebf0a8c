package model

// UserExpertise is the caller's self-declared experience level.
type UserExpertise string

const (
	ExpertiseNovice       UserExpertise = "novice"
	ExpertiseIntermediate UserExpertise = "intermediate"
	ExpertiseSenior       UserExpertise = "senior"
	ExpertiseExpert       UserExpertise = "expert"
)

// Valid reports whether the expertise level is a known enum member.
func (e UserExpertise) Valid() bool {
	switch e {
	case ExpertiseNovice, ExpertiseIntermediate, ExpertiseSenior, ExpertiseExpert:
		return true
	}
	return false
}

// ProjectPhase is the optional project lifecycle phase of the caller.
type ProjectPhase string

const (
	PhaseConcept    ProjectPhase = "concept"
	PhaseDesign     ProjectPhase = "design"
	PhaseValidation ProjectPhase = "validation"
	PhaseProduction ProjectPhase = "production"
)

// Valid reports whether the phase is a known enum member. The empty phase
// is valid: the field is optional.
func (p ProjectPhase) Valid() bool {
	switch p {
	case "", PhaseConcept, PhaseDesign, PhaseValidation, PhaseProduction:
		return true
	}
	return false
}

// Query is one immutable routing request. It is never mutated after
// construction; every analysis stage receives it by value.
type Query struct {
	Text           string        // free-text hardware engineering question
	Expertise      UserExpertise // defaults to intermediate
	Phase          ProjectPhase  // optional
	DeclaredDomain string        // optional caller hint, informational only
}

// NewQuery builds a Query applying the intermediate-expertise default.
func NewQuery(text string, expertise UserExpertise, phase ProjectPhase, declaredDomain string) Query {
	if expertise == "" {
		expertise = ExpertiseIntermediate
	}
	return Query{
		Text:           text,
		Expertise:      expertise,
		Phase:          phase,
		DeclaredDomain: declaredDomain,
	}
}
