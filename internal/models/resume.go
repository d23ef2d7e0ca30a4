package models

const (
	UnknownCandidate = "Unknown Candidate"
	NoEmailFound     = "No email found"
)

type Resume struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	Projects   []ProjectEntry    `json:"projects"`
	RawText    string            `json:"-"`
}

type ExperienceEntry struct {
	Description string `json:"description"`
}

type EducationEntry struct {
	Degree string `json:"degree"`
}

type ProjectEntry struct {
	Description string `json:"description"`
}
