package models

import "time"

type JobDescription struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Company            string    `json:"company"`
	Location           string    `json:"location"`
	MustHaveSkills     []string  `json:"must_have_skills"`
	GoodToHaveSkills   []string  `json:"good_to_have_skills"`
	ExperienceRequired string    `json:"experience_required"`
	Description        string    `json:"description"`
	CreatedAt          time.Time `json:"created_at"`
}

// DisplayName is how a job is listed when picking one to evaluate against.
func (j *JobDescription) DisplayName() string {
	return j.Title + " at " + j.Company
}
