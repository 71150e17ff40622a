package dto

type JobResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	SalaryMin      float64  `json:"salary_min,omitempty"`
	SalaryMax      float64  `json:"salary_max,omitempty"`
	URL            string   `json:"url"`
	Source         string   `json:"source"`
	PostedDate     string   `json:"posted_date,omitempty"`
}
