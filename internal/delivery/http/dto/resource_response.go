package dto

type ResourceResponse struct {
	ID            int64   `json:"id"`
	SkillName     string  `json:"skill_name"`
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Platform      string  `json:"platform"`
	DurationWeeks int     `json:"duration_weeks"`
	Difficulty    string  `json:"difficulty"`
	Description   string  `json:"description,omitempty"`
	Rating        float64 `json:"rating"`
	Price         string  `json:"price"`
}
