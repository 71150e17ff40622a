package dto

type SkillResponse struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Frequency int    `json:"frequency"`
}

type DictionarySkillResponse struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type ExtractSkillsRequest struct {
	Text string `json:"text"`
}
