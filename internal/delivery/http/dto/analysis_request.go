package dto

// RunAnalysisRequest carries the form fields accompanying a resume
// upload. The file itself travels as the multipart "resume" part.
type RunAnalysisRequest struct {
	Domain string `form:"domain" validate:"omitempty,max=200"`
	Source string `form:"source" validate:"omitempty,oneof=auto adzuna board samples"`
	Jobs   int    `form:"jobs" validate:"min=1,max=200"`
}
