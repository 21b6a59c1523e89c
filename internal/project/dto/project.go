package dto

// ProjectRequest is the body of create and update calls. Emptiness of name
// and file_url is checked in the usecase so the failure carries the
// VALIDATION_ERROR classification.
type ProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	FileURL     string `json:"file_url"`
}
