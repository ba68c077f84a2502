package usersapimodels

type Profile struct {
	Education  string `json:"education"`
	Experience string `json:"experience"`
	Skills     string `json:"skills"`
}

type UserView struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	Profile        Profile `json:"profile"`
	ResumeFilename string  `json:"resume_filename,omitempty"`
	HasResume      bool    `json:"has_resume"`
}

// ProfileUpdateRequest overwrites the profile sub-record in full; name and
// email fall back to the stored values when omitted.
type ProfileUpdateRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Education  string `json:"education"`
	Experience string `json:"experience"`
	Skills     string `json:"skills"`
}
