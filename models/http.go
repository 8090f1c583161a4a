package models

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string         `json:"token"`
	User  UserProjection `json:"user"`
}

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PasswordCheckRequest asks whether a candidate password equals the current one.
type PasswordCheckRequest struct {
	Password string `json:"password"`
}

// PasswordCheckResponse answers [PasswordCheckRequest].
type PasswordCheckResponse struct {
	IsSame bool `json:"isSame"`
}

// ProfilePictureResponse is returned after a successful picture upload.
type ProfilePictureResponse struct {
	ProfilePicture string `json:"profilePicture"`
}
