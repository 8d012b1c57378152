package api

// UserRecord is the server-owned account record returned by GET /api/users/me.
type UserRecord struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Birthyear string `json:"birthyear"`
	Sex       bool   `json:"sex"`
}

// SignupRequest is the body of POST /api/users/signup. Sex is a boolean by
// backend contract: true is male, false is female.
type SignupRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	VerifyPassword string `json:"verify_password"`
	Email          string `json:"email"`
	Birthyear      string `json:"birthyear"`
	Sex            bool   `json:"sex"`
}

// ChangePasswordRequest is the body of POST /api/users/password.
type ChangePasswordRequest struct {
	CurrentPassword   string `json:"current_password"`
	NewPassword       string `json:"new_password"`
	VerifyNewPassword string `json:"verify_new_password"`
}

// UploadResult is the payload returned by POST /api/audio: the transcript
// and a playable locator for the synthesized audio.
type UploadResult struct {
	Text     string `json:"text"`
	AudioURL string `json:"audioUrl"`
}

// Recording is one stored recording as returned by the listing and
// per-identifier endpoints.
type Recording struct {
	ID                int    `json:"id"`
	Identifier        string `json:"identifier"`
	Text              string `json:"text"`
	OriginalFilepath  string `json:"original_filepath"`
	ProcessedFilepath string `json:"processed_filepath"`
	CreatedAt         string `json:"created_at"`
}

// RecordingList is the payload of GET /api/users/me/audios.
type RecordingList struct {
	Count int         `json:"count"`
	Data  []Recording `json:"data"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
