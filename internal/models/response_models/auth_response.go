package response_models

type LoginResponse struct {
	Token string `json:"token"`
}

type AccountResponse struct {
	ID          int    `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}
