package response

type TokenResponse struct {
	Token string `json:"token"`
}

type BusinessTokenResponse struct {
	Token     string `json:"token"`
	CompanyID string `json:"company_id"`
}
