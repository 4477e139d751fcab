package gaia

// tokenResponse is the token endpoint's JSON body. On failure the endpoint
// sets "error" (and usually "error_description") instead of the token fields,
// sometimes with a 200 status.
type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
