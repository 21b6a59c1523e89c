package dto

type ConnectResponse struct {
	URL string `json:"url"`
}

type CallbackResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	ExpiresIn int64  `json:"expires_in"`
}
