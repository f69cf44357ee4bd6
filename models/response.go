package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Error   string       `json:"error,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	Client Client `json:"client"`
}

type CartResponse struct {
	Items []CartLineItem `json:"items"`
	Count int            `json:"count"`
	Total string         `json:"total"`
}
