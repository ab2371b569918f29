// File: internal/api/response.go
package api

// Response is the envelope every endpoint returns.
// swagger:model api.Response
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Token   string `json:"token,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Data(v any) Response {
	return Response{Success: true, Data: v}
}

func DataCount(v any, count int) Response {
	return Response{Success: true, Data: v, Count: &count}
}

func TokenResponse(token string, v any) Response {
	return Response{Success: true, Token: token, Data: v}
}

func ErrorResponse(message string) Response {
	return Response{Success: false, Error: message}
}
