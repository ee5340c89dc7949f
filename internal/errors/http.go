package errors

// HTTPBody is the JSON error payload returned by the HTTP API.
type HTTPBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// ToHTTP converts any error to an HTTP status code and response body.
// Structured errors map through their code; everything else is treated
// as internal.
func ToHTTP(err error) (int, *HTTPBody) {
	if err == nil {
		return CodeOK.HTTPStatus(), nil
	}

	code := GetCode(err)
	return code.HTTPStatus(), &HTTPBody{
		Code:    code.String(),
		Message: GetMessage(err),
		Meta:    GetMeta(err),
	}
}
