package pkg

// AppError is the structured failure returned to HTTP clients.
//
// Every business-rule violation maps to a stable code plus a human-readable
// message; the wrapped cause is kept for logging but never serialized.

type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type HTTPErrorEnvelope struct {
	Error HTTPError `json:"error"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// ToHTTPError strips the internal cause before the error leaves the process.
func (e *AppError) ToHTTPError() HTTPErrorEnvelope {
	return HTTPErrorEnvelope{Error: HTTPError{Code: e.Code, Message: e.Message}}
}
