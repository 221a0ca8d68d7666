package types

import "fmt"

// CustomError is a failure raised outside a resource handler (middleware,
// routing) that the application error handler renders with its HTTP status.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}
