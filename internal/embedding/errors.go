package embedding

import "fmt"

// ResponseError indicates a malformed upstream response, such as a batch
// reply whose entry count does not match the request.
type ResponseError struct {
	Expected int
	Got      int
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("malformed embedding response: expected %d embeddings, got %d", e.Expected, e.Got)
}
