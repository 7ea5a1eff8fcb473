package prompt

import "fmt"

// ErrorPrefix marks the rendered text of a failed Result.
const ErrorPrefix = "Error: "

// RequestFailed is the single failure kind of a generation call.
type RequestFailed struct {
	Cause error
}

func (e *RequestFailed) Error() string {
	return e.Cause.Error()
}

func (e *RequestFailed) Unwrap() error {
	return e.Cause
}

// Result is either the generated text or a RequestFailed.
type Result struct {
	Text string
	// Err is nil on success. Assigning a nil Err to an error variable gives
	// a non-nil error; use Failure for that.
	Err *RequestFailed
}

func success(text string) Result {
	return Result{Text: text}
}

func failure(cause error) Result {
	return Result{Err: &RequestFailed{Cause: cause}}
}

// OK reports whether the call produced text.
func (r Result) OK() bool {
	return r.Err == nil
}

// Failure returns Err as an error, or a nil error on success.
func (r Result) Failure() error {
	if r.Err == nil {
		return nil
	}
	return r.Err
}

// String renders the result as the generated text or as ErrorPrefix plus the cause.
func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s%s", ErrorPrefix, r.Err.Error())
	}
	return r.Text
}
