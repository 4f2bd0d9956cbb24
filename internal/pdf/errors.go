package pdf

import "fmt"

// RenderError wraps a drawing/library failure during PDF assembly. Domain
// errors (invalid unit, unsupported locale) are never wrapped into it; they
// propagate unchanged.
type RenderError struct {
	InvoiceNumber string
	Err           error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering invoice %s failed: %v", e.InvoiceNumber, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
