package crt

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// ResizeFailed - Custom error to inform that the bucket array could not be grown. The map is left in the state it
// had before the resize was attempted, but it no longer honours its load factor and should not be used further.
type ResizeFailed struct {
	msg string
}

// NewResizeFailed - Returns a ResizeFailed error with a message
func NewResizeFailed(msg string) ResizeFailed {
	return ResizeFailed{msg: msg}
}

// Error - Used to notify that a resize failed
func (R ResizeFailed) Error() string {
	if R.msg == "" {
		return "resize failed"
	}
	return R.msg
}

// Is - Makes errors.Is match any ResizeFailed regardless of message
func (R ResizeFailed) Is(target error) bool {
	_, ok := target.(ResizeFailed)
	return ok
}
