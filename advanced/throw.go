package advanced

import "github.com/pkg/errors"

// Threading errors up and down all the recursive noding, splitting, and index
// operations would add a ton of complexity to the code. Instead, we use
// panics, and the public API recovers to convert to an error.

type NodingError error

// Panic with a NodingError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleNodingPanicRecover(r interface{}) error {
	if r != nil {
		if nodingError, ok := r.(NodingError); ok {
			return nodingError
		}
		panic(r)
	}
	return nil
}
