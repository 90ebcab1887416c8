package assert

import "fmt"

// Success unwraps v or panics. Only for errors that indicate a build
// defect, such as a missing embedded file.
func Success[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("unexpected error: %v", err))
	}
	return v
}
