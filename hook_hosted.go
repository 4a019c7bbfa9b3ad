//go:build !tinygo

package steadylog

import (
	"fmt"

	"github.com/pkg/errors"
)

// terminate hands a captured fault back to the runtime, which prints its
// report and exits the process.
var terminate = func(r any) {
	panic(r)
}

func panicMessage(r any, stack bool) string {
	var err error
	switch v := r.(type) {
	case error:
		err = errors.WithStack(v)
	case string:
		err = errors.New(v)
	default:
		err = errors.New(fmt.Sprint(v))
	}
	if stack {
		return fmt.Sprintf("panic: %+v", err)
	}
	return "panic: " + err.Error()
}
