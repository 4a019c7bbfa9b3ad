//go:build tinygo

package steadylog

// terminate parks the core after the fault has been logged; bare-metal
// targets have nothing to return to.
var terminate = func(any) {
	for {
	}
}

// panicMessage avoids fmt on targets without a heap to spare. Stack traces
// are not available there.
func panicMessage(r any, _ bool) string {
	switch v := r.(type) {
	case string:
		return "panic: " + v
	case error:
		return "panic: " + v.Error()
	default:
		return "panic: unrecoverable fault"
	}
}
