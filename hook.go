package steadylog

import (
	"errors"
	"reflect"
	"sync/atomic"
)

// ErrHookInstalled is returned by Install when the process already has a
// panic hook. The first registration stays in effect.
var ErrHookInstalled = errors.New("steadylog: panic hook already installed")

type hookState struct {
	logger Emitter
	stack  bool
}

// hook is the only process-wide state in the package. It is written once by
// Install and read-only afterwards.
var hook atomic.Pointer[hookState]

// HookOption configures Install.
type HookOption func(*hookState)

// WithStack appends the stack of the panicking goroutine to the Error
// record. The record stays a single record.
func WithStack() HookOption {
	return func(s *hookState) {
		s.stack = true
	}
}

// Install registers logger as the process-wide destination for captured
// panics. A nil logger, including a typed nil such as a nil *Logger, installs
// the default logger (NewDefault). Only the
// first call succeeds; every later call returns ErrHookInstalled and leaves
// the first registration untouched, including under concurrent calls.
//
// Capture is armed per goroutine with defer Guard() or by starting
// goroutines with Go.
func Install(logger Emitter, opts ...HookOption) error {
	if hook.Load() != nil {
		return ErrHookInstalled
	}
	if isNilEmitter(logger) {
		logger = NewDefault()
	}
	state := &hookState{logger: logger}
	for _, opt := range opts {
		if opt != nil {
			opt(state)
		}
	}
	if !hook.CompareAndSwap(nil, state) {
		return ErrHookInstalled
	}
	return nil
}

// InstallDefault installs the default logger as the panic hook.
func InstallDefault(opts ...HookOption) error {
	return Install(nil, opts...)
}

// Installed returns the logger registered by Install, or nil.
func Installed() Emitter {
	if state := hook.Load(); state != nil {
		return state.logger
	}
	return nil
}

// Guard captures a panic in progress. Defer it at the top of main and of
// every goroutine whose faults should be observed:
//
//	func main() {
//		steadylog.InstallDefault()
//		defer steadylog.Guard()
//		...
//	}
//
// Guard writes exactly one Error record describing the fault through the
// installed logger, or through a default logger built on the spot when
// nothing is installed, and then lets the fault continue: the process still
// terminates (or halts on bare-metal targets). Guard does nothing when no
// panic is in progress.
func Guard() {
	r := recover()
	if r == nil {
		return
	}
	capture(r)
	terminate(r)
}

// Go runs fn on a new goroutine with Guard armed.
func Go(fn func()) {
	if fn == nil {
		return
	}
	go func() {
		defer Guard()
		fn()
	}()
}

func capture(r any) {
	state := hook.Load()
	var logger Emitter
	stack := false
	if state != nil {
		logger = state.logger
		stack = state.stack
	}
	if isNilEmitter(logger) {
		logger = NewDefault()
	}
	emitFault(logger, panicMessage(r, stack))
}

// emitFault keeps a panicking sink from replacing the original fault.
func emitFault(logger Emitter, message string) {
	defer func() {
		_ = recover()
	}()
	logger.Log(Error, message)
}

// nilReporter is implemented by the loggers of this package, whose nil forms
// discard every record.
type nilReporter interface {
	isNil() bool
}

// isNilEmitter reports whether e would drop every record because it is nil
// or wraps nothing.
func isNilEmitter(e Emitter) bool {
	if e == nil {
		return true
	}
	if n, ok := e.(nilReporter); ok {
		return n.isNil()
	}
	v := reflect.ValueOf(e)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}
