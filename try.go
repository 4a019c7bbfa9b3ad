package steadylog

// Result is the outcome of a fallible computation that has already run.
type Result[T any] struct {
	Value T
	Err   error
}

// ResultOf packs a (value, error) pair so a call's results can be handed
// straight to TryRun or TryGet:
//
//	data, logger := steadylog.TryGet(logger, steadylog.ResultOf(os.ReadFile(path)), onReadFailure)
func ResultOf[T any](value T, err error) Result[T] {
	return Result[T]{Value: value, Err: err}
}

// Success returns a successful Result.
func Success[T any](value T) Result[T] {
	return Result[T]{Value: value}
}

// Failure returns a failed Result.
func Failure[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

// Failed reports whether r carries an error.
func (r Result[T]) Failed() bool {
	return r.Err != nil
}

// TryRun never propagates the failure in res. On success it returns logger
// unchanged and discards the value. On failure it emits exactly one Error
// record with the error text, then hands logger to recovery and returns
// whatever recovery returns. A nil recovery returns logger.
//
// The logger goes in and comes back out: callers keep using the returned
// one, which after a failure is the one recovery chose.
func TryRun[L Emitter, T any](logger L, res Result[T], recovery func(L) L) L {
	if res.Err == nil {
		return logger
	}
	logFailure(logger, res.Err)
	if recovery == nil {
		return logger
	}
	return recovery(logger)
}

// TryGet is TryRun for callers that need the value. On success it returns
// the value and logger unchanged. On failure it emits exactly one Error
// record, then calls recovery once; recovery supplies both the substitute
// value and the logger to continue with.
func TryGet[L Emitter, T any](logger L, res Result[T], recovery func(L) (T, L)) (T, L) {
	if res.Err == nil {
		return res.Value, logger
	}
	logFailure(logger, res.Err)
	if recovery == nil {
		var zero T
		return zero, logger
	}
	return recovery(logger)
}

func logFailure(logger Emitter, err error) {
	if logger == nil {
		return
	}
	logger.Log(Error, errorText(err))
}

// errorText renders err without letting a misbehaving Error method escape.
func errorText(err error) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = "error value panicked while rendering"
		}
	}()
	return err.Error()
}
