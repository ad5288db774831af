package helper

import "context"

// CheckDeadline returns the context error if ctx is already done.
func CheckDeadline(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
