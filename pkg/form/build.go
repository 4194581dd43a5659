package form

// ProjectFunc maps a validated tree onto an output record.
type ProjectFunc[R any] func(root Node) (R, error)

// Build projects root into a record. It fails with *BuildError when root is
// invalid or still pending; callers are expected to check validity first.
func Build[R any](root Node, project ProjectFunc[R]) (R, error) {
	var zero R
	if root.Pending() {
		return zero, &BuildError{Pending: true}
	}
	if !root.Valid() {
		return zero, &BuildError{}
	}
	return project(root)
}
