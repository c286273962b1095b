package ports

// Watcher reports changes to a single file so a query can be re-run.
// The adapter watches the file's directory, so the file may be replaced
// (editors often write a temp file and rename it over the original).
type Watcher interface {
	// Watch starts monitoring path. onChange is called with the absolute
	// path after a burst of writes, creates, renames or removals settles.
	// The callback may be invoked from any goroutine. Returns an error if
	// the parent directory cannot be watched.
	Watch(path string, onChange func(path string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no onChange call is running and none will fire. onChange must not call
	// Stop. Safe to call multiple times.
	Stop() error
}
