package dump

// setLoadBatchBytes shrinks the load chunk size so tests can exercise the
// chunk loop without megabyte fixtures. Returns a restore func.
func setLoadBatchBytes(n int) (restore func()) {
	old := loadBatchBytes
	loadBatchBytes = n

	return func() { loadBatchBytes = old }
}
