//go:build debug
// +build debug

package goring

// scrubfreed fill reclaimed arena ranges with a poison pattern, so
// that stale readers trip over garbage instead of silently reading
// old records.
func (r *RingBuffer) scrubfreed(from, till int64) {
	if from < 0 || till > r.capacity || from > till {
		panicerr("%v scrub range [%v, %v)", r.logprefix, from, till)
	}
	for i := from; i < till; i++ {
		r.block[i] = 0xAA
	}
}
