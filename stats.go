package goring

import "github.com/bnclabs/golog"
import humanize "github.com/dustin/go-humanize"

// Stats return a map of useful statistics. Besides the counters
// below, "h_payload" carries the payload size distribution of
// committed records and "evictrun.*" the run length of overwrite
// evictions.
//
//	"capacity"    arena size in bytes.
//	"allocated"   bytes currently held by live records.
//	"n_nodes"     number of live records.
//	"n_reserves"  reservations that returned a token.
//	"n_commits"   records published by the producer.
//	"n_consumes"  records claimed by the consumer.
//	"n_wdiscards" reservations cancelled by the producer.
//	"n_rdiscards" claims released by the consumer.
//	"n_forced"    claims force deleted while a newer claim was live.
//	"n_evicted"   records lost to overwrites.
//	"n_deletes"   records removed from the arena, discard or consume.
//	"lost"        evictions not yet reported to the consumer.
func (r *RingBuffer) Stats() map[string]interface{} {
	stats := make(map[string]interface{})
	stats["capacity"] = r.capacity
	stats["allocated"] = r.allocated()
	stats["n_nodes"] = r.n_nodes
	stats["n_reserves"] = r.n_reserves
	stats["n_commits"] = r.n_commits
	stats["n_consumes"] = r.n_consumes
	stats["n_wdiscards"] = r.n_wdiscards
	stats["n_rdiscards"] = r.n_rdiscards
	stats["n_forced"] = r.n_forced
	stats["n_evicted"] = r.n_evicted
	stats["n_deletes"] = r.n_deletes
	stats["lost"] = r.lost
	stats["h_payload"] = r.h_payload.Fullstats()
	stats["evictrun.samples"] = r.av_evictrun.Samples()
	stats["evictrun.mean"] = r.av_evictrun.Mean()
	stats["evictrun.max"] = r.av_evictrun.Max()
	return stats
}

// Info return the arena capacity, the bytes held by live records and
// the fixed bookkeeping overhead outside the arena.
func (r *RingBuffer) Info() (capacity, allocated, overhead int64) {
	return r.capacity, r.allocated(), Heapcost()
}

// Utilization return the percentage of the arena held by live
// records.
func (r *RingBuffer) Utilization() float64 {
	if r.capacity == 0 {
		return 0
	}
	return (float64(r.allocated()) / float64(r.capacity)) * 100
}

func (r *RingBuffer) allocated() int64 {
	allocated := int64(0)
	for pos := r.tail; pos != nilpos; pos = r.nodeat(pos).newer {
		allocated += Nodecost(r.nodeat(pos).dlen)
	}
	return allocated
}

func (r *RingBuffer) logsettings() {
	fmsg := "%v capacity: %v, maxlength: %v, nodecost: %v\n"
	log.Infof(
		fmsg, r.logprefix, humanize.Bytes(uint64(r.capacity)),
		humanize.Bytes(uint64(r.maxlength)), Nodecost(0))
}
