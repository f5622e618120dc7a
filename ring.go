package goring

import "fmt"
import "unsafe"

import "github.com/bnclabs/golog"
import s "github.com/bnclabs/gosettings"

import "github.com/bnclabs/goring/lib"

// Reserve and Commit flags.
const (
	// Foverwrite allow Reserve to reclaim the oldest committed
	// records when no free range can hold the new record.
	Foverwrite = uint64(0x1)
	// Fdiscard commit the token as cancelled. On a writing token the
	// record is dropped and its space reclaimed, on a reading token
	// the claim is released and the record becomes consumable again.
	Fdiscard = uint64(0x2)
	// Fforce fall back to a final delete when discarding a reading
	// token fails because a newer record is still being read.
	Fforce = uint64(0x4)
)

// RingBuffer manages variable length records inside a single arena of
// fixed capacity. Producers Reserve space, write into the token and
// Commit; consumers Consume the oldest committed record and Commit
// the claim. Not thread safe, see package documentation for the
// single-producer single-consumer contract.
type RingBuffer struct {
	// statistics
	n_reserves  int64
	n_commits   int64
	n_consumes  int64
	n_wdiscards int64
	n_rdiscards int64
	n_forced    int64
	n_evicted   int64
	n_deletes   int64
	n_nodes     int64
	lost        int64

	block    []byte
	capacity int64
	head     int64 // newest node, nilpos when empty
	tail     int64 // oldest node, nilpos when empty
	reserve  int64 // oldest node not yet claimed by consumer

	name      string
	logprefix string

	// settings
	maxlength int64
	setts     s.Settings

	h_payload   *lib.HistogramInt64
	av_evictrun *lib.AverageInt64
}

// NewRingBuffer create a ring buffer over its own backing buffer of
// "capacity" bytes. Panics on invalid settings.
func NewRingBuffer(name string, setts s.Settings) *RingBuffer {
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	capacity := setts.Int64("capacity")
	if capacity <= 0 {
		panicerr("invalid capacity settings %v", capacity)
	} else if capacity > Maxcapacity {
		panicerr("capacity %v exceeds %v", capacity, Maxcapacity)
	}
	r, err := InitRingBuffer(name, make([]byte, capacity), setts)
	if err != nil {
		panic(err)
	}
	return r
}

// InitRingBuffer arrange a ring buffer over an application supplied
// buffer. The buffer's base address is aligned up to Alignment, what
// remains is the arena. Returns ErrorBufferSize if the arena cannot
// hold even a zero length record.
func InitRingBuffer(
	name string, buffer []byte, setts s.Settings) (*RingBuffer, error) {

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	if len(buffer) == 0 {
		return nil, ErrorBufferSize
	}
	base := int64(uintptr(unsafe.Pointer(&buffer[0])))
	lead := alignup(base) - base
	if int64(len(buffer))-lead < Nodecost(0) {
		return nil, ErrorBufferSize
	}
	r := &RingBuffer{
		name:      name,
		logprefix: fmt.Sprintf("RBUF [%s]", name),
		block:     buffer[lead:],
		capacity:  int64(len(buffer)) - lead,
		head:      nilpos,
		tail:      nilpos,
		reserve:   nilpos,
	}
	r.readsettings(setts)
	r.setts = setts
	r.h_payload = lib.NewhistorgramInt64(64, 8192, 64)
	r.av_evictrun = &lib.AverageInt64{}

	log.Infof("%v started ...\n", r.logprefix)
	r.logsettings()
	return r, nil
}

// Heapcost return the fixed bookkeeping overhead of a ring buffer
// instance, outside the arena. Useful to budget the total memory a
// ring buffer will pin.
func Heapcost() int64 {
	return alignup(int64(unsafe.Sizeof(RingBuffer{})))
}

// Nodecost return the arena footprint for a record of ln payload
// bytes, header included and aligned to Alignment. Useful to size
// arenas for a known record mix.
func Nodecost(ln int64) int64 {
	return alignup(nodesize + ln)
}

// Consume claim the oldest committed record. Returns the token, the
// number of records lost to overwrites since the previous successful
// Consume, and false when no record is ready. The claimed record is
// owned by the consumer until the token is committed.
func (r *RingBuffer) Consume() (tok Token, lost int64, ok bool) {
	if r.block == nil {
		panicerr("%v released", r.logprefix)
	}
	if r.reserve == nilpos {
		return Token{}, 0, false
	}
	nd := r.nodeat(r.reserve)
	if State(nd.state) != StateCommitted {
		return Token{}, 0, false
	}
	lost, r.lost = r.lost, 0

	pos := r.reserve
	r.reserve = nd.newer
	nd.state = int64(StateReading)
	r.n_consumes++
	return r.maketoken(pos), lost, true
}

// Foreach walk all live records oldest to newest, invoking callb with
// each token and its state. Walk stops when callb returns false.
// Returns the number of completed visits.
func (r *RingBuffer) Foreach(callb func(tok Token, state State) bool) int64 {
	if r.block == nil {
		panicerr("%v released", r.logprefix)
	}
	count := int64(0)
	for pos := r.tail; pos != nilpos; count++ {
		nd := r.nodeat(pos)
		if callb(r.maketoken(pos), State(nd.state)) == false {
			break
		}
		pos = nd.newer
	}
	return count
}

// Release drop the reference to the backing buffer. Outstanding
// tokens become invalid, any further call on this instance panics.
func (r *RingBuffer) Release() {
	log.Infof("%v released\n", r.logprefix)
	r.block, r.setts = nil, nil
	r.reinit()
}

func (r *RingBuffer) reinit() {
	r.head, r.tail, r.reserve = nilpos, nilpos, nilpos
	r.n_nodes = 0
}
