package goring

import "unsafe"

// State of a record in the ring buffer.
type State int64

const (
	// StateWriting record is reserved by the producer and not yet
	// committed.
	StateWriting State = iota + 1
	// StateCommitted record is published and waiting to be consumed.
	StateCommitted
	// StateReading record is claimed by the consumer and not yet
	// committed.
	StateReading
)

func (state State) String() string {
	switch state {
	case StateWriting:
		return "writing"
	case StateCommitted:
		return "committed"
	case StateReading:
		return "reading"
	}
	return "invalid"
}

// nilpos marks the absence of a node in chain links, head, tail and
// reserve.
const nilpos = int64(-1)

// node is the record header, overlaid on the arena at the record's
// offset and followed by the payload bytes. Links are byte offsets
// into the arena, never pointers, so wrap-around detection is plain
// integer comparison. dlen is written once, when the node is
// constructed, and never again for this node's lifetime.
type node struct {
	fpos  int64 // physical chain, next node by address, circular
	bpos  int64 // physical chain, previous node by address
	newer int64 // temporal chain, towards head, nilpos at head
	older int64 // temporal chain, towards tail, nilpos at tail
	state int64
	dlen  int64 // payload length, fixed at construction
}

const nodesize = int64(unsafe.Sizeof(node{}))

func (r *RingBuffer) nodeat(pos int64) *node {
	return (*node)(unsafe.Pointer(&r.block[pos]))
}

// payload window for the node at pos.
func (r *RingBuffer) dataat(pos int64) []byte {
	nd := r.nodeat(pos)
	return r.block[pos+nodesize : pos+nodesize+nd.dlen]
}

// end offset of the node's footprint at pos.
func (r *RingBuffer) endof(pos int64) int64 {
	return pos + Nodecost(r.nodeat(pos).dlen)
}
