package goring

// Validate ring buffer invariants, panic on corruption:
//
//   - temporal chain is linear from tail to head, links symmetric.
//   - physical chain is circular over the same records, addresses
//     ascending with exactly one wrap.
//   - record footprints lie within the arena and never overlap.
//   - reserve points to the oldest unclaimed record, or nowhere.
//
// Meant for tests and for applications that suspect a synchronization
// bug on their side.
func (r *RingBuffer) Validate() {
	if r.block == nil {
		panicerr("%v released", r.logprefix)
	}
	if r.tail == nilpos {
		if r.head != nilpos || r.reserve != nilpos || r.n_nodes != 0 {
			panicerr("%v empty buffer with live references", r.logprefix)
		}
		return
	}

	r.validatetime()
	r.validatepos()
}

func (r *RingBuffer) validatetime() {
	count, reserve := int64(0), nilpos
	prev := nilpos
	for pos := r.tail; pos != nilpos; pos = r.nodeat(pos).newer {
		nd := r.nodeat(pos)
		if nd.older != prev {
			panicerr("%v broken older link at %v", r.logprefix, pos)
		}
		switch State(nd.state) {
		case StateWriting, StateCommitted:
			if reserve == nilpos {
				reserve = pos
			}
		case StateReading:
			if pos == r.reserve {
				panicerr("%v reserve points to reading %v", r.logprefix, pos)
			}
		default:
			panicerr("%v invalid state at %v", r.logprefix, pos)
		}
		prev, count = pos, count+1
		if count > r.n_nodes {
			panicerr("%v temporal chain exceeds %v", r.logprefix, r.n_nodes)
		}
	}
	if prev != r.head {
		panicerr("%v head %v, chain ends at %v", r.logprefix, r.head, prev)
	} else if count != r.n_nodes {
		panicerr("%v %v records, walked %v", r.logprefix, r.n_nodes, count)
	} else if reserve != r.reserve {
		panicerr("%v reserve %v, expected %v", r.logprefix, r.reserve, reserve)
	}
}

func (r *RingBuffer) validatepos() {
	count, wraps := int64(0), 0
	pos := r.tail
	for {
		nd := r.nodeat(pos)
		if pos < 0 || r.endof(pos) > r.capacity {
			panicerr("%v footprint at %v out of arena", r.logprefix, pos)
		} else if r.nodeat(nd.fpos).bpos != pos {
			panicerr("%v broken physical link at %v", r.logprefix, pos)
		}
		if nd.fpos <= pos { // arena boundary, or the sole record
			if nd.fpos == pos && r.n_nodes != 1 {
				panicerr("%v self linked %v", r.logprefix, pos)
			}
			wraps++
		} else if nd.fpos < r.endof(pos) {
			panicerr("%v overlap between %v and %v", r.logprefix, pos, nd.fpos)
		}
		count++
		if count > r.n_nodes {
			panicerr("%v physical chain exceeds %v", r.logprefix, r.n_nodes)
		}
		if pos = nd.fpos; pos == r.tail {
			break
		}
	}
	if count != r.n_nodes {
		panicerr("%v %v records, cycled %v", r.logprefix, r.n_nodes, count)
	} else if wraps != 1 {
		panicerr("%v %v wrap points", r.logprefix, wraps)
	}
}
