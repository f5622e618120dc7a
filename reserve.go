package goring

import "github.com/bnclabs/golog"

// Reserve space for a record of ln payload bytes and return its token
// in Writing state. The producer writes into the token's Data() and
// then commits it. With Foverwrite, a full arena is made to fit the
// record by reclaiming the oldest committed records; without it, or
// when reclaiming cannot free enough room, Reserve returns
// ErrorOutofSpace and the arena is left untouched.
func (r *RingBuffer) Reserve(ln int64, flags uint64) (Token, error) {
	if r.block == nil {
		panicerr("%v released", r.logprefix)
	} else if ln < 0 {
		panicerr("%v reserve length %v", r.logprefix, ln)
	} else if ln > r.maxlength {
		panicerr("%v length %v exceeds maxlength %v", r.logprefix, ln, r.maxlength)
	}
	size := Nodecost(ln)
	if size > r.capacity {
		return Token{}, ErrorOutofSpace
	}
	if r.tail == nilpos {
		return r.reserveempty(ln)
	}
	return r.reservenonempty(ln, size, flags)
}

// first record in an empty arena, placed at the base. Singleton in
// both chains.
func (r *RingBuffer) reserveempty(ln int64) (Token, error) {
	nd := r.nodeat(0)
	nd.state, nd.dlen = int64(StateWriting), ln
	nd.fpos, nd.bpos = 0, 0
	nd.newer, nd.older = nilpos, nilpos
	r.head, r.tail, r.reserve = 0, 0, 0
	r.n_reserves, r.n_nodes = r.n_reserves+1, r.n_nodes+1
	return r.maketoken(0), nil
}

func (r *RingBuffer) reservenonempty(
	ln, size int64, flags uint64) (Token, error) {

	headnd := r.nodeat(r.head)
	nextpos := r.endof(r.head) // candidate offset right after head

	if headnd.fpos > r.head {
		// a live record sits to the right of head, try the gap
		// between them.
		if headnd.fpos-nextpos >= size {
			return r.insertnode(nextpos, ln), nil
		}
	} else {
		// head is the rightmost record, try the space up to the
		// arena's upper bound.
		if r.capacity-nextpos >= size {
			return r.insertnode(nextpos, ln), nil
		}
		// and then the space at the base, before the wrapped
		// successor.
		if headnd.fpos >= size {
			return r.insertnode(0, ln), nil
		}
	}
	if flags&Foverwrite != 0 {
		return r.reserveoverwrite(ln, size)
	}
	return Token{}, ErrorOutofSpace
}

// construct a record at pos and link it after head in the physical
// chain and as the new head in the temporal chain.
func (r *RingBuffer) insertnode(pos, ln int64) Token {
	nd := r.nodeat(pos)
	nd.state, nd.dlen = int64(StateWriting), ln

	headnd := r.nodeat(r.head)
	nd.fpos, nd.bpos = headnd.fpos, r.head
	r.nodeat(nd.fpos).bpos = pos
	headnd.fpos = pos

	nd.newer, nd.older = nilpos, r.head
	headnd.newer = pos
	r.head = pos

	// an arena where every record is claimed has a nil reserve, the
	// new record is then the oldest unclaimed one.
	if r.reserve == nilpos {
		r.reserve = pos
	}
	r.n_reserves, r.n_nodes = r.n_reserves+1, r.n_nodes+1
	return r.maketoken(pos)
}

// reclaim a run of the oldest committed records to fit a record of
// size footprint. Only records that are committed, adjacent in both
// chains and address increasing qualify; the run is spliced out of
// both chains as one unit and the new record constructed at its
// start. On failure nothing is touched.
func (r *RingBuffer) reserveoverwrite(ln, size int64) (Token, error) {
	if r.reserve == nilpos {
		return Token{}, ErrorOutofSpace
	}
	start := r.reserve
	startnd := r.nodeat(start)
	if State(startnd.state) != StateCommitted {
		return Token{}, ErrorOutofSpace
	}

	if startnd.fpos == start { // sole record in the arena
		r.lost++
		r.n_evicted++
		r.av_evictrun.Add(1)
		r.reinit()
		r.scrubfreed(0, r.capacity)
		log.Debugf("%v evicted sole record for %v byte reserve\n",
			r.logprefix, size)
		return r.reserveempty(ln)
	}

	sum, run, end := int64(0), int64(1), start
	for {
		endnd := r.nodeat(end)
		sum += Nodecost(endnd.dlen)
		next := endnd.fpos
		if sum >= size { // overwrite minimum records
			break
		} else if next <= end { // run interrupted by arena boundary
			break
		} else if State(r.nodeat(next).state) != StateCommitted {
			break
		} else if next != endnd.newer { // not adjacent in both chains
			break
		}
		end, run = next, run+1
	}
	if sum < size {
		return Token{}, ErrorOutofSpace
	}

	endnd := r.nodeat(end)
	older, newer, freetill := startnd.older, endnd.newer, r.endof(end)

	// splice the run out of the physical chain, start's slot is
	// reused for the new record.
	startnd.fpos = endnd.fpos
	r.nodeat(endnd.fpos).bpos = start

	// splice the run out of the temporal chain.
	if older != nilpos {
		r.nodeat(older).newer = newer
	} else {
		r.tail = newer
	}
	if newer != nilpos {
		r.nodeat(newer).older = older
	} else {
		r.head = older
	}
	r.reserve = newer

	r.lost += run
	r.n_evicted += run
	r.n_nodes -= run
	r.av_evictrun.Add(run)
	log.Debugf("%v evicted %v records (%v bytes) for %v byte reserve\n",
		r.logprefix, run, sum, size)

	// construct the new record at the start of the freed range and
	// link it as the new temporal head.
	startnd.state, startnd.dlen = int64(StateWriting), ln
	startnd.newer, startnd.older = nilpos, r.head
	if r.head != nilpos {
		r.nodeat(r.head).newer = start
	} else { // the run covered every record
		r.tail = start
	}
	r.head = start
	if r.reserve == nilpos {
		r.reserve = start
	}
	r.scrubfreed(start+Nodecost(ln), freetill)
	r.n_reserves, r.n_nodes = r.n_reserves+1, r.n_nodes+1
	return r.maketoken(start), nil
}
