package goring

// Commit a token and settle its record. What happens depends on the
// token's state:
//
//	writing, no flags   record published, eligible for Consume.
//	writing, Fdiscard   record dropped, space reclaimed, not lost.
//	reading, no flags   record deleted for good.
//	reading, Fdiscard   claim released, record consumable again.
//
// Releasing a claim is legal only while no newer record is being
// read; otherwise Commit returns ErrorNewerReading, or deletes the
// record anyway when Fforce is set. Committing a token twice, or a
// token from another instance, is an application bug.
func (r *RingBuffer) Commit(tok Token, flags uint64) error {
	if r.block == nil {
		panicerr("%v released", r.logprefix)
	} else if tok.data == nil {
		panicerr("%v commit on zero token", r.logprefix)
	} else if tok.pos < 0 || tok.pos+nodesize > r.capacity {
		panicerr("%v foreign token %v", r.logprefix, tok.pos)
	}
	nd := r.nodeat(tok.pos)
	switch State(nd.state) {
	case StateWriting:
		if flags&Fdiscard != 0 {
			r.n_wdiscards++
			r.deletenode(tok.pos)
			return nil
		}
		nd.state = int64(StateCommitted)
		r.h_payload.Add(nd.dlen)
		r.n_commits++
		return nil

	case StateReading:
		if flags&Fdiscard != 0 {
			return r.commitrdiscard(tok.pos, flags)
		}
		r.deletenode(tok.pos)
		return nil
	}
	panicerr("%v commit on %v token", r.logprefix, State(nd.state))
	return nil
}

// release a consumer claim. The record reverts to committed and
// becomes, by the no-newer-reader condition, the oldest unclaimed
// record again.
func (r *RingBuffer) commitrdiscard(pos int64, flags uint64) error {
	nd := r.nodeat(pos)
	if nd.newer != nilpos {
		if State(r.nodeat(nd.newer).state) == StateReading {
			if flags&Fforce == 0 {
				return ErrorNewerReading
			}
			r.n_forced++
			r.deletenode(pos)
			return nil
		}
	}
	nd.state = int64(StateCommitted)
	r.reserve = pos
	r.n_rdiscards++
	return nil
}

// remove a record from both chains. Four structural cases: sole
// record, oldest record, newest record, interior record.
func (r *RingBuffer) deletenode(pos int64) {
	nd := r.nodeat(pos)
	freetill := r.endof(pos)
	r.n_deletes++

	if nd.fpos == pos { // sole record in the arena
		r.reinit()
		r.scrubfreed(pos, freetill)
		return
	}
	r.n_nodes--

	switch {
	case nd.older == nilpos: // oldest record
		r.unlinkpos(pos)
		next := nd.newer
		r.nodeat(next).older = nilpos
		if r.reserve == pos {
			r.reserve = next
		}
		r.tail = next

	case nd.newer == nilpos: // newest record
		r.unlinkpos(pos)
		r.nodeat(nd.older).newer = nilpos
		if r.reserve == pos {
			r.reserve = nilpos
		}
		r.head = nd.older

	default: // interior record
		r.unlinkpos(pos)
		r.nodeat(nd.older).newer = nd.newer
		r.nodeat(nd.newer).older = nd.older
		if r.reserve == pos {
			r.reserve = nd.newer
		}
	}
	r.scrubfreed(pos, freetill)
}

// unlink from the physical chain.
func (r *RingBuffer) unlinkpos(pos int64) {
	nd := r.nodeat(pos)
	r.nodeat(nd.bpos).fpos = nd.fpos
	r.nodeat(nd.fpos).bpos = nd.bpos
}
