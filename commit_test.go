package goring

import "testing"

func TestWriteDiscard(t *testing.T) {
	unit := Nodecost(16)
	r, _ := InitRingBuffer("wdiscard", mkbuffer(3*unit), nil)

	tok, _ := r.Reserve(16, 0)
	if err := r.Commit(tok, 0); err != nil {
		t.Fatalf("unexpected %v", err)
	}
	// cancel a reservation, its exact footprint is reusable and
	// nothing is counted as lost.
	tok, err := r.Reserve(16, 0)
	if err != nil {
		t.Fatalf("unexpected %v", err)
	} else if tok.pos != unit {
		t.Errorf("expected %v, got %v", unit, tok.pos)
	}
	if err := r.Commit(tok, Fdiscard); err != nil {
		t.Fatalf("unexpected %v", err)
	}
	tok, err = r.Reserve(16, 0)
	if err != nil {
		t.Fatalf("unexpected %v", err)
	} else if tok.pos != unit {
		t.Errorf("expected %v, got %v", unit, tok.pos)
	}
	if err := r.Commit(tok, 0); err != nil {
		t.Fatalf("unexpected %v", err)
	}
	r.Validate()

	if _, lost, ok := r.Consume(); ok == false {
		t.Fatalf("expected a record")
	} else if lost != 0 {
		t.Errorf("expected %v, got %v", 0, lost)
	}
	stats := r.Stats()
	if x := stats["n_wdiscards"].(int64); x != 1 {
		t.Errorf("expected %v, got %v", 1, x)
	} else if x := stats["n_evicted"].(int64); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}
}

func TestConsumeDiscard(t *testing.T) {
	unit := Nodecost(16)
	r, _ := InitRingBuffer("rdiscard", mkbuffer(3*unit), nil)

	for i := byte(1); i <= 2; i++ { // records A, B
		tok, _ := r.Reserve(16, 0)
		tok.Data()[0] = i
		if err := r.Commit(tok, 0); err != nil {
			t.Fatalf("unexpected %v", err)
		}
	}
	atok, _, _ := r.Consume()
	btok, _, _ := r.Consume()

	// discarding newest claim first, then the older one, both become
	// consumable again in the original order.
	if err := r.Commit(btok, Fdiscard); err != nil {
		t.Fatalf("unexpected %v", err)
	}
	if err := r.Commit(atok, Fdiscard); err != nil {
		t.Fatalf("unexpected %v", err)
	}
	r.Validate()

	tok, _, ok := r.Consume()
	if ok == false {
		t.Fatalf("expected a record")
	} else if tok.Data()[0] != 1 {
		t.Errorf("expected %v, got %v", 1, tok.Data()[0])
	}
	tok, _, ok = r.Consume()
	if ok == false {
		t.Fatalf("expected a record")
	} else if tok.Data()[0] != 2 {
		t.Errorf("expected %v, got %v", 2, tok.Data()[0])
	}

	// discarding an older claim while a newer one is live fails.
	atok, btok = tok, Token{}
	_ = btok
	r.Release()

	r, _ = InitRingBuffer("rdiscard2", mkbuffer(3*unit), nil)
	for i := byte(1); i <= 2; i++ {
		tok, _ := r.Reserve(16, 0)
		tok.Data()[0] = i
		if err := r.Commit(tok, 0); err != nil {
			t.Fatalf("unexpected %v", err)
		}
	}
	atok, _, _ = r.Consume()
	btok, _, _ = r.Consume()
	if err := r.Commit(atok, Fdiscard); err != ErrorNewerReading {
		t.Errorf("expected %v, got %v", ErrorNewerReading, err)
	}
	// forcing falls back to a final delete.
	if err := r.Commit(atok, Fdiscard|Fforce); err != nil {
		t.Fatalf("unexpected %v", err)
	}
	if x := r.Stats()["n_forced"].(int64); x != 1 {
		t.Errorf("expected %v, got %v", 1, x)
	}
	// the newer claim settles normally.
	if err := r.Commit(btok, Fdiscard); err != nil {
		t.Fatalf("unexpected %v", err)
	}
	tok, _, ok = r.Consume()
	if ok == false {
		t.Fatalf("expected a record")
	} else if tok.Data()[0] != 2 {
		t.Errorf("expected %v, got %v", 2, tok.Data()[0])
	}
	r.Validate()
}

func TestDeleteInterior(t *testing.T) {
	unit := Nodecost(16)
	r, _ := InitRingBuffer("interior", mkbuffer(4*unit), nil)

	toks := []Token{}
	for i := byte(1); i <= 3; i++ { // A, B, C
		tok, _ := r.Reserve(16, 0)
		tok.Data()[0] = i
		if err := r.Commit(tok, 0); err != nil {
			t.Fatalf("unexpected %v", err)
		}
	}
	for i := 0; i < 3; i++ {
		tok, _, ok := r.Consume()
		if ok == false {
			t.Fatalf("expected a record")
		}
		toks = append(toks, tok)
	}

	// delete B, an interior record.
	if err := r.Commit(toks[1], 0); err != nil {
		t.Fatalf("unexpected %v", err)
	}
	r.Validate()
	// delete C, the newest record.
	if err := r.Commit(toks[2], 0); err != nil {
		t.Fatalf("unexpected %v", err)
	}
	r.Validate()
	// A remains, discard the claim and consume it again.
	if err := r.Commit(toks[0], Fdiscard); err != nil {
		t.Fatalf("unexpected %v", err)
	}
	r.Validate()
	tok, _, ok := r.Consume()
	if ok == false {
		t.Fatalf("expected a record")
	} else if tok.Data()[0] != 1 {
		t.Errorf("expected %v, got %v", 1, tok.Data()[0])
	}
	if err := r.Commit(tok, 0); err != nil {
		t.Fatalf("unexpected %v", err)
	}
	r.Validate()
	if r.n_nodes != 0 {
		t.Errorf("expected %v, got %v", 0, r.n_nodes)
	}
}

func TestCommitPanic(t *testing.T) {
	r, _ := InitRingBuffer("commitpanic", mkbuffer(192), nil)
	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic")
			}
		}()
		r.Commit(Token{}, 0)
	}()

	// committed tokens cannot be committed again.
	tok, _ := r.Reserve(16, 0)
	if err := r.Commit(tok, 0); err != nil {
		t.Fatalf("unexpected %v", err)
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic")
			}
		}()
		r.Commit(tok, 0)
	}()
}
