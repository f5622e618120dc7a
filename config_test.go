package goring

import "testing"

import s "github.com/bnclabs/gosettings"

func TestDefaultsettings(t *testing.T) {
	setts := Defaultsettings()
	if capacity := setts.Int64("capacity"); capacity <= 0 {
		t.Errorf("unexpected capacity %v", capacity)
	} else if capacity > Maxcapacity {
		t.Errorf("capacity %v exceeds %v", capacity, Maxcapacity)
	}
	if x := setts.Int64("maxlength"); x != Maxlength {
		t.Errorf("expected %v, got %v", Maxlength, x)
	}
}

func TestNewRingBuffer(t *testing.T) {
	r := NewRingBuffer("new", s.Settings{"capacity": int64(1024)})
	if r.capacity < 1024-Alignment {
		t.Errorf("unexpected capacity %v", r.capacity)
	}
	tok, err := r.Reserve(16, 0)
	if err != nil {
		t.Fatalf("unexpected %v", err)
	} else if err := r.Commit(tok, 0); err != nil {
		t.Fatalf("unexpected %v", err)
	}
	r.Validate()
	r.Release()

	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic")
			}
		}()
		NewRingBuffer("new", s.Settings{"capacity": int64(0)})
	}()
	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic")
			}
		}()
		NewRingBuffer("new", s.Settings{"capacity": Maxcapacity + 1})
	}()
}

func TestMaxlength(t *testing.T) {
	setts := s.Settings{"maxlength": int64(32)}
	r, _ := InitRingBuffer("maxlength", mkbuffer(1024), setts)
	if _, err := r.Reserve(32, 0); err != nil {
		t.Fatalf("unexpected %v", err)
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic")
			}
		}()
		r.Reserve(33, 0)
	}()

	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic")
			}
		}()
		InitRingBuffer("maxlength", mkbuffer(1024), s.Settings{"maxlength": int64(0)})
	}()
}
