package goring

import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"

// Alignment record headers and footprints are multiples of Alignment.
const Alignment = int64(8)

// Maxcapacity maximum size of the backing arena. Can be used as
// default capacity for NewRingBuffer().
const Maxcapacity = int64(1024 * 1024 * 1024)

// Maxlength maximum payload length allowed for a single record,
// unless overridden by the "maxlength" setting.
const Maxlength = int64(1024 * 1024)

// Defaultsettings for ring buffer instances.
//
// "capacity" (int64, default: freeRAM/16, clamped to Maxcapacity)
//		Size of the backing arena, in bytes. Used by NewRingBuffer()
//		when allocating its own buffer. Ignored by InitRingBuffer(),
//		where the supplied buffer decides the capacity.
//
// "maxlength" (int64, default: Maxlength)
//		Maximum payload length for a single record. Reserving more
//		than "maxlength" bytes is treated as an application bug.
//
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	capacity := int64(free / 16)
	if capacity > Maxcapacity {
		capacity = Maxcapacity
	}
	return s.Settings{
		"capacity":  capacity,
		"maxlength": Maxlength,
	}
}

func (r *RingBuffer) readsettings(setts s.Settings) {
	r.maxlength = setts.Int64("maxlength")
	if r.maxlength <= 0 {
		panicerr("invalid maxlength settings %v", r.maxlength)
	}
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
