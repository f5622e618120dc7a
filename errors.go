package goring

import "errors"

// ErrorBufferSize returned by InitRingBuffer when the supplied buffer,
// after aligning its base address, cannot hold even a zero length
// record.
var ErrorBufferSize = errors.New("goring.buffersize")

// ErrorOutofSpace returned by Reserve when no free range can hold the
// record and overwriting the oldest committed records is either not
// allowed or not possible.
var ErrorOutofSpace = errors.New("goring.outofspace")

// ErrorNewerReading returned by Commit when discarding a reading token
// while a newer record is still claimed by the consumer side.
var ErrorNewerReading = errors.New("goring.newerreading")
