// Package goring supplies a fixed-capacity ring buffer for variable
// length records, packed into a single contiguous arena, with a
// limited scope:
//
//   - Types and Functions exported by this package are not thread
//     safe. Correctness is guaranteed only for a single producer and a
//     single consumer, or when every call is serialized by the
//     application.
//   - Records are reserved, written in place and then committed;
//     consumers claim the oldest committed record, read it in place
//     and then commit the claim. There is no copy between the
//     application and the arena.
//   - When the arena is full a new reservation either fails or, with
//     Foverwrite, reclaims a run of the oldest committed records.
//     Reclaimed records are counted as lost and reported on the next
//     successful Consume.
//   - Record headers live inside the arena and will always be 64-bit
//     aligned. Apart from the arena itself nothing is allocated per
//     record.
//   - The arena never grows. Applications can supply their own
//     backing buffer through InitRingBuffer, or let NewRingBuffer
//     allocate one of "capacity" bytes.
//
// Records move through three states. Reserve hands out a token in
// Writing state; committing the token publishes the record, or with
// Fdiscard cancels it. Consume flips the oldest committed record to
// Reading; committing that token deletes the record for good, or with
// Fdiscard releases the claim so the record can be consumed again.
package goring
