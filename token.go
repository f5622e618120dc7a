package goring

// Token is an opaque handle to a reserved or consumed record. Tokens
// are values, cheap to copy, and remain valid until committed. A
// token obtained from Reserve is the producer's write window, a token
// obtained from Consume is the consumer's read window.
type Token struct {
	pos  int64
	data []byte
}

// Len return the payload length of the record.
func (tok Token) Len() int64 {
	return int64(len(tok.data))
}

// Data return the payload bytes of the record, a window into the
// arena. The window is valid only until the token is committed.
func (tok Token) Data() []byte {
	return tok.data
}

func (r *RingBuffer) maketoken(pos int64) Token {
	return Token{pos: pos, data: r.dataat(pos)}
}
