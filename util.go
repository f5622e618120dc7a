package goring

import "fmt"

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}

// alignup size to the next multiple of Alignment.
func alignup(size int64) int64 {
	return (size + (Alignment - 1)) &^ (Alignment - 1)
}
