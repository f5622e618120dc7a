package goring

import "unsafe"

import "github.com/bnclabs/golog"

func init() {
	setts := map[string]interface{}{
		"log.level":      "ignore",
		"log.colorfatal": "red",
		"log.colorerror": "hired",
		"log.colorwarn":  "yellow",
	}
	log.SetLogger(nil, setts)
}

// buffer of exactly n usable bytes, base aligned to Alignment.
func mkbuffer(n int64) []byte {
	buf := make([]byte, n+Alignment)
	base := int64(uintptr(unsafe.Pointer(&buf[0])))
	lead := alignup(base) - base
	return buf[lead : lead+n]
}
