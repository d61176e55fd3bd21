package sizeof

import "unsafe"

const (
	Int64Int = int(unsafe.Sizeof(map[int64]int{}))
	Int      = int(unsafe.Sizeof(int(0)))
	Int64    = int(unsafe.Sizeof(int64(0)))
)
