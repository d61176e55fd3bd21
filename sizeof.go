package countmin

import "unsafe"

const sizeofSketchStruct = int(unsafe.Sizeof(Sketch{}))
