package unsafeutil

import "unsafe"

// Int64Bytes returns the native-endian bytes of *v without copying.
func Int64Bytes(v *int64) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}
