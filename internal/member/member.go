/*
Package member recovers a pointer to a struct from a pointer to one of its
fields.

This is the only package in the module that performs raw address arithmetic.
The subtraction in Owner is inherently unsafe: it is valid only when the
field pointer really is the address of the selected field inside a live
instance of the owner type. Callers bind a field once with Offset and must
pass only pointers that satisfy that contract.

Both conversions through uintptr happen inside a single expression, and a
Go interior pointer keeps its whole allocation alive, so the arithmetic is
safe with respect to the garbage collector.
*/
package member

import "unsafe"

// Offset returns the byte offset of the field selected by sel within T.
//
// It panics if sel returns a pointer that cannot be a field of its
// argument.
func Offset[T, F any](sel func(*T) *F) uintptr {
	probe := new(T)
	field := sel(probe)

	off := uintptr(unsafe.Pointer(field)) - uintptr(unsafe.Pointer(probe))

	var f F
	if unsafe.Sizeof(f) > unsafe.Sizeof(*probe) || off > unsafe.Sizeof(*probe)-unsafe.Sizeof(f) {
		panic("member: selector must return a field of its argument")
	}

	return off
}

// Owner returns the *T that embeds the given field at offset off.
//
// The field pointer must be the address of the field previously bound with
// Offset, inside a live T. Passing any other pointer corrupts memory.
func Owner[T, F any](field *F, off uintptr) *T {
	return (*T)(unsafe.Pointer(uintptr(unsafe.Pointer(field)) - off))
}
