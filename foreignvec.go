/*
Copyright (c) 2018 Simon Schmidt

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

/*
Package foreignvec holds a contiguous, read-only run of elements that was
allocated either by the Go runtime or by an external allocator, behind one
uniform slice view.

A region is created from a plain slice (native mode) or from a pointer,
a length and an owner (foreign mode). Reading goes through the same slice in
both modes; there is no per-access mode check. Mutable, growable access
exists only in native mode. Free releases the region exactly once: native
storage is handed back to the garbage collector, foreign storage is disposed
of solely by its owner.
*/
package foreignvec

import "fmt"
import "unsafe"

/*
Owner disposes of a foreign memory region. Release is called exactly once,
when the region wrapping it is freed, and it alone is responsible for
returning the memory to whatever allocated it. A Release that does nothing
leaks the region; that is the owner's choice, not an error.

Release must not run before the region is freed, and the memory must stay
valid and unchanged until it does.
*/
type Owner interface{
	Release()
}

/*
Vec is a contiguous run of T elements. It is either backed by an ordinary
Go slice, in which case it owns the storage and may grow it, or by memory
from an external allocator, in which case an Owner keeps the storage alive
and read access is all there is.
*/
type Vec[T any] struct{
	// data is the one view used by both backings. For foreign storage it is
	// built over [ptr,ptr+n) with len==cap, and the capacity must never be
	// taken as permission to grow or reallocate.
	data []T
	owner Owner
	foreign bool
}

/*
FromSlice wraps an ordinary slice as a native region. The slice is taken
over as-is; no copy is made. The caller should not keep using data directly
afterwards.
*/
func FromSlice[T any](data []T) *Vec[T] {
	return &Vec[T]{data:data}
}

/*
FromPointer takes ownership of the memory region [ptr,ptr+n) allocated by an
external allocator. It panics if ptr is nil.

This is the one trusted entry point: beyond the nil check nothing is
verified. The caller vouches that ptr refers to n valid, properly aligned,
immutable elements of T, that the memory stays valid and unchanged for the
region's whole lifetime, and that owner (and only owner) disposes of it.
Breaking that contract corrupts memory; it is not a reported error.
*/
func FromPointer[T any](ptr *T, n int, owner Owner) *Vec[T] {
	if ptr==nil { panic("foreignvec: nil pointer") }
	return &Vec[T]{data:unsafe.Slice(ptr,n),owner:owner,foreign:true}
}

/*
Slice returns the read-only view over all elements. Both backings return it
the same way; callers must not modify or grow it.
*/
func (v *Vec[T]) Slice() []T { return v.data }

/* Len returns the number of elements. */
func (v *Vec[T]) Len() int { return len(v.data) }

/*
Mut returns a growable handle to the storage, usable like any Go slice
(append, truncate, in-place edits), iff the region is natively backed.
For foreign storage it returns (nil,false): memory this package did not
allocate is never written to.
*/
func (v *Vec[T]) Mut() (*[]T,bool) {
	if v.foreign { return nil,false }
	return &v.data,true
}

/*
Free releases the region. Native storage is simply let go of, so the
garbage collector reclaims it as usual. Foreign storage is not touched;
the owner's Release runs instead, exactly once, and it alone disposes of
the memory. Calling Free again does nothing.

If Release panics, the panic propagates; the region counts as released
either way, so a recovering caller cannot run Release twice.
*/
func (v *Vec[T]) Free() {
	o := v.owner
	v.owner = nil
	v.data = nil
	if o!=nil { o.Release() }
}

/*
String renders the element sequence. The output depends only on the
contents, not on which allocator backs them.
*/
func (v *Vec[T]) String() string { return fmt.Sprint(v.data) }
