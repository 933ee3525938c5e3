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
Package slabvec stores payloads in a slab arena and exposes them as
read-only foreignvec regions. The arena refcounts its buffers; releasing a
region decrements the count and lets the arena recycle the slot.
*/
package slabvec

import "sync"

import slab "github.com/steveyen/go-slab"

import foreignvec "github.com/maxymania/foreign-vec"

/*
Allocator wraps a slab arena. All arena calls go through one mutex.
*/
type Allocator struct{
	mu sync.Mutex
	arena *slab.Arena
}

/*
NewAllocator creates an allocator whose arena starts at startChunkSize bytes
per chunk and grows chunk sizes by factor 2 up to slabSize-byte slabs.
*/
func NewAllocator(startChunkSize,slabSize int) *Allocator {
	return &Allocator{arena:slab.NewArena(startChunkSize,slabSize,2,nil)}
}

type ref struct{
	a *Allocator
	buf []byte
}
func (r *ref) Release() {
	// XXX: we need to lock on the allocator, because it isn't thread-safe.
	r.a.mu.Lock(); defer r.a.mu.Unlock()
	r.a.arena.DecRef(r.buf)
}

/*
Copy copies b into the arena and returns it as a read-only region whose
release DecRefs the arena buffer. Payloads the arena cannot hold (larger
than a slab) are copied into plain Go storage instead and come back as a
native region; either way the result reads the same.
*/
func (a *Allocator) Copy(b []byte) *foreignvec.Vec[byte] {
	if len(b)==0 { return foreignvec.FromSlice[byte](nil) }

	a.mu.Lock()
	buf := a.arena.Alloc(len(b))
	a.mu.Unlock()
	if buf==nil { return foreignvec.FromSlice(append([]byte(nil),b...)) }

	copy(buf,b)
	return foreignvec.FromPointer(&buf[0],len(buf),&ref{a,buf})
}
