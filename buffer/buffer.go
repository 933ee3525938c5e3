/*
Copyright (c) 2017 Simon Schmidt

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
Package buffer pools []byte storage in power-of-two size classes and freezes
pooled or bufferex-owned storage into read-only foreignvec regions.
*/
package buffer

import "math/bits"
import "sync"

const (
	minLog = 6  // 64 bytes, one CPU cache line
	maxLog = 26 // 64MB, nothing larger is pooled
)

var classes [1+maxLog-minLog]sync.Pool

func init() {
	for i := range classes {
		n := 1<<(minLog+uint(i))
		classes[i].New = func() interface{} {
			b := make([]byte,n)
			return &b
		}
	}
}

// class returns the pool index for size, or -1 if size exceeds maxLog.
func class(size int) int {
	if size<=(1<<minLog) { return 0 }
	c := bits.Len(uint(size-1))-minLog
	if c>=len(classes) { return -1 }
	return c
}

func bzero(b []byte) {
	for i := range b { b[i] = 0 }
}

/*
Get returns pooled storage of at least size bytes. The storage length is the
size class, not size; slice it down as needed. Oversized requests fall back
to a plain allocation, which Put will refuse to pool.
*/
func Get(size int) *[]byte {
	c := class(size)
	if c<0 { b := make([]byte,size); return &b }
	return classes[c].Get().(*[]byte)
}

/* CGet is Get with the storage zeroed. */
func CGet(size int) *[]byte {
	data := Get(size)
	bzero(*data)
	return data
}

/*
Put returns storage obtained from Get to its pool. Storage this package did
not hand out (not a power-of-two length within the pooled range) is dropped
on the floor.
*/
func Put(b *[]byte) {
	if b==nil { return }
	n := len(*b)
	if n<(1<<minLog) || n>(1<<maxLog) || (n&(n-1))!=0 { return }
	classes[class(n)].Put(b)
}
