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

package buffer

import "github.com/byte-mug/golibs/bufferex"

import foreignvec "github.com/maxymania/foreign-vec"

type pooled struct{
	res *[]byte
}
func (p *pooled) Release() { Put(p.res) }

type binary struct{
	b bufferex.Binary
}
func (b *binary) Release() { b.b.Free() }

/*
Freeze wraps pool-backed storage as a read-only region. data is the filled
prefix the region should expose, res the storage it lives in as obtained
from Get. Releasing the region puts res back into its pool; data must not be
touched after that.
*/
func Freeze(data []byte, res *[]byte) *foreignvec.Vec[byte] {
	if len(data)==0 {
		Put(res)
		return foreignvec.FromSlice[byte](nil)
	}
	return foreignvec.FromPointer(&data[0],len(data),&pooled{res})
}

/* Copy copies b into pooled storage and freezes it. */
func Copy(b []byte) *foreignvec.Vec[byte] {
	res := Get(len(b))
	data := (*res)[:len(b)]
	copy(data,b)
	return Freeze(data,res)
}

/*
FromBinary wraps a bufferex.Binary as a read-only region. The Binary is
freed when the region is released; the caller hands it over entirely.
*/
func FromBinary(b bufferex.Binary) *foreignvec.Vec[byte] {
	data := b.Bytes()
	if len(data)==0 {
		b.Free()
		return foreignvec.FromSlice[byte](nil)
	}
	return foreignvec.FromPointer(&data[0],len(data),&binary{b})
}
