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
Package mmapvec exposes memory-mapped files as read-only foreignvec regions.
The kernel is the allocator here; releasing the region unmaps it.
*/
package mmapvec

import "os"

import mmap "github.com/edsrzf/mmap-go"
import "github.com/pkg/errors"

import foreignvec "github.com/maxymania/foreign-vec"

var EEmptyFile = errors.New("EEmptyFile")

type region struct{
	m mmap.MMap
	f *os.File
}
func (r *region) Release() {
	r.m.Unmap()
	if r.f!=nil { r.f.Close() }
}

/*
Map maps f read-only and returns the mapping as a region. The file handle
stays with the caller; the mapping itself outlives it. Releasing the region
unmaps. Empty files cannot be mapped and yield EEmptyFile.
*/
func Map(f *os.File) (*foreignvec.Vec[byte],error) {
	return wrap(f,nil)
}

/*
Open opens path, maps it read-only and hands both to the region: releasing
it unmaps and closes the file.
*/
func Open(path string) (*foreignvec.Vec[byte],error) {
	f,err := os.Open(path)
	if err!=nil { return nil,err }
	v,err := wrap(f,f)
	if err!=nil { f.Close(); return nil,err }
	return v,nil
}

func wrap(f,keep *os.File) (*foreignvec.Vec[byte],error) {
	s,err := f.Stat()
	if err!=nil { return nil,err }
	if s.Size()==0 { return nil,EEmptyFile }
	m,err := mmap.Map(f,mmap.RDONLY,0)
	if err!=nil { return nil,errors.Wrap(err,"mmap") }
	return foreignvec.FromPointer(&m[0],len(m),&region{m,keep}),nil
}
