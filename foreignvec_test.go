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

package foreignvec

import "fmt"
import "testing"

import "github.com/stretchr/testify/require"

// mocks an external allocation: the region lives in kept, Release counts.
type testOwner struct{
	kept []int32
	released int
}
func (o *testOwner) Release() { o.released++ }

func TestNative(t *testing.T) {
	expected := []int32{1,2}

	v := FromSlice(append([]int32(nil),expected...))
	require.Equal(t,expected,v.Slice())
	require.Equal(t,2,v.Len())
	require.Equal(t,fmt.Sprint(expected),v.String())

	m,ok := v.Mut()
	require.True(t,ok)
	require.Equal(t,expected,*m)

	*m = append(*m,3)
	require.Equal(t,[]int32{1,2,3},v.Slice())

	v.Free()
}

func TestForeign(t *testing.T) {
	expected := []int32{1,2}

	o := &testOwner{kept:append([]int32(nil),expected...)}
	v := FromPointer(&o.kept[0],len(o.kept),o)

	require.Equal(t,expected,v.Slice())
	require.Equal(t,2,v.Len())

	m,ok := v.Mut()
	require.False(t,ok)
	require.Nil(t,m)

	require.Equal(t,0,o.released)
	v.Free()
	require.Equal(t,1,o.released)

	// releasing again must not run the owner a second time
	v.Free()
	require.Equal(t,1,o.released)
}

func TestNilPointer(t *testing.T) {
	o := &testOwner{}
	require.Panics(t,func() { FromPointer[int32](nil,2,o) })
	require.Panics(t,func() { FromPointer[int32](nil,0,nil) })
	require.Equal(t,0,o.released)
}

func TestNativeFreeSkipsOwner(t *testing.T) {
	v := FromSlice([]int32{1,2})
	v.Free()
	v.Free()
}

func TestStringSameInBothModes(t *testing.T) {
	data := []int32{7,11,13}

	native := FromSlice(append([]int32(nil),data...))
	o := &testOwner{kept:append([]int32(nil),data...)}
	foreign := FromPointer(&o.kept[0],len(o.kept),o)
	defer foreign.Free()

	require.Equal(t,native.String(),foreign.String())
	require.Equal(t,"[7 11 13]",foreign.String())
}

func TestForeignViewTracksRegion(t *testing.T) {
	// the view is the region itself, not a copy
	o := &testOwner{kept:[]int32{1,2,3,4}}
	v := FromPointer(&o.kept[1],2,o)
	defer v.Free()

	require.Equal(t,[]int32{2,3},v.Slice())
	require.Same(t,&o.kept[1],&v.Slice()[0])
}

func TestOwnerPanicStillReleases(t *testing.T) {
	o := &panicOwner{}
	v := FromPointer(&o.kept[0],len(o.kept),o)

	require.Panics(t,func() { v.Free() })
	require.Equal(t,1,o.calls)

	// the first call already counted as the release
	v.Free()
	require.Equal(t,1,o.calls)
}

type panicOwner struct{
	kept [2]int32
	calls int
}
func (o *panicOwner) Release() { o.calls++; panic("release failed") }
