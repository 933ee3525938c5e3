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
Package boltvec reads bolt values as foreignvec regions without copying
them out. A bolt value slice points straight into the database's mmap and
is only valid while its transaction lives, so the read transaction is the
region's owner: releasing the region rolls it back.
*/
package boltvec

import "github.com/boltdb/bolt"
import "github.com/pkg/errors"
import "github.com/vmihailenco/msgpack"

import foreignvec "github.com/maxymania/foreign-vec"

var ENoBucket = errors.New("ENoBucket")
var ENotFound = errors.New("ENotFound")

type viewTx struct{
	tx *bolt.Tx
}
func (v *viewTx) Release() { v.tx.Rollback() }

/*
Get returns the value stored under bucket/key as a read-only region over
the database's own pages. The region pins a read transaction; release it
promptly, since bolt cannot reclaim pages while read transactions are open.
A stored empty value comes back as an empty region with nothing pinned.
*/
func Get(db *bolt.DB, bucket,key []byte) (*foreignvec.Vec[byte],error) {
	tx,err := db.Begin(false)
	if err!=nil { return nil,errors.Wrap(err,"begin read tx") }
	bkt := tx.Bucket(bucket)
	if bkt==nil { tx.Rollback(); return nil,ENoBucket }
	val := bkt.Get(key)
	if val==nil { tx.Rollback(); return nil,ENotFound }
	if len(val)==0 { tx.Rollback(); return foreignvec.FromSlice[byte](nil),nil }
	return foreignvec.FromPointer(&val[0],len(val),&viewTx{tx}),nil
}

/*
GetValue msgpack-decodes the value stored under bucket/key into out,
straight off the mapped pages, and releases the region before returning.
*/
func GetValue(db *bolt.DB, bucket,key []byte, out interface{}) error {
	v,err := Get(db,bucket,key)
	if err!=nil { return err }
	defer v.Free()
	return msgpack.Unmarshal(v.Slice(),out)
}
