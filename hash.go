package elastichash

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// HashFunc maps a key to a 64-bit digest. It must return the same value
// for equal keys for the lifetime of a table.
type HashFunc[K any] func(K) uint64

// HashString hashes s with xxhash.
func HashString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// HashBytes hashes b with xxhash.
func HashBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// HashUint64 hashes the little-endian encoding of v with xxhash.
func HashUint64(v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return xxhash.Sum64(buf[:])
}

// defaultHash handles strings, numbers and bools directly and walks any
// other comparable type with hashValue. Pointers and channels hash by
// address, so their layout is only reproducible within one process.
func defaultHash[K comparable](key K) uint64 {
	switch k := any(key).(type) {
	case string:
		return HashString(k)
	case int:
		return HashUint64(uint64(k))
	case int64:
		return HashUint64(uint64(k))
	case uint64:
		return HashUint64(k)
	case uint32:
		return HashUint64(uint64(k))
	case float64:
		return HashUint64(floatBits(k))
	case bool:
		if k {
			return HashUint64(1)
		}
		return HashUint64(0)
	default:
		d := xxhash.New()
		var buf [8]byte
		hashValue(d, &buf, reflect.ValueOf(k))
		return d.Sum64()
	}
}

// floatBits maps -0 onto +0 so that values equal under == share bits.
func floatBits(f float64) uint64 {
	if f == 0 {
		return 0
	}
	return math.Float64bits(f)
}

func writeUint64(d *xxhash.Digest, buf *[8]byte, v uint64) {
	binary.LittleEndian.PutUint64(buf[:], v)
	d.Write(buf[:])
}

// hashValue feeds v into d such that values equal under == produce the
// same bytes. Blank struct fields are skipped because == ignores them.
func hashValue(d *xxhash.Digest, buf *[8]byte, v reflect.Value) {
	if !v.IsValid() {
		writeUint64(d, buf, 0)
		return
	}

	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			writeUint64(d, buf, 1)
		} else {
			writeUint64(d, buf, 0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeUint64(d, buf, uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeUint64(d, buf, v.Uint())
	case reflect.Float32, reflect.Float64:
		writeUint64(d, buf, floatBits(v.Float()))
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		writeUint64(d, buf, floatBits(real(c)))
		writeUint64(d, buf, floatBits(imag(c)))
	case reflect.String:
		s := v.String()
		writeUint64(d, buf, uint64(len(s)))
		d.WriteString(s)
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		writeUint64(d, buf, uint64(v.Pointer()))
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			hashValue(d, buf, v.Index(i))
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			if t.Field(i).Name == "_" {
				continue
			}
			hashValue(d, buf, v.Field(i))
		}
	case reflect.Interface:
		if v.IsNil() {
			writeUint64(d, buf, 0)
			return
		}
		e := v.Elem()
		d.WriteString(e.Type().String())
		hashValue(d, buf, e)
	default:
		panic(fmt.Sprintf("elastichash: cannot hash key of type %s", v.Type()))
	}
}
