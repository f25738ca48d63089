package fastnum

import (
	"sync/atomic"
	"testing"
)

func BenchmarkParseInt64(b *testing.B) {
	s := "1445412480123"
	b.ReportAllocs()
	b.SetBytes(int64(len(s)))
	b.RunParallel(func(pb *testing.PB) {
		n := int64(0)
		for pb.Next() {
			v, err := ParseInt64(s)
			if err != nil {
				panic(err)
			}
			n += v
		}
		atomic.AddInt64(&Sink, n)
	})
}

var Sink int64
