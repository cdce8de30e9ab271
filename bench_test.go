package bloom

import (
	"strconv"
	"strings"
	"testing"
)

func BenchmarkAdd(b *testing.B) {
	f, _ := NewString(100000, 3, Config{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Add("doc" + strconv.Itoa(i))
	}
}

func BenchmarkAddSameKey(b *testing.B) {
	f, _ := NewString(100000, 3, Config{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Add("doc")
	}
}

func BenchmarkMightContainHit(b *testing.B) {
	f, _ := NewString(100000, 3, Config{})
	f.Add("doc")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.MightContain("doc")
	}
}

func BenchmarkMightContainMiss(b *testing.B) {
	f, _ := NewString(100000, 3, Config{})
	for i := 0; i < 1000; i++ {
		f.Add("doc" + strconv.Itoa(i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.MightContain("absent" + strconv.Itoa(i%1000))
	}
}

func BenchmarkMightContainLong(b *testing.B) {
	f, _ := NewString(100000, 3, Config{})
	long := strings.Repeat("x", 4096)
	f.Add(long)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.MightContain(long)
	}
}

func BenchmarkAlgorithms(b *testing.B) {
	for _, alg := range []int{AlgXXHash3, AlgFNV1a, AlgBlake2b, AlgMurmur3} {
		b.Run(AlgorithmName(alg), func(b *testing.B) {
			f, _ := NewString(100000, 7, Config{HashAlgorithm: alg})
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f.Add("doc" + strconv.Itoa(i%4096))
			}
		})
	}
}

func BenchmarkAddParallel(b *testing.B) {
	f, _ := NewString(1<<20, 5, Config{})

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			f.Add("doc" + strconv.Itoa(i))
			i++
		}
	})
}
