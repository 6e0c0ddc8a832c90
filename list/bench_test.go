package list_test

import (
	"testing"

	"github.com/katalvlaran/lvlist/list"
)

// benchSize mirrors the scale of the visualizer (tens of nodes), times ten.
const benchSize = 256

// BenchmarkAppend measures building a list of benchSize nodes by Append,
// which walks to the terminal on every call (O(n²) total).
func BenchmarkAppend(b *testing.B) {
	for _, k := range list.Kinds() {
		b.Run(k.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				l, _ := list.New[int](k)
				for v := 0; v < benchSize; v++ {
					l.Append(v)
				}
			}
		})
	}
}

// BenchmarkReverse measures a single Reverse on a prebuilt list.
func BenchmarkReverse(b *testing.B) {
	for _, k := range list.Kinds() {
		b.Run(k.String(), func(b *testing.B) {
			l, _ := list.New[int](k)
			for v := 0; v < benchSize; v++ {
				l.Prepend(v)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				l.Reverse()
			}
		})
	}
}
