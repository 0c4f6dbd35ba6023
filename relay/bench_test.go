package relay_test

import (
	"testing"

	"github.com/katalvlaran/keyrelay/relay"
)

// BenchmarkPressCount_Cold measures a full cache fill for the deep chain.
func BenchmarkPressCount_Cold(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := relay.NewSolver()
		for _, code := range exampleCodes {
			if _, err := s.PressCount(code, relay.DeepLevels); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkPressCount_Warm measures lookups once every transition is cached.
func BenchmarkPressCount_Warm(b *testing.B) {
	s := relay.NewSolver()
	for _, code := range exampleCodes {
		_, _ = s.PressCount(code, relay.DeepLevels)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, code := range exampleCodes {
			_, _ = s.PressCount(code, relay.DeepLevels)
		}
	}
}
