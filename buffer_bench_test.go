package numformat

import (
	"math/big"
	"testing"
)

func BenchmarkWriteInt(b *testing.B) {
	benchCases := []struct {
		name   string
		format Format
	}{
		{"posix", LocaleC},
		{"standard", LocaleEn},
		{"indian", LocaleEnIN},
		{"multibyte", LocaleFi},
	}
	for _, bc := range benchCases {
		b.Run(bc.name, func(b *testing.B) {
			b.ReportAllocs()
			var buf Buffer
			for i := 0; i < b.N; i++ {
				buf.WriteInt(-1234567890123456789, bc.format)
			}
		})
	}
}

func BenchmarkFormatInt(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = FormatInt(-1234567890123456789, LocaleEn)
	}
}

func BenchmarkAppendInt(b *testing.B) {
	b.ReportAllocs()
	dst := make([]byte, 0, MaxBufLen)
	for i := 0; i < b.N; i++ {
		dst = AppendInt(dst[:0], -1234567890123456789, LocaleEn)
	}
}

func BenchmarkAppendBig(b *testing.B) {
	x, _ := new(big.Int).SetString("123456789012345678901234567890123456789", 10)
	b.Run("standard", func(b *testing.B) {
		b.ReportAllocs()
		dst := make([]byte, 0, 64)
		for i := 0; i < b.N; i++ {
			dst = AppendBig(dst[:0], x, LocaleEn)
		}
	})
	b.Run("indian", func(b *testing.B) {
		b.ReportAllocs()
		dst := make([]byte, 0, 64)
		for i := 0; i < b.N; i++ {
			dst = AppendBig(dst[:0], x, LocaleEnIN)
		}
	})
}
