// Package cpuinfo reports host CPU features used to size parallel work.
package cpuinfo

import (
	"runtime"
	"strings"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Features describes the SIMD capabilities and geometry of the host CPU.
type Features struct {
	HasSSE2   bool
	HasAVX2   bool
	HasAVX512 bool
	HasFMA    bool
	HasNEON   bool

	Architecture  string
	NumCPU        int
	CacheLineSize int
}

// Detect reports the available CPU features for the current process.
func Detect() Features {
	return Features{
		HasSSE2:       cpu.X86.HasSSE2,
		HasAVX2:       cpu.X86.HasAVX2,
		HasAVX512:     cpu.X86.HasAVX512,
		HasFMA:        cpu.X86.HasFMA,
		HasNEON:       cpu.ARM64.HasASIMD,
		Architecture:  runtime.GOARCH,
		NumCPU:        runtime.NumCPU(),
		CacheLineSize: int(unsafe.Sizeof(cpu.CacheLinePad{})),
	}
}

// String returns a compact summary such as "amd64 (SSE2, AVX2, FMA)".
func (f Features) String() string {
	var ext []string
	if f.HasSSE2 {
		ext = append(ext, "SSE2")
	}
	if f.HasAVX2 {
		ext = append(ext, "AVX2")
	}
	if f.HasAVX512 {
		ext = append(ext, "AVX512")
	}
	if f.HasFMA {
		ext = append(ext, "FMA")
	}
	if f.HasNEON {
		ext = append(ext, "NEON")
	}
	if len(ext) == 0 {
		return f.Architecture
	}
	return f.Architecture + " (" + strings.Join(ext, ", ") + ")"
}
