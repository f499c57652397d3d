//go:build amd64 && !purego

package matrix

import (
	"sync"
	"testing"

	"github.com/cwbudde/algo-matrix/internal/testutil"
	archregistry "github.com/cwbudde/algo-matrix/matrix/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func resetScaleDispatchForTest() {
	scaleBlockImpl = nil
	scaleBlockName = ""
	scaleBlockInitOnce = sync.Once{}
}

func TestScaleDispatch_AMD64Modes(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		wantImpl string
	}{
		{
			name: "generic-forced",
			features: cpu.Features{
				ForceGeneric: true,
				Architecture: "amd64",
			},
			wantImpl: "generic",
		},
		{
			name: "sse2-only",
			features: cpu.Features{
				HasSSE2:      true,
				Architecture: "amd64",
			},
			wantImpl: "generic",
		},
		{
			name: "avx2",
			features: cpu.Features{
				HasSSE2:      true,
				HasAVX2:      true,
				Architecture: "amd64",
			},
			wantImpl: "avx2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)

			defer cpu.ResetDetection()
			defer resetScaleDispatchForTest()

			resetScaleDispatchForTest()

			entry := archregistry.Global.Lookup(cpu.DetectFeatures())
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}

			if entry.Name != tt.wantImpl {
				t.Fatalf("expected %q, got %q", tt.wantImpl, entry.Name)
			}

			if got := KernelName(); got != tt.wantImpl {
				t.Fatalf("KernelName() = %q, want %q", got, tt.wantImpl)
			}

			data := testutil.DeterministicMatrix(5, 4, 7, 9)
			dst := NewF32(7, 9)
			if st := Scale(WrapF32(7, 9, data), 1.75, dst); st != Success {
				t.Fatalf("Scale status = %v", st)
			}
			testutil.RequireBitsEqual(t, dst.Data, scaleRef(data, 1.75))
		})
	}
}
