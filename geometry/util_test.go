package geometry_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// assertClose fails t when want and got differ beyond float noise.
func assertClose(t *testing.T, want, got any) {
	t.Helper()
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}
