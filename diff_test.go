package jsoncodec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// requireDiff fails the test with a unified diff if want and got differ
// structurally. Mirrors the teacher's RequireMetricEqual helper
// (influxdata-line-protocol/parser_test.go), which reaches for
// cmp.Diff over reflect.DeepEqual whenever the compared value is a
// composite (there, a Metric with nested tags/fields; here, a decoded
// list or tuple) rather than a single scalar.
func requireDiff(t *testing.T, want, got interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
