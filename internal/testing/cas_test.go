package testing

import (
	"context"
	"os"
	"testing"
)

func TestFetchCAS(t *testing.T) {
	if os.Getenv("PARTITION_TOOLS_ONLINE_TESTS") == "" {
		t.Skip("set PARTITION_TOOLS_ONLINE_TESTS to run tests that fetch from the testdata CAS")
	}
	if _, err := FetchCAS(context.Background(), "sha256:24fcae6d5ca153c8a9d3f9dbfcb291c3b812b2beea172b505a381b630bbd2688"); err != nil {
		t.Fatal(err)
	}
}
