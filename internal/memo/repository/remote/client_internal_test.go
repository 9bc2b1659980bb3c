package remote

import (
	"testing"
)

func TestNewClientLeavesTimeoutToTransport(t *testing.T) {
	for _, token := range []string{"", "secret"} {
		c := NewClient("http://localhost", token, WithRateLimit(5, 1))
		if c.httpClient.Timeout != 0 {
			t.Errorf("token %q: expected no client timeout, got %s", token, c.httpClient.Timeout)
		}
	}
}
