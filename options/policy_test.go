package options_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"openrecord/options"
)

func ExamplePolicyEnum() {
	fmt.Println(options.PolicyNone)
	fmt.Println(options.PolicyCascade | options.PolicyNested)
	fmt.Println(options.PolicyAll)
	// Output:
	// none
	// cascade|nested
	// cascade|nested|fold|nocache
}

func TestPolicyEnum_Has(t *testing.T) {
	p := options.PolicyCascade | options.PolicyFold

	assert.True(t, p.Has(options.PolicyCascade))
	assert.True(t, p.Has(options.PolicyFold))
	assert.False(t, p.Has(options.PolicyNested))
	assert.False(t, p.Has(options.PolicyCascade|options.PolicyNested))
	assert.True(t, options.PolicyAll.Has(p))
	assert.Equal(t, options.PolicyFold, p.Without(options.PolicyCascade))
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		input    string
		expected options.PolicyEnum
		ok       bool
	}{
		{"", options.PolicyNone, true},
		{"none", options.PolicyNone, true},
		{"cascade", options.PolicyCascade, true},
		{"Cascade|nested", options.PolicyCascade | options.PolicyNested, true},
		{"fold, nocache", options.PolicyFold | options.PolicyNoCache, true},
		{"cascade|bogus", options.PolicyNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, ok := options.ParsePolicy(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestPolicyEnum_StringRoundTrip(t *testing.T) {
	for p := options.PolicyNone; p <= options.PolicyAll; p++ {
		parsed, ok := options.ParsePolicy(p.String())
		assert.True(t, ok, p.String())
		assert.Equal(t, p, parsed)
	}
}
