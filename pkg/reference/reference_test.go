package reference

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		ref := Generate("REP")
		assert.True(t, IsValid(ref), "generated reference %q should match the format", ref)
		assert.True(t, strings.HasPrefix(ref, "REP-"))
		assert.Len(t, ref, 9)
	}
}

func TestGenerate_CustomPrefix(t *testing.T) {
	ref := Generate("SHOP")
	assert.True(t, strings.HasPrefix(ref, "SHOP-"))
	assert.True(t, IsValid(ref))
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		ref   string
		valid bool
	}{
		{"REP-A1B2C", true},
		{"SHOP-00000", true},
		{"REP-a1b2c", false},
		{"REP-A1B2", false},
		{"REP-A1B2C3", false},
		{"-A1B2C", false},
		{"REPA1B2C", false},
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, IsValid(tc.ref), "IsValid(%q)", tc.ref)
	}
}
