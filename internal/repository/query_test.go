package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikeTermEscapesWildcards(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"A101", "%a101%"},
		{"%", `%\%%`},
		{"_", `%\_%`},
		{`C:\lab`, `%c:\\lab%`},
		{"50% off", `%50\% off%`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, likeTerm(tc.in), "input %q", tc.in)
	}
}
