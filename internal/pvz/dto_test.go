// AngelaMos | 2026
// dto_test.go

package pvz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListParams_Normalize(t *testing.T) {
	cases := []struct {
		name         string
		in           ListParams
		wantPage     int
		wantPageSize int
	}{
		{"defaults", ListParams{}, 1, 10},
		{"negative page", ListParams{Page: -3, PageSize: 20}, 1, 20},
		{"oversized page size clamps", ListParams{Page: 2, PageSize: 500}, 2, 100},
		{"in range untouched", ListParams{Page: 4, PageSize: 25}, 4, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.Normalize()
			assert.Equal(t, tc.wantPage, tc.in.Page)
			assert.Equal(t, tc.wantPageSize, tc.in.PageSize)
		})
	}
}

func TestListParams_Offset(t *testing.T) {
	p := ListParams{Page: 3, PageSize: 20}
	assert.Equal(t, 40, p.Offset())
}
