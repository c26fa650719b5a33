package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	cases := []struct {
		page, pageSize, total int
		wantPages             int
	}{
		{page: 1, pageSize: 20, total: 100, wantPages: 5},
		{page: 2, pageSize: 30, total: 100, wantPages: 4},
		{page: 1, pageSize: 100, total: 100, wantPages: 1},
		{page: 1, pageSize: 1, total: 100, wantPages: 100},
		{page: 1, pageSize: 7, total: 0, wantPages: 0},
		{page: 1, pageSize: 0, total: 100, wantPages: 0},
	}

	for _, tc := range cases {
		got := NewPagination(tc.page, tc.pageSize, tc.total)
		assert.Equal(t, tc.wantPages, got.TotalPages, "pageSize=%d total=%d", tc.pageSize, tc.total)
		assert.Equal(t, tc.page, got.Page)
		assert.Equal(t, tc.pageSize, got.PageSize)
		assert.Equal(t, tc.total, got.TotalItems)
	}
}

func TestNewPaginationMatchesCeiling(t *testing.T) {
	for pageSize := 1; pageSize <= 100; pageSize++ {
		got := NewPagination(1, pageSize, 100)
		want := 100 / pageSize
		if 100%pageSize != 0 {
			want++
		}
		require.Equal(t, want, got.TotalPages, "pageSize=%d", pageSize)
	}
}

func TestNewErrorEncodesEmptyDetails(t *testing.T) {
	raw, err := json.Marshal(NewError(ErrorCodeInvalidRequest, "Missing required fields"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"INVALID_REQUEST","message":"Missing required fields","details":{}}`, string(raw))
}
