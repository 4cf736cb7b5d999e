package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults", 0, 0, 1, 20},
		{"negative inputs", -3, -5, 1, 20},
		{"limit capped", 2, 500, 2, 100},
		{"valid passthrough", 4, 50, 4, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := Clamp(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewMeta(t *testing.T) {
	assert.Equal(t, 3, NewMeta(45, 1, 20).TotalPages)
	assert.Equal(t, 2, NewMeta(40, 1, 20).TotalPages)
	assert.Equal(t, 1, NewMeta(0, 1, 20).TotalPages)
	assert.Equal(t, int64(45), NewMeta(45, 2, 20).Total)
}
