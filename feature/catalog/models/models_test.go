package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableNames(t *testing.T) {
	assert.Equal(t, "offer", Offer{}.TableName())
	assert.Equal(t, "configuration", Configuration{}.TableName())
	assert.Equal(t, "bookmark", Bookmark{}.TableName())
	assert.Len(t, All(), 3)
}

func TestConfiguration_IsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		memory  int16
		storage int16
		want    bool
	}{
		{"complete", 16, 512, false},
		{"no memory", 0, 512, true},
		{"no storage", 16, 0, true},
		{"nothing", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Configuration{MemoryCapacity: tt.memory, StorageSize: tt.storage}
			assert.Equal(t, tt.want, c.IsMalformed())
		})
	}
}
