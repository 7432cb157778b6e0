package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBookingID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{id: "BK-ABC123", want: true},
		{id: "BK-1A2B3C4D", want: true},
		{id: "BK-ABC12", want: false},
		{id: "BK-1A2B3C4D5", want: false},
		{id: "BK-abc123", want: false},
		{id: "XX-ABC123", want: false},
		{id: "BK-ABC-12", want: false},
		{id: "", want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsBookingID(tt.id), tt.id)
	}
}

func TestShareURL(t *testing.T) {
	assert.Equal(t, "https://sports.example.com/join/BK-ABC123", ShareURL("https://sports.example.com/", "BK-ABC123"))
	assert.Equal(t, "/join/BK-ABC123", ShareURL("", "BK-ABC123"))
}
