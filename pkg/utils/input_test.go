package utils

import "testing"

func TestKeyRepeatFires(t *testing.T) {
	tests := []struct {
		duration int
		want     bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{29, false},
		{30, true},
		{31, false},
		{33, true},
	}

	for _, tt := range tests {
		if got := KeyRepeatFires(tt.duration); got != tt.want {
			t.Errorf("KeyRepeatFires(%d) = %v, 期望 %v", tt.duration, got, tt.want)
		}
	}
}
