package validators

import "testing"

func TestIsPhoneValid(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+84 901 234 567", true},
		{"0901-234-567", true},
		{"(090) 123.4567", true},
		{"84901234567", true},
		{"12", true},
		{"0123", false},
		{"+0123456", false},
		{"call me", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsPhoneValid(tt.phone); got != tt.want {
			t.Errorf("IsPhoneValid(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestNormalizePhone(t *testing.T) {
	if got := NormalizePhone(" +84 (90) 123-45.67 "); got != "+84901234567" {
		t.Errorf("NormalizePhone() = %q", got)
	}
}
