package forms

import "testing"

func TestPasswordStrong(t *testing.T) {
	cases := []struct {
		pwd  string
		want bool
	}{
		{"Sup3r$ecret", true},
		{"Aa1!xxxx", true},
		{"short1!", false},       // too short
		{"alllower1!", false},    // no upper
		{"ALLUPPER1!", false},    // no lower
		{"NoDigits!!", false},    // no digit
		{"NoPunct1234", false},   // no punctuation
		{"", false},
	}
	for _, c := range cases {
		if got := PasswordStrong(c.pwd); got != c.want {
			t.Errorf("PasswordStrong(%q) = %v, want %v", c.pwd, got, c.want)
		}
	}
}
