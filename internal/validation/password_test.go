package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPassword(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Result
	}{
		{name: "valid", in: "abc123", want: Result{Valid: true}},
		{name: "long valid", in: "CorrectHorse9Battery", want: Result{Valid: true}},
		{name: "empty", in: "", want: Result{Message: MsgPasswordTooShort}},
		{name: "too short reported before letters", in: "12345", want: Result{Message: MsgPasswordTooShort}},
		{name: "short with both classes", in: "ab12", want: Result{Message: MsgPasswordTooShort}},
		{name: "digits only", in: "123456", want: Result{Message: MsgPasswordNoLetter}},
		{name: "letters only", in: "abcdef", want: Result{Message: MsgPasswordNoDigit}},
		{name: "symbols only", in: "!!!!!!", want: Result{Message: MsgPasswordNoLetter}},
		{name: "special chars are allowed", in: "a1!@#$", want: Result{Valid: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Password(tt.in))
		})
	}
}

// Password(p).Valid must agree with the plain definition of the policy.
func TestPassword_MatchesDefinition(t *testing.T) {
	alphabet := []rune{'a', 'Z', '5', '0', ' ', '#', 'é'}

	var gen func(prefix []rune, depth int)
	gen = func(prefix []rune, depth int) {
		p := string(prefix)
		var alpha, digit bool
		for _, r := range prefix {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				alpha = true
			}
			if r >= '0' && r <= '9' {
				digit = true
			}
		}
		want := len(prefix) >= MinPasswordLength && alpha && digit
		if got := Password(p).Valid; got != want {
			t.Fatalf("Password(%q).Valid = %v, want %v", p, got, want)
		}
		if depth == 0 {
			return
		}
		for _, r := range alphabet {
			gen(append(prefix, r), depth-1)
		}
	}

	gen(nil, 6)
}
