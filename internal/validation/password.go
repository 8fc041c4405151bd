package validation

// MinPasswordLength is the shortest password the policy accepts.
const MinPasswordLength = 6

const (
	MsgPasswordTooShort = "Password must be at least 6 characters long"
	MsgPasswordNoLetter = "Password must contain at least one letter"
	MsgPasswordNoDigit  = "Password must contain at least one number"
)

// Password applies the password policy: at least MinPasswordLength
// characters, one ASCII letter and one ASCII digit. Only the first violated condition is
// reported, checked in that order.
func Password(p string) Result {
	if len([]rune(p)) < MinPasswordLength {
		return fail(MsgPasswordTooShort)
	}

	var hasLetter, hasDigit bool
	for _, r := range p {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}

	if !hasLetter {
		return fail(MsgPasswordNoLetter)
	}
	if !hasDigit {
		return fail(MsgPasswordNoDigit)
	}
	return ok()
}
