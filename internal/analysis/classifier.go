package analysis

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// BaselineMinLength is the fixed length threshold used by the baseline
// classification. The live, user-adjustable policy threshold is applied
// later by the projector; only the baseline is evaluated here.
const BaselineMinLength = 12

// Violated-rule reason texts.
//
// Design decision: The reason strings are part of the report contract
// (consumers may display only the first reason), so they are named
// constants rather than inline literals. The length reason is the only
// policy-sensitive one and uses a single wording template shared with
// the projector's live re-derivation, so it can be recognized and
// stripped without re-running the character-class checks.
const (
	// lengthReasonPrefix identifies reasons produced by the length rule.
	lengthReasonPrefix = "Too short"

	// ReasonNoLowercase flags a password with no a-z character.
	ReasonNoLowercase = "No lowercase"

	// ReasonNoUppercase flags a password with no A-Z character.
	ReasonNoUppercase = "No uppercase"

	// ReasonNoDigit flags a password with no 0-9 character.
	ReasonNoDigit = "No number"

	// ReasonNoSymbol flags a password made only of letters and digits.
	ReasonNoSymbol = "No symbol"

	// ReasonCommonPattern flags a password containing a well-known
	// weak substring.
	ReasonCommonPattern = "Contains a common pattern"
)

// commonPatterns are substrings that make a password trivially guessable.
// Matched case-insensitively. This is deliberately a small, explainable
// list, not a breach corpus.
var commonPatterns = []string{"password", "qwerty", "1234"}

// LengthReason returns the reason text for a password shorter than min
// characters. Both the baseline classification and the projector's live
// re-evaluation use this single template.
func LengthReason(min int) string {
	return fmt.Sprintf("%s (min %d chars)", lengthReasonPrefix, min)
}

// IsLengthReason reports whether a reason was produced by the length rule.
// The projector uses this to strip the baseline length reason before
// re-deriving it against the live threshold.
func IsLengthReason(reason string) bool {
	return strings.HasPrefix(reason, lengthReasonPrefix)
}

// Classify evaluates the baseline rule set against a password and returns
// the violated-rule reasons in fixed order: length, lowercase, uppercase,
// digit, symbol, common pattern. A strong password yields nil.
//
// The function is pure and must behave correctly even for an empty
// password (all five length/character-class rules flag; the common
// pattern rule does not), although the normalizer drops empty passwords
// before they reach the core.
func Classify(password string) []string {
	var reasons []string

	if PasswordLength(password) < BaselineMinLength {
		reasons = append(reasons, LengthReason(BaselineMinLength))
	}
	if !hasLowercase(password) {
		reasons = append(reasons, ReasonNoLowercase)
	}
	if !hasUppercase(password) {
		reasons = append(reasons, ReasonNoUppercase)
	}
	if !hasDigit(password) {
		reasons = append(reasons, ReasonNoDigit)
	}
	if !hasSymbol(password) {
		reasons = append(reasons, ReasonNoSymbol)
	}
	if containsCommonPattern(password) {
		reasons = append(reasons, ReasonCommonPattern)
	}

	return reasons
}

// PasswordLength returns the length of a password in characters.
// Counting runes rather than bytes keeps the length policy meaningful
// for non-ASCII passwords.
func PasswordLength(password string) int {
	return utf8.RuneCountInString(password)
}

// hasLowercase reports whether the password contains a character in a-z.
func hasLowercase(password string) bool {
	return strings.ContainsFunc(password, func(r rune) bool {
		return r >= 'a' && r <= 'z'
	})
}

// hasUppercase reports whether the password contains a character in A-Z.
func hasUppercase(password string) bool {
	return strings.ContainsFunc(password, func(r rune) bool {
		return r >= 'A' && r <= 'Z'
	})
}

// hasDigit reports whether the password contains a character in 0-9.
func hasDigit(password string) bool {
	return strings.ContainsFunc(password, func(r rune) bool {
		return r >= '0' && r <= '9'
	})
}

// hasSymbol reports whether the password contains any character outside
// A-Z, a-z, and 0-9.
func hasSymbol(password string) bool {
	return strings.ContainsFunc(password, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= 'A' && r <= 'Z':
			return false
		case r >= '0' && r <= '9':
			return false
		default:
			return true
		}
	})
}

// containsCommonPattern reports whether the password contains any of the
// well-known weak substrings, case-insensitively.
func containsCommonPattern(password string) bool {
	lower := strings.ToLower(password)
	for _, pattern := range commonPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}
