// Package identifier decides whether free-text input addresses an account by
// email, phone number or username.
package identifier

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/muhammadheryan/account-service/constant"
	"github.com/nyaruka/phonenumbers"
)

var (
	emailPattern    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,7}$`)
	phonePattern    = regexp.MustCompile(`^(\+[0-9]+\s*)?(\([0-9]+\))?[\s0-9\-]+[0-9]+$`)
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
)

const (
	UsernameMinLength = 5
	UsernameMaxLength = 30
)

// ClassificationError is returned when the input is none of email, phone or username.
type ClassificationError struct {
	Input string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("cannot classify identifier %q", e.Input)
}

// Identifier is a classified input. Value is normalized: emails are lower-cased and
// phone numbers are formatted as E.164.
type Identifier struct {
	Kind  constant.IdentifierKind
	Value string
}

// Channel maps an email or phone identifier to the verification channel.
func (i Identifier) Channel() constant.AuthType {
	if i.Kind == constant.IdentifierPhone {
		return constant.AuthTypePhone
	}
	return constant.AuthTypeEmail
}

type Classifier struct {
	defaultRegion string
}

// New returns a classifier. defaultRegion is an ISO 3166 region code used for phone
// numbers written without a country code; when empty such numbers are rejected.
func New(defaultRegion string) *Classifier {
	return &Classifier{defaultRegion: strings.ToUpper(strings.TrimSpace(defaultRegion))}
}

// ClassifyContact accepts only an email or a phone number (signup and password reset).
func (c *Classifier) ClassifyContact(input string) (Identifier, error) {
	input = strings.TrimSpace(input)
	if IsEmail(input) {
		return Identifier{Kind: constant.IdentifierEmail, Value: strings.ToLower(input)}, nil
	}
	if phone, ok := c.normalizePhone(input); ok {
		return Identifier{Kind: constant.IdentifierPhone, Value: phone}, nil
	}
	return Identifier{}, &ClassificationError{Input: input}
}

// Classify accepts an email, a phone number or a username (login).
// Phone-shaped input that is not a valid number is rejected rather than treated as a
// username.
func (c *Classifier) Classify(input string) (Identifier, error) {
	input = strings.TrimSpace(input)
	if IsEmail(input) {
		return Identifier{Kind: constant.IdentifierEmail, Value: strings.ToLower(input)}, nil
	}
	if phonePattern.MatchString(input) {
		if phone, ok := c.normalizePhone(input); ok {
			return Identifier{Kind: constant.IdentifierPhone, Value: phone}, nil
		}
		return Identifier{}, &ClassificationError{Input: input}
	}
	if usernamePattern.MatchString(input) {
		return Identifier{Kind: constant.IdentifierUsername, Value: input}, nil
	}
	return Identifier{}, &ClassificationError{Input: input}
}

func (c *Classifier) normalizePhone(input string) (string, bool) {
	if input == "" || !phonePattern.MatchString(input) {
		return "", false
	}
	num, err := phonenumbers.Parse(input, c.defaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return "", false
	}
	return phonenumbers.Format(num, phonenumbers.E164), true
}

func IsEmail(input string) bool {
	return emailPattern.MatchString(input)
}

// IsValidUsername reports whether s can be chosen as a username: 5-30 characters of
// [A-Za-z0-9_.-], not entirely numeric and not shaped like a phone number, so that a
// login with it always classifies as a username.
func IsValidUsername(s string) bool {
	if len(s) < UsernameMinLength || len(s) > UsernameMaxLength {
		return false
	}
	if !usernamePattern.MatchString(s) {
		return false
	}
	return !phonePattern.MatchString(s)
}
