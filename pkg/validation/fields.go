// Package validation holds the pure field checks applied to every input before
// any invariant read or write touches storage.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type Kind int

const (
	Identifier Kind = iota
	PositiveInteger
	PositiveNumber
	RestrictedName
	RestrictedText
)

func (k Kind) String() string {
	switch k {
	case Identifier:
		return "identifier"
	case PositiveInteger:
		return "positiveInteger"
	case PositiveNumber:
		return "positiveNumber"
	case RestrictedName:
		return "restrictedName"
	case RestrictedText:
		return "restrictedText"
	}
	return "unknown"
}

var (
	nameChars = regexp.MustCompile(`^[a-zA-Z ]+$`)
	textChars = regexp.MustCompile(`^[a-zA-Z0-9 -]+$`)
)

// Rule pairs a kind with its length bound. MaxLen only applies to the
// restricted string kinds.
type Rule struct {
	Kind   Kind
	MaxLen int
}

func Name(maxLen int) Rule { return Rule{Kind: RestrictedName, MaxLen: maxLen} }

func Text(maxLen int) Rule { return Rule{Kind: RestrictedText, MaxLen: maxLen} }

var (
	ID       = Rule{Kind: Identifier}
	Integer  = Rule{Kind: PositiveInteger}
	Positive = Rule{Kind: PositiveNumber}
)

// Check returns nil when value satisfies the rule, otherwise an error whose
// text is the human-readable reason.
func (r Rule) Check(value string) error {
	switch r.Kind {
	case Identifier, PositiveInteger:
		_, err := parsePositiveInt(value)
		return err
	case PositiveNumber:
		_, err := parsePositiveDecimal(value)
		return err
	case RestrictedName:
		return checkRestricted(value, r.MaxLen, nameChars, "letters and spaces")
	case RestrictedText:
		return checkRestricted(value, r.MaxLen, textChars, "letters, digits, spaces and dashes")
	}
	return fmt.Errorf("unknown field kind %d", r.Kind)
}

func checkRestricted(value string, maxLen int, pattern *regexp.Regexp, allowed string) error {
	n := len(value)
	if n == 0 {
		return errors.New("must not be empty")
	}
	if maxLen > 0 && n > maxLen {
		return fmt.Errorf("must be at most %d characters", maxLen)
	}
	if !pattern.MatchString(value) {
		return fmt.Errorf("may only contain %s", allowed)
	}
	return nil
}

// ParsePositiveInt parses a base-10 integer greater than zero.
func ParsePositiveInt(value string) (int64, error) {
	return parsePositiveInt(value)
}

// ParsePositiveDecimal parses a decimal number greater than zero.
func ParsePositiveDecimal(value string) (decimal.Decimal, error) {
	return parsePositiveDecimal(value)
}

func parsePositiveInt(value string) (int64, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0, errors.New("must be a positive integer")
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return 0, errors.New("must be a positive integer")
	}
	return n, nil
}

func parsePositiveDecimal(value string) (decimal.Decimal, error) {
	v := strings.TrimSpace(value)
	d, err := decimal.NewFromString(v)
	if v == "" || err != nil || !d.IsPositive() {
		return decimal.Zero, errors.New("must be a positive number")
	}
	return d, nil
}
