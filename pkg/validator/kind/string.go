package kind

import "fmt"

// CannotBeEmpty is reported for a mandatory value with no characters.
type CannotBeEmpty struct{}

func (CannotBeEmpty) Code() string    { return "cannot_be_empty" }
func (CannotBeEmpty) Params() []Param { return nil }
func (CannotBeEmpty) Message() string { return "Cannot be empty" }
func (CannotBeEmpty) sealed()         {}

// MinLength is reported when a value has fewer than Min characters.
type MinLength struct {
	Min int
}

func (MinLength) Code() string      { return "min_length" }
func (k MinLength) Params() []Param { return []Param{{Name: "min", Value: k.Min}} }
func (k MinLength) Message() string {
	return fmt.Sprintf("Must be at least %d %s", k.Min, characters(k.Min))
}
func (MinLength) sealed() {}

// MaxLength is reported when a value has more than Max characters.
type MaxLength struct {
	Max int
}

func (MaxLength) Code() string      { return "max_length" }
func (k MaxLength) Params() []Param { return []Param{{Name: "max", Value: k.Max}} }
func (k MaxLength) Message() string {
	return fmt.Sprintf("Must be at most %d %s", k.Max, characters(k.Max))
}
func (MaxLength) sealed() {}

func characters(n int) string {
	if n == 1 || n == -1 {
		return "character"
	}
	return "characters"
}

type MustHaveSpecialChars struct{}

func (MustHaveSpecialChars) Code() string    { return "must_have_special_chars" }
func (MustHaveSpecialChars) Params() []Param { return nil }
func (MustHaveSpecialChars) Message() string { return "Must contain at least one special character" }
func (MustHaveSpecialChars) sealed()         {}

// MustHaveUppercaseAndLowercase replaces the two separate case kinds when a
// rule requires both and at least one is missing.
type MustHaveUppercaseAndLowercase struct{}

func (MustHaveUppercaseAndLowercase) Code() string    { return "must_have_uppercase_and_lowercase" }
func (MustHaveUppercaseAndLowercase) Params() []Param { return nil }
func (MustHaveUppercaseAndLowercase) Message() string {
	return "Must contain at least one uppercase and lowercase letter"
}
func (MustHaveUppercaseAndLowercase) sealed() {}

type MustHaveUppercase struct{}

func (MustHaveUppercase) Code() string    { return "must_have_uppercase" }
func (MustHaveUppercase) Params() []Param { return nil }
func (MustHaveUppercase) Message() string { return "Must contain at least one uppercase letter" }
func (MustHaveUppercase) sealed()         {}

type MustHaveLowercase struct{}

func (MustHaveLowercase) Code() string    { return "must_have_lowercase" }
func (MustHaveLowercase) Params() []Param { return nil }
func (MustHaveLowercase) Message() string { return "Must contain at least one lowercase letter" }
func (MustHaveLowercase) sealed()         {}

type MustHaveDigit struct{}

func (MustHaveDigit) Code() string    { return "must_have_digit" }
func (MustHaveDigit) Params() []Param { return nil }
func (MustHaveDigit) Message() string { return "Must contain at least one digit" }
func (MustHaveDigit) sealed()         {}

// PasswordDoesNotMatch is reported on the confirmation field.
type PasswordDoesNotMatch struct{}

func (PasswordDoesNotMatch) Code() string    { return "password_does_not_match" }
func (PasswordDoesNotMatch) Params() []Param { return nil }
func (PasswordDoesNotMatch) Message() string { return "Does not match" }
func (PasswordDoesNotMatch) sealed()         {}

type UsernameTaken struct{}

func (UsernameTaken) Code() string    { return "username_taken" }
func (UsernameTaken) Params() []Param { return nil }
func (UsernameTaken) Message() string { return "Already taken" }
func (UsernameTaken) sealed()         {}

// CheckUnavailable is reported when an external check could not decide
// whether the value is valid, e.g. the uniqueness lookup failed.
type CheckUnavailable struct{}

func (CheckUnavailable) Code() string    { return "check_unavailable" }
func (CheckUnavailable) Params() []Param { return nil }
func (CheckUnavailable) Message() string { return "Could not be verified, try again later" }
func (CheckUnavailable) sealed()         {}

type InvalidURL struct{}

func (InvalidURL) Code() string    { return "invalid_url" }
func (InvalidURL) Params() []Param { return nil }
func (InvalidURL) Message() string { return "Invalid URL" }
func (InvalidURL) sealed()         {}

type EmailInvalid struct{}

func (EmailInvalid) Code() string    { return "email_invalid" }
func (EmailInvalid) Params() []Param { return nil }
func (EmailInvalid) Message() string { return "Invalid email address" }
func (EmailInvalid) sealed()         {}

// EmailDoesNotMatch is reported on the confirmation field.
type EmailDoesNotMatch struct{}

func (EmailDoesNotMatch) Code() string    { return "email_does_not_match" }
func (EmailDoesNotMatch) Params() []Param { return nil }
func (EmailDoesNotMatch) Message() string { return "Email does not match" }
func (EmailDoesNotMatch) sealed()         {}
