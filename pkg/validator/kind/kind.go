package kind

// Kind describes a single validation failure together with the parameters
// needed to render it. The set is closed: only types declared in this package
// implement Kind, so every failure a validator can report is known up front.
type Kind interface {
	// Code is the stable identifier used as a message template key.
	Code() string
	// Params returns the named parameters in a fixed order.
	Params() []Param
	// Message is the default English rendering.
	Message() string

	sealed()
}

// Param is a named rendering parameter. Value is an int, a float64 or a string.
type Param struct {
	Name  string
	Value any
}

// Builtin returns a zero value of every built-in kind. Resolvers use it to
// verify at startup that each kind has a template.
func Builtin() []Kind {
	return []Kind{
		CannotBeEmpty{},
		MinLength{},
		MaxLength{},
		MustHaveSpecialChars{},
		MustHaveUppercaseAndLowercase{},
		MustHaveUppercase{},
		MustHaveLowercase{},
		MustHaveDigit{},
		PasswordDoesNotMatch{},
		UsernameTaken{},
		CheckUnavailable{},
		InvalidURL{},
		EmailInvalid{},
		EmailDoesNotMatch{},
		NumberMinValue{},
		NumberMaxValue{},
		DateMin{},
		DateMax{},
		DateTimeMin{},
		DateTimeMax{},
		DateTimeNaiveMin{},
		DateTimeNaiveMax{},
		TimeMin{},
		TimeMax{},
	}
}

// IsBuiltin reports whether code belongs to a built-in kind.
func IsBuiltin(code string) bool {
	_, ok := builtinCodes[code]
	return ok
}

var builtinCodes = func() map[string]struct{} {
	codes := make(map[string]struct{})
	for _, k := range Builtin() {
		codes[k.Code()] = struct{}{}
	}
	return codes
}()

// ParamNames returns the parameter names of k in declaration order.
func ParamNames(k Kind) []string {
	params := k.Params()
	if len(params) == 0 {
		return nil
	}
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}

// IsNumeric reports whether a parameter value can drive plural selection.
func IsNumeric(v any) bool {
	switch v.(type) {
	case int, float64:
		return true
	default:
		return false
	}
}
