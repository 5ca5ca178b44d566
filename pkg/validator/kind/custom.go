package kind

// Custom is a caller-declared kind for validators outside the built-in set,
// such as a postcode pattern or a list of allowed choices. Key and Text are
// meant to be constants of the calling program; neither may be derived from
// the value being validated.
//
//	var InvalidPostcode = kind.Custom{Key: "postcode", Text: "Invalid postcode"}
type Custom struct {
	Key  string
	Text string
}

func (k Custom) Code() string    { return k.Key }
func (Custom) Params() []Param   { return nil }
func (k Custom) Message() string { return k.Text }
func (Custom) sealed()           {}
