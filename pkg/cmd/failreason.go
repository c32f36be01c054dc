package cmd

// FailReason tells why an argument could not be resolved.
type FailReason int

const (
	// None is carried by every present Optional.
	None FailReason = iota
	// NoMoreTokens means the argument list was already empty.
	NoMoreTokens
	// ParsedNull means the resolver ran but produced no value.
	ParsedNull
	// ParsedNotType means the resolver rejected the token.
	ParsedNotType
	// ResolverNotFound means no resolver is registered for the requested kind.
	ResolverNotFound
)

var failReasonNames = map[FailReason]string{
	None:             "NONE",
	NoMoreTokens:     "NO_MORE_TOKENS",
	ParsedNull:       "PARSED_NULL",
	ParsedNotType:    "PARSED_NOT_TYPE",
	ResolverNotFound: "RESOLVER_NOT_FOUND",
}

func (r FailReason) String() string {
	if name, ok := failReasonNames[r]; ok {
		return name
	}
	return "UNKNOWN"
}
