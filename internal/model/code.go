package model

// SecurityCode is a JPX security identifier. The API works with a
// 5-character form (canonical code plus a trailing filler character); all
// user-facing output and deduplication uses the 4-character canonical form.
type SecurityCode string

// codeFiller pads a canonical code into API form. Observed data always pads
// with a single '0'; the API's actual code-assignment rules are not
// documented, so this is an assumption to validate, not an invariant.
const codeFiller = '0'

// APIForm returns the 5-character form expected by the API. A code that is
// already 5 characters is returned unchanged. Malformed input (any other
// length) passes through as-is: upstream data is inconsistent and the
// defensive policy is to leave what we do not recognize alone.
func (c SecurityCode) APIForm() SecurityCode {
	if len(c) == 4 {
		return c + SecurityCode(codeFiller)
	}
	return c
}

// CanonicalForm returns the 4-character user-facing form, stripping the
// trailing filler from a 5-character code. Anything else passes through
// unchanged.
func (c SecurityCode) CanonicalForm() SecurityCode {
	if len(c) == 5 && c[4] == codeFiller {
		return c[:4]
	}
	return c
}

func (c SecurityCode) String() string {
	return string(c)
}
