// Package abi implements the Airnode ABI codec: a compact, versioned
// binary encoding for named, typed parameter sets exchanged between
// off-chain oracles and on-chain contracts. See the package-level
// functions Encode and Decode for the two halves of the codec.
package abi

// Version is the single supported schema version character.
const Version byte = '1'

// MaxParams is the maximum number of parameters a single ABI may carry.
const MaxParams = 31

// ABI is an immutable, ordered set of named, typed parameters together
// with the schema string that describes their shapes. Construct one
// with New, Only, or None; the schema field is always re-derived from
// params and never set directly.
type ABI struct {
	Version byte
	Schema  string
	Params  []Param
}

// New builds an ABI from params, deriving its schema string.
func New(params []Param) ABI {
	return ABI{
		Version: Version,
		Schema:  schemaOf(params),
		Params:  params,
	}
}

// None returns an ABI with no parameters and schema "1".
func None() ABI {
	return New(nil)
}

// Only returns an ABI containing exactly one parameter.
func Only(p Param) ABI {
	return New([]Param{p})
}

// Lookup returns the first parameter named key, or (nil, false) if no
// parameter has that name. Lookup is a linear scan; the codec never
// builds an index, since Airnode ABI messages carry at most MaxParams
// parameters.
func (a ABI) Lookup(key string) (Param, bool) {
	for _, p := range a.Params {
		if p.Name() == key {
			return p, true
		}
	}
	return nil, false
}

func schemaOf(params []Param) string {
	b := make([]byte, 1, 1+len(params))
	b[0] = Version
	for _, p := range params {
		b = append(b, p.SchemaChar())
	}
	return string(b)
}
