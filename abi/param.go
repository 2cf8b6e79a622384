package abi

import "github.com/api3dao/airnode-abi/word"

// Param is an Airnode ABI parameter: one of the nine shapes enumerated
// in the wire format, each carrying a name. Go has no closed sum type,
// so Param is modeled the way the teacher models its own tagged wire
// data (see ion.Datum's Type-discriminated accessors): an interface
// implemented by a fixed set of concrete struct types, with
// constructors that return the interface.
type Param interface {
	// Name returns the parameter's name.
	Name() string
	// SchemaChar returns the schema character for this parameter's
	// variant, one of {'a', 'b', 'B', 'i', 'S', 'u'}.
	SchemaChar() byte
	// IsFixedSize reports whether the parameter's value fits in a
	// single word. False only for Bytes and String.
	IsFixedSize() bool

	// fixedChunks returns the two words this parameter contributes to
	// the fixed region: a name word and a value/placeholder word.
	fixedChunks() ([2]word.Word, error)
	// dynamicChunks returns the words this parameter contributes to
	// the tail, or nil for fixed-size parameters.
	dynamicChunks() []word.Word
}

func nameWord(name string) (word.Word, error) {
	w, err := word.ShortStringToWord(name)
	if err != nil {
		return w, ErrStringTooLong
	}
	return w, nil
}

// AddressParam carries a 160-bit EVM address.
type AddressParam struct {
	ParamName string
	Value     word.Address
}

// NewAddress returns a Param carrying a as a 160-bit address.
func NewAddress(name string, a word.Address) Param {
	return AddressParam{ParamName: name, Value: a}
}

func (p AddressParam) Name() string     { return p.ParamName }
func (p AddressParam) SchemaChar() byte { return 'a' }
func (p AddressParam) IsFixedSize() bool { return true }

func (p AddressParam) fixedChunks() ([2]word.Word, error) {
	n, err := nameWord(p.ParamName)
	if err != nil {
		return [2]word.Word{}, err
	}
	return [2]word.Word{n, word.AddressToWord(p.Value)}, nil
}

func (p AddressParam) dynamicChunks() []word.Word { return nil }

// BoolParam carries a boolean, overloaded onto the 'b' schema
// character as the UTF-8 short string "true"/"false".
type BoolParam struct {
	ParamName string
	Value     bool
}

// NewBool returns a Param carrying v as a boolean.
func NewBool(name string, v bool) Param {
	return BoolParam{ParamName: name, Value: v}
}

func (p BoolParam) Name() string      { return p.ParamName }
func (p BoolParam) SchemaChar() byte  { return 'b' }
func (p BoolParam) IsFixedSize() bool { return true }

func (p BoolParam) fixedChunks() ([2]word.Word, error) {
	n, err := nameWord(p.ParamName)
	if err != nil {
		return [2]word.Word{}, err
	}
	s := "false"
	if p.Value {
		s = "true"
	}
	v, err := word.ShortStringToWord(s)
	if err != nil {
		return [2]word.Word{}, err
	}
	return [2]word.Word{n, v}, nil
}

func (p BoolParam) dynamicChunks() []word.Word { return nil }

// BytesParam carries an arbitrary-length byte sequence.
type BytesParam struct {
	ParamName string
	Value     []byte
}

// NewBytes returns a Param carrying v as a dynamically sized byte
// sequence.
func NewBytes(name string, v []byte) Param {
	return BytesParam{ParamName: name, Value: v}
}

func (p BytesParam) Name() string      { return p.ParamName }
func (p BytesParam) SchemaChar() byte  { return 'B' }
func (p BytesParam) IsFixedSize() bool { return false }

func (p BytesParam) fixedChunks() ([2]word.Word, error) {
	n, err := nameWord(p.ParamName)
	if err != nil {
		return [2]word.Word{}, err
	}
	// second word is a placeholder, rewritten by Encode with the
	// dynamic-region offset.
	return [2]word.Word{n, word.Word{}}, nil
}

func (p BytesParam) dynamicChunks() []word.Word {
	out := make([]word.Word, 0, 1+len(p.Value)/32+1)
	out = append(out, word.Uint64ToWord(uint64(len(p.Value))))
	out = append(out, word.BytesToWordChunks(p.Value)...)
	return out
}

// Bytes32Param carries a raw 32-byte value with no further
// interpretation.
type Bytes32Param struct {
	ParamName string
	Value     word.Word
}

// NewBytes32 returns a Param carrying the raw word v.
func NewBytes32(name string, v word.Word) Param {
	return Bytes32Param{ParamName: name, Value: v}
}

func (p Bytes32Param) Name() string      { return p.ParamName }
func (p Bytes32Param) SchemaChar() byte  { return 'b' }
func (p Bytes32Param) IsFixedSize() bool { return true }

func (p Bytes32Param) fixedChunks() ([2]word.Word, error) {
	n, err := nameWord(p.ParamName)
	if err != nil {
		return [2]word.Word{}, err
	}
	return [2]word.Word{n, p.Value}, nil
}

func (p Bytes32Param) dynamicChunks() []word.Word { return nil }

// DateParam carries a calendar date, overloaded onto the 'b' schema
// character as the UTF-8 short string "YYYY-MM-DD".
type DateParam struct {
	ParamName string
	Year      int32
	Month     int
	Day       int
}

// NewDate returns a Param carrying the given date.
func NewDate(name string, year int32, month, day int) Param {
	return DateParam{ParamName: name, Year: year, Month: month, Day: day}
}

func (p DateParam) Name() string      { return p.ParamName }
func (p DateParam) SchemaChar() byte  { return 'b' }
func (p DateParam) IsFixedSize() bool { return true }

func (p DateParam) fixedChunks() ([2]word.Word, error) {
	n, err := nameWord(p.ParamName)
	if err != nil {
		return [2]word.Word{}, err
	}
	switch {
	case p.Year < 0 || p.Year > 9999:
		return [2]word.Word{}, ErrInvalidYear
	case p.Month < 1 || p.Month > 12:
		return [2]word.Word{}, ErrInvalidMonth
	case p.Day < 1 || p.Day > 31:
		return [2]word.Word{}, ErrInvalidDay
	}
	v, err := word.ShortStringToWord(word.FormatDate(p.Year, p.Month, p.Day))
	if err != nil {
		// unreachable: FormatDate always yields exactly 10 bytes
		return [2]word.Word{}, err
	}
	return [2]word.Word{n, v}, nil
}

func (p DateParam) dynamicChunks() []word.Word { return nil }

// Int256Param carries a signed 256-bit integer, stored as a magnitude
// plus an explicit sign since there is no native signed 256-bit type.
type Int256Param struct {
	ParamName string
	Value     word.Word // magnitude
	Negative  bool
}

// NewInt256 returns a Param carrying value as a signed 256-bit integer
// with the given magnitude and sign.
func NewInt256(name string, magnitude word.Word, negative bool) Param {
	return Int256Param{ParamName: name, Value: magnitude, Negative: negative}
}

func (p Int256Param) Name() string      { return p.ParamName }
func (p Int256Param) SchemaChar() byte  { return 'i' }
func (p Int256Param) IsFixedSize() bool { return true }

func (p Int256Param) fixedChunks() ([2]word.Word, error) {
	n, err := nameWord(p.ParamName)
	if err != nil {
		return [2]word.Word{}, err
	}
	return [2]word.Word{n, word.IntToWord(p.Value, p.Negative)}, nil
}

func (p Int256Param) dynamicChunks() []word.Word { return nil }

// StringParam carries an arbitrary-length UTF-8 string.
type StringParam struct {
	ParamName string
	Value     string
}

// NewString returns a Param carrying v as a dynamically sized UTF-8
// string.
func NewString(name, v string) Param {
	return StringParam{ParamName: name, Value: v}
}

func (p StringParam) Name() string      { return p.ParamName }
func (p StringParam) SchemaChar() byte  { return 'S' }
func (p StringParam) IsFixedSize() bool { return false }

func (p StringParam) fixedChunks() ([2]word.Word, error) {
	n, err := nameWord(p.ParamName)
	if err != nil {
		return [2]word.Word{}, err
	}
	return [2]word.Word{n, word.Word{}}, nil
}

func (p StringParam) dynamicChunks() []word.Word {
	b := []byte(p.Value)
	out := make([]word.Word, 0, 1+len(b)/32+1)
	out = append(out, word.Uint64ToWord(uint64(len(b))))
	out = append(out, word.BytesToWordChunks(b)...)
	return out
}

// String32Param carries a UTF-8 string of at most 31 bytes, overloaded
// onto the 'b' schema character.
type String32Param struct {
	ParamName string
	Value     string
}

// NewString32 returns a Param carrying v as a fixed-size UTF-8 string
// of at most word.MaxShortStringLen bytes.
func NewString32(name, v string) Param {
	return String32Param{ParamName: name, Value: v}
}

func (p String32Param) Name() string      { return p.ParamName }
func (p String32Param) SchemaChar() byte  { return 'b' }
func (p String32Param) IsFixedSize() bool { return true }

func (p String32Param) fixedChunks() ([2]word.Word, error) {
	n, err := nameWord(p.ParamName)
	if err != nil {
		return [2]word.Word{}, err
	}
	v, err := word.ShortStringToWord(p.Value)
	if err != nil {
		return [2]word.Word{}, ErrStringTooLong
	}
	return [2]word.Word{n, v}, nil
}

func (p String32Param) dynamicChunks() []word.Word { return nil }

// UintParam carries an unsigned 256-bit integer.
type UintParam struct {
	ParamName string
	Value     word.Word
}

// NewUint256 returns a Param carrying v as an unsigned 256-bit integer.
func NewUint256(name string, v word.Word) Param {
	return UintParam{ParamName: name, Value: v}
}

func (p UintParam) Name() string      { return p.ParamName }
func (p UintParam) SchemaChar() byte  { return 'u' }
func (p UintParam) IsFixedSize() bool { return true }

func (p UintParam) fixedChunks() ([2]word.Word, error) {
	n, err := nameWord(p.ParamName)
	if err != nil {
		return [2]word.Word{}, err
	}
	return [2]word.Word{n, p.Value}, nil
}

func (p UintParam) dynamicChunks() []word.Word { return nil }
