package abi

import (
	"encoding/hex"
	"fmt"
)

// String implements fmt.Stringer as "<char>(<name>=<value>)", for
// debug printing only; it is not part of the wire format.
func (p AddressParam) String() string { return fmt.Sprintf("%c(%s=%x)", p.SchemaChar(), p.Name(), p.Value) }
func (p BoolParam) String() string    { return fmt.Sprintf("%c(%s=%t)", p.SchemaChar(), p.Name(), p.Value) }
func (p BytesParam) String() string {
	return fmt.Sprintf("%c(%s=%s)", p.SchemaChar(), p.Name(), hex.EncodeToString(p.Value))
}
func (p Bytes32Param) String() string {
	return fmt.Sprintf("%c(%s=%s)", p.SchemaChar(), p.Name(), hex.EncodeToString(p.Value[:]))
}
func (p DateParam) String() string {
	return fmt.Sprintf("%c(%s=%04d-%02d-%02d)", p.SchemaChar(), p.Name(), p.Year, p.Month, p.Day)
}
func (p Int256Param) String() string {
	sign := ""
	if p.Negative {
		sign = "-"
	}
	return fmt.Sprintf("%c(%s=%s%s)", p.SchemaChar(), p.Name(), sign, hex.EncodeToString(p.Value[:]))
}
func (p StringParam) String() string   { return fmt.Sprintf("%c(%s=%s)", p.SchemaChar(), p.Name(), p.Value) }
func (p String32Param) String() string { return fmt.Sprintf("%c(%s=%s)", p.SchemaChar(), p.Name(), p.Value) }
func (p UintParam) String() string {
	return fmt.Sprintf("%c(%s=%s)", p.SchemaChar(), p.Name(), hex.EncodeToString(p.Value[:]))
}
