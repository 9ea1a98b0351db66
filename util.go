package whisparg

import (
	"encoding/base64"
)

// Base64String is a byte slice parsed from a standard (RFC 4648)
// base64-encoded token. It is a ConvertFunc-ready example of a custom value
// type:
//
//	arg, err := whisparg.ResolveFunc(os.Args,
//		whisparg.New[whisparg.Base64String]("secret"),
//		whisparg.ParseBase64String)
type Base64String []byte

// ParseBase64String is a ConvertFunc for Base64String.
func ParseBase64String(s string) (Base64String, error) {
	enc := base64.StdEncoding
	dbuf := make([]byte, enc.DecodedLen(len(s)))
	n, err := enc.Decode(dbuf, []byte(s))
	if err != nil {
		return nil, err
	}
	return Base64String(dbuf[:n]), nil
}
