// Package numconv converts integers to text in any radix.
//
// The radix is not a number but an Alphabet: an ordered set of digit
// characters whose length is the radix. One routine therefore serves
// decimal, hexadecimal in either case, and arbitrary bases:
//
//	numconv.FormatUint32(255, numconv.HexUpper)   // "FF"
//	numconv.FormatInt32(-42, numconv.Decimal)     // "-42"
//	numconv.FormatUint64(5, "01")                  // "101"
//
// Conversion produces digits least-significant-first into a fixed scratch
// array and reverses them in place, so the Append variants never allocate
// beyond growing dst. A zero value renders as the alphabet's first digit.
// An alphabet with fewer than two digits cannot form a radix and produces
// no output.
package numconv
