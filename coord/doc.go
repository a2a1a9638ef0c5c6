// Package coord formats float64 coordinates as the shortest decimal text that
// reads back to the same value, optionally capped to a number of fractional
// digits.
//
// # Rules
//
//  1. The shortest round-trip digits are computed first (strconv's Ryū
//     implementation). 0.3 is "0.3", never "0.29999999999999999".
//  2. Values with magnitude below 1e-8 or above 1e15 use scientific notation,
//     everything else (including zero) uses fixed notation. The notation is
//     chosen from the input before any rounding, so Format(9.96e-9, 0) is
//     "1e-08" while Format(1e-8, 8) is "0.00000001".
//  3. precision caps the digits after the decimal point of the chosen notation.
//     When the shortest form already fits, it is returned unchanged; trailing
//     zeros are never added.
//  4. When it does not fit, the shortest digits themselves are rounded half to
//     even at that many digits, never a longer expansion of the binary value:
//     Format(2.675, 2) is "2.68" because the shortest form is 2.675. Trailing
//     zeros are trimmed and a result of zero carries no sign.
//
// Raising the precision past MinPrecision(v) never changes the output:
//
//	coord.Format(22.200000000000003, 13) // "22.2"
//	coord.Format(22.200000000000003, 15) // "22.200000000000003"
//	coord.Format(22.200000000000003, 17) // "22.200000000000003"
//
// # Non-finite values
//
// Format and Append render NaN and infinities as "nan", "inf" and "-inf",
// which strconv.ParseFloat accepts. A Formatter built with
// WithNonFinite(NonFiniteError) rejects them with errs.ErrNotFinite instead.
//
// # Avoiding copies
//
// Append writes straight into the caller's buffer. Canonicalize takes text
// that is already rendered and only allocates when the text is not canonical;
// the returned Text says whether it borrowed the input or owns a new buffer.
//
// All functions are pure and safe for concurrent use.
package coord
