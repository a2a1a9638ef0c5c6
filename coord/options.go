package coord

import (
	"fmt"

	"github.com/arloliu/geoprint/errs"
	"github.com/arloliu/geoprint/internal/options"
)

// DefaultPrecision is the precision of a Formatter built without WithPrecision.
const DefaultPrecision uint = 15

// NonFinitePolicy selects what a Formatter does with NaN and infinities.
type NonFinitePolicy uint8

const (
	// NonFiniteToken renders "nan", "inf" and "-inf".
	NonFiniteToken NonFinitePolicy = 0x1
	// NonFiniteError rejects non-finite values with errs.ErrNotFinite.
	NonFiniteError NonFinitePolicy = 0x2
)

func (p NonFinitePolicy) String() string {
	switch p {
	case NonFiniteToken:
		return "Token"
	case NonFiniteError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Formatter binds a precision and a non-finite policy so callers rendering
// many coordinates do not repeat them.
//
// A Formatter is immutable after construction and safe for concurrent use.
type Formatter struct {
	precision uint
	nonFinite NonFinitePolicy
}

// FormatterOption configures a Formatter.
type FormatterOption = options.Option[*Formatter]

// WithPrecision sets the maximum number of fractional digits.
func WithPrecision(precision uint) FormatterOption {
	return options.NoError(func(f *Formatter) {
		f.precision = precision
	})
}

// WithNonFinite sets the non-finite policy.
func WithNonFinite(policy NonFinitePolicy) FormatterOption {
	return options.New(func(f *Formatter) error {
		switch policy {
		case NonFiniteToken, NonFiniteError:
			f.nonFinite = policy
			return nil
		default:
			return fmt.Errorf("%w: %d", errs.ErrInvalidNonFinitePolicy, policy)
		}
	})
}

// NewFormatter creates a Formatter. Without options it uses DefaultPrecision
// and NonFiniteToken.
func NewFormatter(opts ...FormatterOption) (*Formatter, error) {
	f := &Formatter{
		precision: DefaultPrecision,
		nonFinite: NonFiniteToken,
	}

	if err := options.Apply(f, opts...); err != nil {
		return nil, err
	}

	return f, nil
}

// Precision returns the configured precision.
func (f *Formatter) Precision() uint {
	return f.precision
}

// NonFinite returns the configured non-finite policy.
func (f *Formatter) NonFinite() NonFinitePolicy {
	return f.nonFinite
}

// Append appends the rendering of v to dst.
//
// Returns errs.ErrNotFinite, with dst unchanged, when v is NaN or infinite and
// the policy is NonFiniteError.
func (f *Formatter) Append(dst []byte, v float64) ([]byte, error) {
	if f.nonFinite == NonFiniteError && !isFinite(v) {
		return dst, fmt.Errorf("%w: %v", errs.ErrNotFinite, v)
	}

	return Append(dst, v, f.precision), nil
}

// Format renders v as a string.
func (f *Formatter) Format(v float64) (string, error) {
	var buf [32]byte
	out, err := f.Append(buf[:0], v)
	if err != nil {
		return "", err
	}

	return string(out), nil
}
