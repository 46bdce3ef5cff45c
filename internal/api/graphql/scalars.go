package graphql

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/feral-file/ff-tipping-ledger/internal/domain"
)

// BigInt scalar type for ledger amounts
type BigInt struct {
	*big.Int
}

// MarshalGQL implements graphql.Marshaler for BigInt
func (b BigInt) MarshalGQL(w io.Writer) {
	if b.Int == nil {
		_, _ = io.WriteString(w, `"0"`)
		return
	}
	_, _ = io.WriteString(w, strconv.Quote(b.String()))
}

// UnmarshalGQL implements graphql.Unmarshaler for BigInt
func (b *BigInt) UnmarshalGQL(v interface{}) error {
	var raw string
	switch v := v.(type) {
	case string:
		raw = v
	case json.Number:
		raw = v.String()
	case int:
		raw = strconv.Itoa(v)
	case int64:
		raw = strconv.FormatInt(v, 10)
	default:
		return fmt.Errorf("%w: cannot unmarshal %T to BigInt", domain.ErrInvalidArgument, v)
	}

	amount, err := domain.ParseAmount(raw)
	if err != nil {
		return err
	}
	b.Int = amount
	return nil
}

// Uint64 scalar type for unsigned 64-bit integers
type Uint64 uint64

// MarshalGQL implements graphql.Marshaler for Uint64
func (u Uint64) MarshalGQL(w io.Writer) {
	// Write as string to avoid JavaScript number precision issues
	_, _ = io.WriteString(w, strconv.Quote(strconv.FormatUint(uint64(u), 10)))
}

// UnmarshalGQL implements graphql.Unmarshaler for Uint64
func (u *Uint64) UnmarshalGQL(v interface{}) error {
	switch v := v.(type) {
	case string:
		val, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: cannot parse %q as uint64", domain.ErrInvalidArgument, v)
		}
		*u = Uint64(val)
		return nil
	case json.Number:
		return u.UnmarshalGQL(v.String())
	case int:
		if v < 0 {
			return fmt.Errorf("%w: uint64 cannot be negative: %d", domain.ErrInvalidArgument, v)
		}
		*u = Uint64(v)
		return nil
	case int64:
		if v < 0 {
			return fmt.Errorf("%w: uint64 cannot be negative: %d", domain.ErrInvalidArgument, v)
		}
		*u = Uint64(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot unmarshal %T to Uint64", domain.ErrInvalidArgument, v)
	}
}
