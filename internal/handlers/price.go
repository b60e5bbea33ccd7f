package handlers

import (
	"fmt"
	"strconv"
)

// priceCol normalizes DECIMAL price columns to a two-decimal string. MySQL
// hands the value over as []byte("80.00"), while pgx may surface the numeric
// as float64(80); both must render identically in the price list.
type priceCol string

func (p *priceCol) Scan(v any) error {
	switch val := v.(type) {
	case float64:
		*p = priceCol(strconv.FormatFloat(val, 'f', 2, 64))
	case int64:
		*p = priceCol(strconv.FormatInt(val, 10) + ".00")
	case []byte:
		return p.parse(string(val))
	case string:
		return p.parse(val)
	default:
		return fmt.Errorf("cannot scan %T into price column", v)
	}
	return nil
}

func (p *priceCol) parse(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("malformed price %q: %w", s, err)
	}
	*p = priceCol(strconv.FormatFloat(f, 'f', 2, 64))
	return nil
}
