package analyzing

import (
	"errors"
	"fmt"
)

var (
	ErrPriceChangeOutOfRange = errors.New("price change out of range")
	ErrDatasetUnavailable    = errors.New("dataset unavailable")
)

// PriceChangeError informa o valor rejeitado e os limites aceitos
type PriceChangeError struct {
	Value float64
	Min   float64
	Max   float64
}

func (e *PriceChangeError) Error() string {
	return fmt.Sprintf("%s: %v fora do intervalo [%v, %v]", ErrPriceChangeOutOfRange.Error(), e.Value, e.Min, e.Max)
}

func (e *PriceChangeError) Unwrap() error {
	return ErrPriceChangeOutOfRange
}
