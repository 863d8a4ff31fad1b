package utils

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
)

var ErrInvalidNumber = errors.New("invalid number")

// ParseFloatQuery lê um parâmetro numérico da query string. Quando o parâmetro não é
// informado, retorna o valor padrão.
func ParseFloatQuery(r *http.Request, name string, defaultValue float64) (float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, ErrInvalidNumber
	}

	return value, nil
}
