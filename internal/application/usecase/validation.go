package usecase

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/btp-connect-api/internal/domain"
)

func required(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", invalidRequired(field)
	}
	return v, nil
}

func nonNegative(field string, d *decimal.Decimal) error {
	if d != nil && d.IsNegative() {
		return domain.Invalid(field, "no puede ser negativo")
	}
	return nil
}

func orDefault(v *string, def string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return def
	}
	return *v
}

func decimalOr(v *decimal.Decimal, def decimal.Decimal) decimal.Decimal {
	if v == nil {
		return def
	}
	return *v
}

// blankToNil trata "" como ausente en referencias opcionales (stId).
func blankToNil(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	return v
}
