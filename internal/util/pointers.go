package util

import (
	"time"

	"github.com/shopspring/decimal"
)

func DecimalPointer(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func TimePointer(t time.Time) *time.Time {
	return &t
}

func StrPointer(s string) *string {
	return &s
}

func Int64Pointer(i int64) *int64 {
	return &i
}
