package workshop_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/juvelir/workshop/internal/core/workshop"
)

func TestDiscountFor(t *testing.T) {
	tests := []struct {
		name  string
		total string
		want  int
	}{
		{name: "zero", total: "0", want: 0},
		{name: "below first tier", total: "24999.99", want: 0},
		{name: "first tier boundary", total: "25000", want: 5},
		{name: "inside first tier", total: "49999.99", want: 5},
		{name: "second tier boundary", total: "50000", want: 10},
		{name: "inside second tier", total: "99999.99", want: 10},
		{name: "third tier boundary", total: "100000", want: 15},
		{name: "far above third tier", total: "1000000", want: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := decimal.NewFromString(tt.total)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, workshop.DiscountFor(total))
		})
	}
}
