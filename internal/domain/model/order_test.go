package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestOrderAmount(t *testing.T) {
	dec, err := primitive.ParseDecimal128("25.75")
	require.NoError(t, err)

	cases := []struct {
		name  string
		total interface{}
		want  float64
	}{
		{"decimal128", dec, 25.75},
		{"float64", float64(99.5), 99.5},
		{"float32", float32(2), 2},
		{"int", 7, 7},
		{"int32", int32(10), 10},
		{"int64", int64(40), 40},
		{"numeric string", "12.5", 12.5},
		{"non-numeric string", "bad", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := Order{Total: tc.total}
			assert.Equal(t, tc.want, order.Amount())
		})
	}
}
