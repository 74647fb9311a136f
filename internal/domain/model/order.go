package model

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is an order placed within an event. Orders are read-only aggregate
// input for the admin overview; the total is kept untyped because legacy
// documents store it as int, double or string.
type Order struct {
	ID       string      `bson:"_id" json:"id"`
	EventID  string      `bson:"eventId" json:"eventId"`
	Total    interface{} `bson:"total" json:"total"`
	IsReturn bool        `bson:"isReturn" json:"isReturn"`
}

// Amount coerces the stored total to a float64. Numeric BSON types convert
// directly, numeric strings are parsed, anything else counts as zero.
func (o *Order) Amount() float64 {
	switch v := o.Total.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case primitive.Decimal128:
		f, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
