package market

// InstrumentMeta describes the quoting conventions of an instrument. Point
// is the smallest quoted price increment; every "points"/"pips" threshold in
// the signal configuration is a multiple of it.
type InstrumentMeta struct {
	Name          string
	BaseCurrency  string
	QuoteCurrency string
	Point         float64
}

var Instruments = map[string]InstrumentMeta{
	"EUR_USD": {
		Name:          "EUR_USD",
		BaseCurrency:  "EUR",
		QuoteCurrency: "USD",
		Point:         0.00001,
	},
	"GBP_USD": {
		Name:          "GBP_USD",
		BaseCurrency:  "GBP",
		QuoteCurrency: "USD",
		Point:         0.00001,
	},
	"USD_JPY": {
		Name:          "USD_JPY",
		BaseCurrency:  "USD",
		QuoteCurrency: "JPY",
		Point:         0.001,
	},
}
