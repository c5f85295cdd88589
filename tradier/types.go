package tradier

// Quotes mirrors the Tradier /v1/markets/quotes response for a single symbol.
type Quotes struct {
	Quotes struct {
		Quote Quote `json:"quote"`
	} `json:"quotes"`
}

type Quote struct {
	Symbol           string  `json:"symbol"`
	Description      string  `json:"description"`
	Last             float64 `json:"last"`
	Bid              float64 `json:"bid"`
	Ask              float64 `json:"ask"`
	Volume           int     `json:"volume"`
	PrevClose        float64 `json:"prevclose"`
	Week52High       float64 `json:"week_52_high"`
	Week52Low        float64 `json:"week_52_low"`
	TradeDate        int64   `json:"trade_date"`
	ExchangeCode     string  `json:"exch"`
	Type             string  `json:"type"`
	AverageVolume    int     `json:"average_volume"`
	LastVolume       int     `json:"last_volume"`
	Change           float64 `json:"change"`
	ChangePercentage float64 `json:"change_percentage"`
}
