package tradier

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
)

// GET_QUOTE fetches the current quote for a symbol. The pricers themselves do
// no I/O; this exists so callers can price against a live spot.
func GET_QUOTE(Symbol, Token string) (*Quotes, error) {
	apiURL := fmt.Sprintf("https://api.tradier.com/v1/markets/quotes?symbols=%s", Symbol)

	u, _ := url.ParseRequestURI(apiURL)
	urlStr := u.String()

	client := &http.Client{}
	r, _ := http.NewRequest("GET", urlStr, nil)
	r.Header.Add("Authorization", fmt.Sprintf("Bearer %s", Token))
	r.Header.Add("Accept", "application/json")

	resp, err := client.Do(r)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote: %s", err)
	}
	defer resp.Body.Close()

	responseData, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response data: %s", err)
	}

	quotes := &Quotes{}
	err = json.Unmarshal(responseData, quotes)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response data: %s", err.Error())
	}

	return quotes, nil
}

// GET_LAST_PRICE fetches the last traded price for a symbol.
func GET_LAST_PRICE(Symbol, Token string) (float64, error) {
	quotes, err := GET_QUOTE(Symbol, Token)
	if err != nil {
		return 0, err
	}
	if quotes.Quotes.Quote.Last <= 0 {
		return 0, fmt.Errorf("no last price for symbol %s", Symbol)
	}
	return quotes.Quotes.Quote.Last, nil
}
