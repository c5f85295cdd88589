package optslack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"

	"github.com/bcdannyboy/optprice/models"
)

const (
	priceBinomialSteps = 500
	priceMCSamples     = 100000
)

type PriceHandler struct{}

func NewPriceHandler() *PriceHandler {
	return &PriceHandler{}
}

func (h *PriceHandler) HandleCommand(evt *socketmode.Event, client *socketmode.Client) error {
	data := evt.Data.(slack.SlashCommand)
	args := strings.Fields(data.Text)

	if len(args) != 7 {
		_, _, err := client.PostMessage(data.ChannelID,
			slack.MsgOptionText("Invalid number of arguments. Usage: /price <call|put> <spot> <strike> <rate> <maturity> <vol> <yield>", false))
		return err
	}

	optionType := models.OptionType(args[0])
	if optionType != models.Call && optionType != models.Put {
		_, _, err := client.PostMessage(data.ChannelID,
			slack.MsgOptionText(fmt.Sprintf("Unknown option type %q, expected call or put", args[0]), false))
		return err
	}

	spot, _ := strconv.ParseFloat(args[1], 64)
	strike, _ := strconv.ParseFloat(args[2], 64)
	rate, _ := strconv.ParseFloat(args[3], 64)
	maturity, _ := strconv.ParseFloat(args[4], 64)
	vol, _ := strconv.ParseFloat(args[5], 64)
	yield, _ := strconv.ParseFloat(args[6], 64)

	params := models.PricingParams{
		UnderlyingPrice: spot,
		Strike:          strike,
		RiskFreeRate:    rate,
		TimeToMaturity:  maturity,
		Volatility:      vol,
		DividendYield:   yield,
	}

	_, _, err := client.PostMessage(data.ChannelID,
		slack.MsgOptionText(priceSummary(params, optionType), false))
	return err
}

func priceSummary(params models.PricingParams, optionType models.OptionType) string {
	closed, err := models.Vanilla(params, optionType)
	if err != nil {
		return fmt.Sprintf("Pricing failed: %s", err.Error())
	}

	tree, err := models.Binomial(params, optionType, models.European, priceBinomialSteps)
	if err != nil {
		return fmt.Sprintf("Pricing failed: %s", err.Error())
	}

	mc, err := models.MonteCarlo(params, optionType, priceMCSamples, 0)
	if err != nil {
		return fmt.Sprintf("Pricing failed: %s", err.Error())
	}

	return fmt.Sprintf("European %s (S=%.4f X=%.4f r=%.4f T=%.4f vol=%.4f q=%.4f)\n"+
		"Closed form: %.6f\n"+
		"Binomial (N=%d): %.6f\n"+
		"Monte Carlo (M=%d): %.6f (std err %.6f)",
		optionType, params.UnderlyingPrice, params.Strike, params.RiskFreeRate,
		params.TimeToMaturity, params.Volatility, params.DividendYield,
		closed, priceBinomialSteps, tree, priceMCSamples, mc.Price, mc.StdError)
}
