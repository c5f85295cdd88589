package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/xhhuango/json"

	"github.com/bcdannyboy/optprice/chart"
	"github.com/bcdannyboy/optprice/models"
	optslack "github.com/bcdannyboy/optprice/slack"
	"github.com/bcdannyboy/optprice/sweep"
	"github.com/bcdannyboy/optprice/tradier"
)

const (
	binomialSteps = 500
	mcSamples     = 1000000
	mcSeed        = 42
	rfr           = 0.05
)

type Scenario struct {
	Name       string               `json:"name"`
	Params     models.PricingParams `json:"params"`
	OptionType models.OptionType    `json:"option_type"`
	Barrier    float64              `json:"barrier,omitempty"`
}

type ScenarioResult struct {
	Scenario     Scenario `json:"scenario"`
	ClosedForm   float64  `json:"closed_form"`
	Binomial     float64  `json:"binomial"`
	American     float64  `json:"american"`
	MonteCarlo   float64  `json:"monte_carlo"`
	MonteCarloSE float64  `json:"monte_carlo_se"`
	DownAndIn    float64  `json:"down_and_in,omitempty"`
	DownAndOut   float64  `json:"down_and_out,omitempty"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %s", err)
	}

	scenarios := []Scenario{
		{
			Name: "OTM 1y call",
			Params: models.PricingParams{
				UnderlyingPrice: 1, Strike: 1.1, RiskFreeRate: rfr,
				TimeToMaturity: 1, Volatility: 0.2,
			},
			OptionType: models.Call,
		},
		{
			Name: "ITM 1y call with barrier at spot",
			Params: models.PricingParams{
				UnderlyingPrice: 1.3, Strike: 1.1, RiskFreeRate: rfr,
				TimeToMaturity: 1, Volatility: 0.2,
			},
			OptionType: models.Call,
			Barrier:    1.3,
		},
		{
			Name: "ATM 6m put with dividends",
			Params: models.PricingParams{
				UnderlyingPrice: 100, Strike: 100, RiskFreeRate: 0.03,
				TimeToMaturity: 0.5, Volatility: 0.3, DividendYield: 0.02,
			},
			OptionType: models.Put,
		},
	}

	if token := os.Getenv("TRADIER_KEY"); token != "" {
		if live, err := liveScenario(token); err != nil {
			log.Printf("Skipping live quote scenario: %s", err)
		} else {
			scenarios = append(scenarios, live)
		}
	}

	results := priceScenarios(scenarios)
	for _, result := range results {
		printResult(result)
	}

	rows, err := sweep.Run(sweep.Config{
		Params: models.PricingParams{
			Strike: 1.1, RiskFreeRate: rfr, TimeToMaturity: 1, Volatility: 0.2,
		},
		OptionType:    models.Call,
		SpotMin:       0.5,
		SpotMax:       2.0,
		SpotSteps:     61,
		BinomialSteps: binomialSteps,
		MCSamples:     100000,
		MCSeed:        mcSeed,
		ShowProgress:  true,
	})
	if err != nil {
		log.Fatalf("Sweep failed: %s", err)
	}

	if err := chart.ComparisonPNG(rows, "comparison.png"); err != nil {
		log.Printf("Error writing comparison chart: %s", err)
	}
	if err := chart.PathsPNG(scenarios[0].Params, 25, 252, mcSeed, "paths.png"); err != nil {
		log.Printf("Error writing paths chart: %s", err)
	}

	writeJSON("results.json", results)
	writeJSON("sweep.json", rows)

	appToken := os.Getenv("SLACK_APP_TOKEN")
	botToken := os.Getenv("SLACK_BOT_TOKEN")
	if appToken != "" && botToken != "" {
		fmt.Println("Starting slack bot...")
		bot := optslack.NewSlackBot(appToken, botToken)
		if err := bot.Start(); err != nil {
			log.Fatalf("Slack bot stopped: %s", err)
		}
	}
}

func priceScenarios(scenarios []Scenario) []ScenarioResult {
	results := make([]ScenarioResult, len(scenarios))

	var wg sync.WaitGroup
	for i, scenario := range scenarios {
		wg.Add(1)
		go func(i int, scenario Scenario) {
			defer wg.Done()

			result, err := priceScenario(scenario)
			if err != nil {
				log.Printf("Error pricing scenario %q: %s", scenario.Name, err)
				return
			}
			results[i] = result
		}(i, scenario)
	}
	wg.Wait()

	return results
}

func priceScenario(scenario Scenario) (ScenarioResult, error) {
	closed, err := models.Vanilla(scenario.Params, scenario.OptionType)
	if err != nil {
		return ScenarioResult{}, err
	}
	european, err := models.Binomial(scenario.Params, scenario.OptionType, models.European, binomialSteps)
	if err != nil {
		return ScenarioResult{}, err
	}
	american, err := models.Binomial(scenario.Params, scenario.OptionType, models.American, binomialSteps)
	if err != nil {
		return ScenarioResult{}, err
	}
	mc, err := models.MonteCarlo(scenario.Params, scenario.OptionType, mcSamples, mcSeed)
	if err != nil {
		return ScenarioResult{}, err
	}

	result := ScenarioResult{
		Scenario:     scenario,
		ClosedForm:   closed,
		Binomial:     european,
		American:     american,
		MonteCarlo:   mc.Price,
		MonteCarloSE: mc.StdError,
	}

	if scenario.Barrier > 0 {
		in, err := models.DownAndInCall(scenario.Params, scenario.Barrier)
		if err != nil {
			return ScenarioResult{}, err
		}
		out, err := models.DownAndOutCall(scenario.Params, scenario.Barrier)
		if err != nil {
			return ScenarioResult{}, err
		}
		result.DownAndIn = in
		result.DownAndOut = out
	}

	return result, nil
}

func liveScenario(token string) (Scenario, error) {
	symbol := os.Getenv("SYMBOL")
	if symbol == "" {
		symbol = "SPY"
	}

	lastPrice, err := tradier.GET_LAST_PRICE(symbol, token)
	if err != nil {
		return Scenario{}, err
	}

	fmt.Printf("Last price for %s: %.2f\n", symbol, lastPrice)

	return Scenario{
		Name: fmt.Sprintf("ATM 30d call on %s", symbol),
		Params: models.PricingParams{
			UnderlyingPrice: lastPrice,
			Strike:          lastPrice,
			RiskFreeRate:    rfr,
			TimeToMaturity:  30.0 / 365.0,
			Volatility:      0.2,
		},
		OptionType: models.Call,
	}, nil
}

func printResult(result ScenarioResult) {
	fmt.Printf("%s (%s)\n", result.Scenario.Name, result.Scenario.OptionType)
	fmt.Printf("  Closed form:          %.6f\n", result.ClosedForm)
	fmt.Printf("  Binomial (N=%d):     %.6f\n", binomialSteps, result.Binomial)
	fmt.Printf("  American (N=%d):     %.6f\n", binomialSteps, result.American)
	fmt.Printf("  Monte Carlo (M=%d): %.6f (std err %.6f)\n", mcSamples, result.MonteCarlo, result.MonteCarloSE)
	if result.Scenario.Barrier > 0 {
		fmt.Printf("  Down-and-in  (H=%.4f): %.6f\n", result.Scenario.Barrier, result.DownAndIn)
		fmt.Printf("  Down-and-out (H=%.4f): %.6f\n", result.Scenario.Barrier, result.DownAndOut)
	}
}

func writeJSON(filename string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		fmt.Printf("Error marshalling %s: %s\n", filename, err.Error())
		return
	}

	err = ioutil.WriteFile(filename, data, 0644)
	if err != nil {
		fmt.Printf("Error writing to file %s: %s\n", filename, err.Error())
		return
	}

	fmt.Printf("Successfully wrote %s\n", filename)
}
