package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jiaming2012/deribit-viewer/src/eventmodels"
	"github.com/jiaming2012/deribit-viewer/src/eventservices"
	"github.com/jiaming2012/deribit-viewer/src/utils"
)

type RunArgs struct {
	GoEnv       string
	Coin        string
	ExpiryDate  string
	StrikePrice float64
	OptionType  string
	StartDate   string
	EndDate     string
	Interval    string
	Transport   string
}

type RunResult struct {
	InstrumentName eventmodels.InstrumentID
	Pair           eventmodels.ChartSeriesPair
	Summary        *eventservices.ChartSeriesSummary
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/fetch_chart_data/main.go --coin BTC --expiry 2024-12-27 --strike 50000 --option-type call --start 2024-11-27 --end 2024-12-27",
	Short: "Fetch historical prices for a Deribit option contract",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		coin, err := cmd.Flags().GetString("coin")
		if err != nil {
			log.Fatalf("error getting coin: %v", err)
		}

		expiryDate, err := cmd.Flags().GetString("expiry")
		if err != nil {
			log.Fatalf("error getting expiry: %v", err)
		}

		strikePrice, err := cmd.Flags().GetFloat64("strike")
		if err != nil {
			log.Fatalf("error getting strike: %v", err)
		}

		optionType, err := cmd.Flags().GetString("option-type")
		if err != nil {
			log.Fatalf("error getting option-type: %v", err)
		}

		startDate, err := cmd.Flags().GetString("start")
		if err != nil {
			log.Fatalf("error getting start: %v", err)
		}

		endDate, err := cmd.Flags().GetString("end")
		if err != nil {
			log.Fatalf("error getting end: %v", err)
		}

		interval, err := cmd.Flags().GetString("interval")
		if err != nil {
			log.Fatalf("error getting interval: %v", err)
		}

		transport, err := cmd.Flags().GetString("transport")
		if err != nil {
			log.Fatalf("error getting transport: %v", err)
		}

		result, err := Run(RunArgs{
			GoEnv:       goEnv,
			Coin:        coin,
			ExpiryDate:  expiryDate,
			StrikePrice: strikePrice,
			OptionType:  optionType,
			StartDate:   startDate,
			EndDate:     endDate,
			Interval:    interval,
			Transport:   transport,
		})

		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		if result.Pair.IsEmpty() {
			fmt.Println("No data available for the selected contract and date range.")
			return
		}

		fmt.Println(formatSeriesTable(result))
	},
}

func Run(args RunArgs) (RunResult, error) {
	projectsDir := os.Getenv("PROJECTS_DIR")
	if projectsDir == "" {
		log.Fatalf("missing PROJECTS_DIR environment variable")
	}

	if err := utils.InitEnvironmentVariables(projectsDir, args.GoEnv); err != nil {
		log.Fatalf("error loading environment variables: %v", err)
	}

	coin := eventmodels.Coin(strings.ToUpper(args.Coin))
	if err := coin.Validate(); err != nil {
		return RunResult{}, fmt.Errorf("invalid coin: %v", err)
	}

	optionType := eventmodels.OptionType(strings.ToLower(args.OptionType))
	if err := optionType.Validate(); err != nil {
		return RunResult{}, fmt.Errorf("invalid option type: %v", err)
	}

	resolution, err := eventmodels.NewResolutionFromLabel(args.Interval)
	if err != nil {
		resolution = eventmodels.Resolution(args.Interval)
		if validateErr := resolution.Validate(); validateErr != nil {
			return RunResult{}, fmt.Errorf("invalid interval: %v", validateErr)
		}
	}

	expiry, err := utils.ParseDateOnly(args.ExpiryDate)
	if err != nil {
		return RunResult{}, fmt.Errorf("invalid expiry date: %v", err)
	}

	start, err := utils.ParseDateOnly(args.StartDate)
	if err != nil {
		return RunResult{}, fmt.Errorf("invalid start date: %v", err)
	}

	end, err := utils.ParseDateOnly(args.EndDate)
	if err != nil {
		return RunResult{}, fmt.Errorf("invalid end date: %v", err)
	}

	// The window never reaches past today, matching the dashboard's date inputs
	end = utils.GetMinTime(end, time.Now().UTC())

	selection := eventmodels.ContractSelection{
		Coin:        coin,
		ExpiryDate:  expiry,
		StrikePrice: args.StrikePrice,
		OptionType:  optionType,
	}

	instrumentName := eventmodels.NewInstrumentID(selection)

	if description, descErr := instrumentName.Description(); descErr == nil {
		log.Infof("fetching chart data for %s (%s)", instrumentName, description)
	}

	startSec, endSec := utils.DayBounds(start, end)

	baseURL := eventmodels.DefaultDeribitBaseURL
	if url, envErr := utils.GetEnv("DERIBIT_HISTORY_URL"); envErr == nil {
		baseURL = url
	}

	wsURL := eventmodels.DefaultDeribitWSURL
	if url, envErr := utils.GetEnv("DERIBIT_WS_URL"); envErr == nil {
		wsURL = url
	}

	var queryFn eventmodels.ChartDataQueryFunc
	switch args.Transport {
	case "ws":
		queryFn = eventservices.NewWSChartDataQueryFunc(wsURL, 120*time.Second)
	default:
		queryFn = eventservices.NewChartDataQueryFunc(baseURL, 120*time.Second)
	}

	pair, err := eventservices.FetchChartSeriesPair(string(instrumentName), startSec, endSec, resolution, queryFn)
	if err != nil {
		if errors.Is(err, eventmodels.NoChartDataErr) {
			return RunResult{InstrumentName: instrumentName}, nil
		}

		return RunResult{}, fmt.Errorf("failed to fetch chart data: %v", err)
	}

	summary, err := eventservices.NewChartSeriesSummary(pair)
	if err != nil {
		return RunResult{}, fmt.Errorf("failed to summarize chart data: %v", err)
	}

	return RunResult{
		InstrumentName: instrumentName,
		Pair:           pair,
		Summary:        summary,
	}, nil
}

func formatSeriesTable(result RunResult) string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	display.WriteString(fmt.Sprintf("Historical Prices for %s:\n", result.InstrumentName))

	table := tablewriter.NewWriter(display)

	table.SetHeader([]string{"Time", "Close", "Volume"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")

	for i, point := range result.Pair.Prices {
		volume := ""
		if i < len(result.Pair.Volumes) {
			volume = p.Sprintf("%.2f", result.Pair.Volumes[i].Volume)
		}

		timestamp := time.Unix(point.Time, 0).UTC().Format("2006-01-02 15:04")

		table.Append([]string{timestamp, p.Sprintf("%.4f", point.Value), volume})
	}

	table.Render()

	if result.Summary != nil {
		display.WriteString(result.Summary.String())
		display.WriteString("\n")
	}

	return display.String()
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	runCmd.PersistentFlags().String("coin", "BTC", "The underlying coin: BTC, ETH or SOL.")
	runCmd.PersistentFlags().String("expiry", "", "The contract expiry date, formatted yyyy-mm-dd.")
	runCmd.PersistentFlags().Float64("strike", 0, "The strike price.")
	runCmd.PersistentFlags().String("option-type", "call", "The option type: call or put.")
	runCmd.PersistentFlags().String("start", "", "The start of the query window, formatted yyyy-mm-dd.")
	runCmd.PersistentFlags().String("end", "", "The end of the query window, formatted yyyy-mm-dd.")
	runCmd.PersistentFlags().String("interval", "Daily", "The chart interval: Daily, Hourly or 15-Minute.")
	runCmd.PersistentFlags().String("transport", "http", "Market data transport: http or ws.")

	runCmd.MarkPersistentFlagRequired("expiry")
	runCmd.MarkPersistentFlagRequired("start")
	runCmd.MarkPersistentFlagRequired("end")

	runCmd.Execute()
}
