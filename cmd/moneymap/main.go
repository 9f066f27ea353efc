// Command moneymap is a terminal client for the MoneyMap API. It drives the
// client caches the same way the web dashboard does: list and mutate records
// and investments, and render spending charts from the cached set.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"moneymap/internal/charts"
	"moneymap/internal/client"
	"moneymap/internal/config"
	"moneymap/internal/logger"
	"moneymap/internal/views"
)

// consoleNotifier prints mutation outcomes to the terminal.
type consoleNotifier struct{}

func (consoleNotifier) Success(message string) { fmt.Println(message) }
func (consoleNotifier) Error(message string)   { fmt.Fprintln(os.Stderr, message) }

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func usage() error {
	return fmt.Errorf(`usage: moneymap -user <id> [-api <url>] <command>

commands:
  records list
  records add -desc <text> -amount <n> -category <c> -payment <p> [-date <YYYY-MM-DD>]
  records update -id <id> -desc <text> -amount <n> -category <c> -payment <p> [-date <YYYY-MM-DD>]
  records delete -id <id>
  investments list
  investments add -desc <text> -amount <n> -firm <f> -start <YYYY-MM-DD> -end <YYYY-MM-DD>
  investments delete -id <id>
  chart -type <category|payment|daily> [-out <file.png>]`)
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	userID := flag.String("user", "", "user ID (identity provider subject)")
	apiURL := flag.String("api", cfg.APIBaseURL, "API base URL")
	token := flag.String("token", "", "bearer token (when the server verifies identity)")
	flag.Parse()

	if *userID == "" || flag.NArg() < 1 {
		return usage()
	}

	api := client.NewAPI(*apiURL)
	if *token != "" {
		api.SetToken(*token)
	}
	notifier := consoleNotifier{}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	switch flag.Arg(0) {
	case "records":
		return runRecords(ctx, api, notifier, *userID, flag.Args()[1:])
	case "investments":
		return runInvestments(ctx, api, notifier, *userID, flag.Args()[1:])
	case "chart":
		return runChart(ctx, api, notifier, *userID, flag.Args()[1:])
	default:
		return usage()
	}
}

func runRecords(ctx context.Context, api *client.API, notifier client.Notifier, userID string, args []string) error {
	if len(args) < 1 {
		return usage()
	}

	cache := client.NewRecordsCache(api, notifier)
	defer cache.Close()
	if err := cache.SetIdentity(ctx, userID); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		records := cache.Records()
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Date", "Description", "Amount", "Category", "Payment Method"})
		for _, r := range records {
			table.Append([]string{
				r.ID,
				r.Date.Local().Format("2006-01-02"),
				r.Description,
				"$" + r.Amount.StringFixed(2),
				string(r.Category),
				string(r.PaymentMethod),
			})
		}
		table.Render()
		return nil

	case "add", "update":
		fs := flag.NewFlagSet("records "+args[0], flag.ExitOnError)
		id := fs.String("id", "", "record ID (update only)")
		desc := fs.String("desc", "", "description")
		amount := fs.String("amount", "0", "amount")
		category := fs.String("category", "", "category")
		payment := fs.String("payment", "", "payment method")
		date := fs.String("date", "", "date (YYYY-MM-DD, defaults to today)")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		amt, err := decimal.NewFromString(*amount)
		if err != nil {
			return fmt.Errorf("invalid amount %q", *amount)
		}
		draft := client.RecordDraft{
			Description:   *desc,
			Amount:        amt,
			Category:      *category,
			PaymentMethod: *payment,
		}
		if *date != "" {
			d, err := time.Parse("2006-01-02", *date)
			if err != nil {
				return fmt.Errorf("invalid date %q", *date)
			}
			draft.Date = d
		}

		if args[0] == "add" {
			return cache.Add(ctx, draft)
		}
		if *id == "" {
			return fmt.Errorf("-id is required for update")
		}
		return cache.Update(ctx, *id, draft)

	case "delete":
		fs := flag.NewFlagSet("records delete", flag.ExitOnError)
		id := fs.String("id", "", "record ID")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("-id is required for delete")
		}
		return cache.Delete(ctx, *id)

	default:
		return usage()
	}
}

func runInvestments(ctx context.Context, api *client.API, notifier client.Notifier, userID string, args []string) error {
	if len(args) < 1 {
		return usage()
	}

	cache := client.NewInvestmentsCache(api, notifier)
	defer cache.Close()
	if err := cache.SetIdentity(ctx, userID); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		investments := cache.Investments()
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Description", "Start", "End", "Amount", "Firm"})
		for _, inv := range investments {
			table.Append([]string{
				inv.ID,
				inv.Description,
				inv.StartDate.Local().Format("2006-01-02"),
				inv.EndDate.Local().Format("2006-01-02"),
				"$" + inv.Amount.StringFixed(2),
				inv.Firm,
			})
		}
		table.Render()
		return nil

	case "add":
		fs := flag.NewFlagSet("investments add", flag.ExitOnError)
		desc := fs.String("desc", "", "description")
		amount := fs.String("amount", "0", "amount")
		firm := fs.String("firm", "", "firm name")
		start := fs.String("start", "", "start date (YYYY-MM-DD)")
		end := fs.String("end", "", "end date (YYYY-MM-DD)")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		amt, err := decimal.NewFromString(*amount)
		if err != nil {
			return fmt.Errorf("invalid amount %q", *amount)
		}
		startDate, err := time.Parse("2006-01-02", *start)
		if err != nil {
			return fmt.Errorf("invalid start date %q", *start)
		}
		endDate, err := time.Parse("2006-01-02", *end)
		if err != nil {
			return fmt.Errorf("invalid end date %q", *end)
		}

		return cache.Add(ctx, client.InvestmentDraft{
			Description: *desc,
			Amount:      amt,
			Firm:        *firm,
			StartDate:   startDate,
			EndDate:     endDate,
		})

	case "delete":
		fs := flag.NewFlagSet("investments delete", flag.ExitOnError)
		id := fs.String("id", "", "investment ID")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *id == "" {
			return fmt.Errorf("-id is required for delete")
		}
		return cache.Delete(ctx, *id)

	default:
		return usage()
	}
}

func runChart(ctx context.Context, api *client.API, notifier client.Notifier, userID string, args []string) error {
	fs := flag.NewFlagSet("chart", flag.ExitOnError)
	chartType := fs.String("type", "category", "chart type: category, payment, or daily")
	out := fs.String("out", "spending_chart.png", "output PNG file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cache := client.NewRecordsCache(api, notifier)
	defer cache.Close()
	if err := cache.SetIdentity(ctx, userID); err != nil {
		return err
	}
	records := cache.Records()

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	switch *chartType {
	case "category":
		err = charts.RenderBar(f, "Spending by Category", views.CategoryTotals(records))
	case "payment":
		err = charts.RenderBar(f, "Spending by Payment Method", views.PaymentMethodTotals(records))
	case "daily":
		err = charts.RenderTimeSeries(f, "Daily Spending", views.DailyTotals(records))
	default:
		return fmt.Errorf("unknown chart type: %s", *chartType)
	}
	if err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	fmt.Printf("Chart saved to: %s\n", *out)
	return nil
}
