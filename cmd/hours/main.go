package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/jedib0t/go-pretty/v6/table"
	_ "github.com/joho/godotenv/autoload"

	"github.com/octobees/wellness-site/internal/content"
	"github.com/octobees/wellness-site/internal/entity"
	"github.com/octobees/wellness-site/internal/service/openstatus"
)

func main() {
	contentPath := flag.String("content", os.Getenv("SITE_CONTENT_PATH"), "site content YAML file; empty uses the embedded content")
	timezone := flag.String("timezone", envOr("SITE_TIMEZONE", "Africa/Johannesburg"), "IANA timezone the hours are evaluated in")
	watch := flag.Bool("watch", false, "keep running and print the status on every tick")
	interval := flag.Duration("interval", time.Minute, "status refresh interval in watch mode")
	flag.Parse()

	site, err := content.Load(*contentPath)
	if err != nil {
		log.Fatalf("failed to load site content: %v", err)
	}

	loc, err := time.LoadLocation(*timezone)
	if err != nil {
		log.Fatalf("invalid timezone %q: %v", *timezone, err)
	}

	evaluator := openstatus.NewEvaluator(site.Business.Hours, *timezone, openstatus.WithRules(site.OpeningRules()))
	renderHours(os.Stdout, site.Business.Hours, evaluator.Rules())
	printStatus(evaluator, loc)

	if !*watch {
		return
	}
	if *interval <= 0 {
		log.Fatalf("interval must be positive, got %s", *interval)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			printStatus(evaluator, loc)
		}
	}
}

func renderHours(w io.Writer, hours entity.WeeklyHours, rules openstatus.RuleTable) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Day", "Hours", "Opens", "Closes"})
	for _, day := range entity.Weekdays {
		display := hours[day]
		if display == "" {
			display = entity.ClosedHours
		}
		rule, ok := rules[day]
		if !ok {
			t.AppendRow(table.Row{day, display, "-", "-"})
			continue
		}
		t.AppendRow(table.Row{day, display, clock(rule.Open), clock(rule.Close)})
	}
	t.Render()
}

func printStatus(evaluator *openstatus.Evaluator, loc *time.Location) {
	now := evaluator.Now()
	status := evaluator.At(now)
	fmt.Printf("%s %s: %s\n", now.In(loc).Format("Mon 15:04"), evaluator.Timezone(), status.Message)
}

// clock formats decimal hours as HH:MM.
func clock(decimal float64) string {
	minutes := int(decimal*60 + 0.5)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func envOr(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
