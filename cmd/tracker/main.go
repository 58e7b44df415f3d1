package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/AlvinMunny27/Payizi-SA-Beta/internal"
	"github.com/AlvinMunny27/Payizi-SA-Beta/internal/model"
)

func main() {
	//decimals at json as string
	//https://github.com/shopspring/decimal/issues/21
	decimal.MarshalJSONWithoutQuotes = true

	cfg := NewConfig()
	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	logger := z.Sugar()

	if cfg.LookupEndpoint == "" {
		logger.Fatal("lookup endpoint is not configured, set -e or " + LookupEndpoint)
	}
	if cfg.OrderRef == "" {
		logger.Fatal("order reference is required, set -r")
	}

	style := APIStyleModern
	if cfg.LegacyAPI {
		style = APIStyleLegacy
	}

	fetcher := NewOrderFetcher(cfg.LookupEndpoint, style, cfg.RequestTimeout, logger)
	tracker := NewTracker(fetcher, printOrder(cfg.ReceiptDir, logger), printError, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tracker.Track(ctx, cfg.OrderRef)

	if order, ok := tracker.Current(); cfg.Watch && ok && !IsTerminalStatus(order.Status) {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-quit
			logger.Info("Shutting down tracker...")
			cancel()
		}()

		tracker.Watch(ctx, cfg.RefreshInterval)
	}
}

func printOrder(receiptDir string, logger *zap.SugaredLogger) DisplayFunc {
	return func(o model.OrderRecord, ds model.DisplayState) {
		fmt.Printf("Order %s\n", o.OrderRef)
		fmt.Printf("  Status:      %s (%d%%, step %d/5, %s)\n", ds.Label, ds.ProgressPercent, ds.TimelineStep, ds.ColorClass)
		fmt.Printf("  Customer:    %s <%s>\n", o.CustomerName, o.CustomerEmail)
		fmt.Printf("  Transfer:    $%s @ %s = R %s (fee R %s)\n",
			o.USDAmount.StringFixed(2), o.ExchangeRate.StringFixed(5), o.ZARTotal.StringFixed(2), o.PayiziFee.StringFixed(2))
		fmt.Printf("  Beneficiary: %s, %s %s\n", o.BeneficiaryName, o.Location, o.Destination)

		if receiptDir == "" {
			return
		}

		path := filepath.Join(receiptDir, ReceiptFileName(o.OrderRef))
		if err := WriteReceiptPDF(FormatReceipt(o), path); err != nil {
			logger.Errorf("receipt for %s: %s", o.OrderRef, err.Error())
			return
		}
		fmt.Printf("  Receipt:     %s\n", path)
	}
}

func printError(message string) {
	fmt.Fprintln(os.Stderr, message)
}
