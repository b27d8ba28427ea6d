package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pizzariapopovici/orderapi/internal/backend"
	"github.com/pizzariapopovici/orderapi/internal/cart"
	"github.com/pizzariapopovici/orderapi/internal/config"
	"go.uber.org/zap"
)

// Prints the upstream menu with formatted prices. Handy for checking what
// the backend is actually serving.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	be := backend.NewClient(cfg.Backend, logger)

	items, err := be.ListItems(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch menu: %v\n", err)
		os.Exit(1)
	}

	if len(items) == 0 {
		fmt.Println("The menu is empty.")
		return
	}

	fmt.Printf("Menu (%d items):\n\n", len(items))
	for _, item := range items {
		fmt.Printf("  [%d] %-30s %10s\n", item.ID, item.Name, cart.FormatBRL(item.PriceInCents))
		if item.Description != "" {
			fmt.Printf("      %s\n", item.Description)
		}
	}

	methods, err := be.ListPaymentMethods(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch payment methods: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nPayment methods:\n")
	for _, m := range methods {
		fmt.Printf("  [%d] %s\n", m.ID, m.Name)
	}
}
