package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/dovela/quoting/internal/config"
	"github.com/dovela/quoting/internal/db"
	"github.com/dovela/quoting/internal/importer"
	"github.com/dovela/quoting/internal/pricing"
	"github.com/dovela/quoting/internal/services"
)

var (
	migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")
	seedFlag        = flag.Bool("seed", false, "Seed baseline reference data and exit")
	importFlag      = flag.String("import", "", "Import reference data from an xlsx workbook and exit")
	quoteFlag       = flag.String("quote", "", "Compute a quotation from a JSON request file and print the result")

	escalateFlag = flag.Bool("escalate", false, "Re-price a total between two index periods")
	totalFlag    = flag.Float64("total", 0, "Quotation total to escalate")
	baseFlag     = flag.String("base", "", "Base period as month/year, e.g. 1/2025")
	targetFlag   = flag.String("target", "", "Target period as month/year, e.g. 7/2025")
	steelFlag    = flag.Float64("steel", 0.4, "Steel coefficient of the polynomial formula")
	laborFlag    = flag.Float64("labor", 0.3, "Labor coefficient of the polynomial formula")
	concreteFlag = flag.Float64("concrete", 0.2, "Concrete coefficient of the polynomial formula")
	fuelFlag     = flag.Float64("fuel", 0.1, "Fuel coefficient of the polynomial formula")
)

func main() {
	flag.Parse()
	_ = godotenv.Load()
	cfg := config.Load()
	if os.Getenv("DATABASE_DSN") == "" {
		os.Setenv("DATABASE_DSN", cfg.DatabaseDSN)
	}

	if *migrateOnlyFlag {
		if _, err := db.ConnectAndMigrate(); err != nil {
			log.Fatalf("migrate-only failed: %v", err)
		}
		log.Println("migrations completed; exiting as requested")
		return
	}

	dbConn, err := db.ConnectAndMigrate()
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}

	switch {
	case *seedFlag:
		db.Seed(dbConn)
	case *importFlag != "":
		summary, err := importer.ImportWorkbook(dbConn, *importFlag)
		if err != nil {
			log.Fatalf("import failed: %v", err)
		}
		log.Printf("import completed: %d materials created, %d prices, %d indices",
			summary.MaterialsCreated, summary.PricesImported, summary.IndicesImported)
	case *quoteFlag != "":
		runQuote(dbConn, cfg, *quoteFlag)
	case *escalateFlag:
		runEscalate(dbConn)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runQuote(dbConn *gorm.DB, cfg config.Config, path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read request file: %v", err)
	}
	var req services.QuoteRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		log.Fatalf("parse request file: %v", err)
	}
	if req.TaxRate == 0 {
		req.TaxRate = cfg.DefaultTaxRate
	}
	if req.Currency == "" {
		req.Currency = cfg.Currency
	}

	result, err := services.NewQuotationService(dbConn).Quote(req)
	if err != nil {
		log.Fatalf("quotation failed: %v", err)
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("encode result: %v", err)
	}
	fmt.Println(string(out))
}

func runEscalate(dbConn *gorm.DB) {
	base, err := parsePeriod(*baseFlag)
	if err != nil {
		log.Fatalf("base period: %v", err)
	}
	target, err := parsePeriod(*targetFlag)
	if err != nil {
		log.Fatalf("target period: %v", err)
	}
	formula := pricing.PolynomialFormula{
		Steel:    *steelFlag,
		Labor:    *laborFlag,
		Concrete: *concreteFlag,
		Fuel:     *fuelFlag,
	}

	result, err := services.NewEscalationService(dbConn).Escalate(*totalFlag, base, target, formula)
	if err != nil {
		log.Fatalf("escalation failed: %v", err)
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("encode result: %v", err)
	}
	fmt.Println(string(out))
}

func parsePeriod(s string) (services.Period, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return services.Period{}, fmt.Errorf("expected month/year, got %q", s)
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return services.Period{}, fmt.Errorf("invalid month %q", parts[0])
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return services.Period{}, fmt.Errorf("invalid year %q", parts[1])
	}
	return services.Period{Month: month, Year: year}, nil
}
