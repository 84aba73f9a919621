package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Klue7/abc-erp-clean/internal/adapters/workbook"
	"github.com/Klue7/abc-erp-clean/internal/app"
	"github.com/Klue7/abc-erp-clean/internal/pricing"
	"github.com/Klue7/abc-erp-clean/internal/qa"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "materials":
		runMaterials(os.Args[2:])
	case "specs":
		runSpecs(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage:
  abcpricing materials -file MATERIALS.xlsx [-qa qa_import_log.csv]
  abcpricing specs -file specs.xlsx [-force]`)
}

func runMaterials(args []string) {
	fs := flag.NewFlagSet("materials", flag.ExitOnError)
	file := fs.String("file", "", "supplier cost workbook (xlsx)")
	qaPath := fs.String("qa", "qa_import_log.csv", "QA report output path")
	_ = fs.Parse(args)
	if strings.TrimSpace(*file) == "" {
		usage()
		os.Exit(1)
	}

	a := setup()

	r, err := workbook.Open(*file)
	if err != nil {
		zlog.Fatal().Err(err).Str("file", *file).Msg("failed to open workbook")
	}
	defer r.Close()

	rows, err := r.CostRows()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to read workbook")
	}

	qaLog := &qa.Log{}
	processed, err := a.ImportUC.ImportMaterials(context.Background(), rows, *file, qaLog)
	if err != nil {
		zlog.Fatal().Err(err).Msg("materials import failed")
	}
	if err := qaLog.WriteReport(*qaPath); err != nil {
		zlog.Fatal().Err(err).Str("path", *qaPath).Msg("failed to write QA report")
	}

	fmt.Printf("Import done. Rows: %d. QA flags: %d. Wrote %s\n", processed, qaLog.Count(), *qaPath)
}

func runSpecs(args []string) {
	fs := flag.NewFlagSet("specs", flag.ExitOnError)
	file := fs.String("file", "", "product specs workbook (xlsx)")
	force := fs.Bool("force", false, "overwrite fields that already have values")
	_ = fs.Parse(args)
	if strings.TrimSpace(*file) == "" {
		usage()
		os.Exit(1)
	}

	a := setup()

	r, err := workbook.Open(*file)
	if err != nil {
		zlog.Fatal().Err(err).Str("file", *file).Msg("failed to open workbook")
	}
	defer r.Close()

	headers, rows, err := r.SpecRows()
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to read workbook")
	}

	if err := a.ImportUC.ImportSpecs(context.Background(), headers, rows, *force); err != nil {
		zlog.Fatal().Err(err).Msg("specs import failed")
	}

	fmt.Println("Specs import complete")
}

func setup() *app.App {
	db, err := gorm.Open(postgres.Open(resolveDSN()), &gorm.Config{})
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to connect to database")
	}
	a, err := app.NewApp(db)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to create app")
	}
	if err := a.MigrateAndSeed(); err != nil {
		zlog.Fatal().Err(err).Msg("failed to migrate and seed database")
	}
	if err := a.CheckSchema(); err != nil {
		zlog.Fatal().Err(err).Msg("schema capability check failed")
	}
	zlog.Info().Float64("vat_rate", pricing.VATRate()).Msg("pricing config resolved")
	return a
}

func resolveDSN() string {
	dsn := os.Getenv("DB_DSN")
	if strings.TrimSpace(dsn) != "" {
		return dsn
	}
	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}
	user := os.Getenv("DB_USER")
	if user == "" {
		user = os.Getenv("POSTGRES_USER")
	}
	if user == "" {
		user = "postgres"
	}
	pass := os.Getenv("DB_PASSWORD")
	if pass == "" {
		pass = os.Getenv("POSTGRES_PASSWORD")
	}
	if pass == "" {
		pass = "postgres"
	}
	name := os.Getenv("DB_NAME")
	if name == "" {
		name = os.Getenv("POSTGRES_DB")
	}
	if name == "" {
		name = "abc_erp"
	}
	ssl := os.Getenv("DB_SSLMODE")
	if ssl == "" {
		ssl = "disable"
	}
	return "host=" + host + " user=" + user + " password=" + pass + " dbname=" + name + " port=" + port + " sslmode=" + ssl
}
