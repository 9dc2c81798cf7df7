package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Favorjs/e-rights-backend/migration"
	"github.com/Favorjs/e-rights-backend/models"
	"github.com/Favorjs/e-rights-backend/utils/db"
	"github.com/Favorjs/e-rights-backend/utils/initializer"
	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

var (
	registerFile = flag.String("register", "", "path to the shareholder register CSV")
	brokerFile   = flag.String("brokers", "", "path to the stockbroker list CSV")
)

type registerRow struct {
	RegAccountNumber string          `csv:"reg_account_number"`
	Name             string          `csv:"name"`
	Holdings         decimal.Decimal `csv:"holdings"`
	RightsIssue      decimal.Decimal `csv:"rights_issue"`
	HoldingsAfter    decimal.Decimal `csv:"holdings_after"`
	AmountDue        decimal.Decimal `csv:"amount_due"`
}

type brokerRow struct {
	Name string `csv:"name"`
	Code string `csv:"code"`
}

func init() {
	initializer.Initialize()
	flag.Parse()
}

func main() {
	if *registerFile == "" && *brokerFile == "" {
		fmt.Println("nothing to do: pass -register and/or -brokers")
		os.Exit(1)
	}

	if err := migration.Migration(db.DB()).Migrate(); err != nil {
		panic(err)
	}

	if *registerFile != "" {
		n, err := loadRegister(*registerFile)
		if err != nil {
			panic(err)
		}
		fmt.Printf("loaded %d shareholders\n", n)
	}

	if *brokerFile != "" {
		n, err := loadBrokers(*brokerFile)
		if err != nil {
			panic(err)
		}
		fmt.Printf("loaded %d stockbrokers\n", n)
	}
}

// loadRegister upserts shareholders by registrar account number so the
// loader can be re-run whenever the registrar cuts a fresh register.
func loadRegister(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	rows := []*registerRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return 0, err
	}

	tx := db.Begin()

	for _, row := range rows {
		holder := &models.Shareholder{}

		q := tx.Where("reg_account_number = ?", row.RegAccountNumber).First(holder)
		if q.Error != nil && !q.RecordNotFound() {
			tx.Rollback()
			return 0, q.Error
		}

		holder.RegAccountNumber = row.RegAccountNumber
		holder.Name = row.Name
		holder.Holdings = row.Holdings
		holder.RightsIssue = row.RightsIssue
		holder.HoldingsAfter = row.HoldingsAfter
		holder.AmountDue = row.AmountDue

		if err := tx.Save(holder).Error; err != nil {
			tx.Rollback()
			return 0, err
		}
	}

	return len(rows), tx.Commit().Error
}

func loadBrokers(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	rows := []*brokerRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return 0, err
	}

	tx := db.Begin()

	for _, row := range rows {
		broker := &models.Stockbroker{}

		q := tx.Where("code = ?", row.Code).First(broker)
		if q.Error != nil && !q.RecordNotFound() {
			tx.Rollback()
			return 0, q.Error
		}

		broker.Name = row.Name
		broker.Code = row.Code

		if err := tx.Save(broker).Error; err != nil {
			tx.Rollback()
			return 0, err
		}
	}

	return len(rows), tx.Commit().Error
}
