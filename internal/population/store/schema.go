package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	txn "worldpop/pkg/platform/tx"
)

// schema is the subset of the world database read by SQLSource. It is valid
// for both PostgreSQL and SQLite.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS country (
		code       CHAR(3) PRIMARY KEY,
		name       TEXT NOT NULL,
		continent  TEXT NOT NULL,
		region     TEXT NOT NULL,
		population BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS city (
		id          INTEGER PRIMARY KEY,
		name        TEXT NOT NULL,
		countrycode CHAR(3) NOT NULL,
		district    TEXT NOT NULL,
		population  BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS countrylanguage (
		countrycode CHAR(3) NOT NULL,
		language    TEXT NOT NULL,
		isofficial  BOOLEAN NOT NULL DEFAULT FALSE,
		percentage  DOUBLE PRECISION NOT NULL DEFAULT 0,
		PRIMARY KEY (countrycode, language)
	)`,
}

// CreateSchema creates the world tables if they do not exist. It runs inside
// the transaction carried by ctx when there is one.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	conn := txn.Using(ctx, db)
	for _, stmt := range schema {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// Import writes d into the world tables in one transaction, joining the one
// carried by ctx (see tx.Run) if present. driver selects the placeholder
// syntax ("postgres" and "pgx" use $n, other drivers use ?). Cities are
// numbered in slice order.
func Import(ctx context.Context, db *sql.DB, driver string, d Dataset) error {
	return txn.Run(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		return importDataset(ctx, tx, driver, d)
	})
}

// Bootstrap creates the world tables and imports d in a single transaction,
// so a failed import leaves no schema behind.
func Bootstrap(ctx context.Context, db *sql.DB, driver string, d Dataset) error {
	return txn.Run(ctx, db, func(ctx context.Context, _ *sql.Tx) error {
		if err := CreateSchema(ctx, db); err != nil {
			return err
		}
		return Import(ctx, db, driver, d)
	})
}

func importDataset(ctx context.Context, tx *sql.Tx, driver string, d Dataset) error {
	insert := func(table string, cols []string, rows [][]any) error {
		q := "INSERT INTO " + table + " (" + strings.Join(cols, ", ") + ") VALUES (" + placeholders(driver, len(cols)) + ")"
		stmt, err := tx.PrepareContext(ctx, q)
		if err != nil {
			return fmt.Errorf("prepare %s insert: %w", table, err)
		}
		defer stmt.Close()
		for _, row := range rows {
			if _, err := stmt.ExecContext(ctx, row...); err != nil {
				return fmt.Errorf("insert %s: %w", table, err)
			}
		}
		return nil
	}

	countries := make([][]any, 0, len(d.Countries))
	for _, c := range d.Countries {
		countries = append(countries, []any{c.Code, c.Name, c.Continent, c.Region, c.Population})
	}
	if err := insert("country", []string{"code", "name", "continent", "region", "population"}, countries); err != nil {
		return err
	}

	cities := make([][]any, 0, len(d.Cities))
	for i, c := range d.Cities {
		cities = append(cities, []any{i + 1, c.Name, c.CountryCode, c.District, c.Population})
	}
	if err := insert("city", []string{"id", "name", "countrycode", "district", "population"}, cities); err != nil {
		return err
	}

	languages := make([][]any, 0, len(d.Languages))
	for _, l := range d.Languages {
		languages = append(languages, []any{l.CountryCode, l.Language, l.IsOfficial, l.Percentage})
	}
	return insert("countrylanguage", []string{"countrycode", "language", "isofficial", "percentage"}, languages)
}

func placeholders(driver string, n int) string {
	ph := make([]string, n)
	for i := range ph {
		if driver == "postgres" || driver == "pgx" {
			ph[i] = "$" + strconv.Itoa(i+1)
		} else {
			ph[i] = "?"
		}
	}
	return strings.Join(ph, ", ")
}
