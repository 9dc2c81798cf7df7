package db

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Favorjs/e-rights-backend/utils/env"
	"github.com/Favorjs/e-rights-backend/utils/log"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/lib/pq"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
)

var (
	db   *gorm.DB
	once sync.Once
)

// DB is a singleton wrapper to the gorm database object.
func DB() *gorm.DB {
	var err error

	once.Do(func() {
		db, err = NewDB()
		if err != nil {
			log.Panic("database initialization failure", "error", err)
		}
	})

	return db
}

// Begin opens a transaction on the shared connection pool.
func Begin() *gorm.DB {
	return DB().Begin()
}

/*
Optionally pass in a map of options, such as:

	[PGHOST]localhost
	[PGUSER]postgres
	[PGDATABASE]testdb

These will override the settings made via environment variables
*/
func NewDB(OptionsList ...map[string]string) (dbT *gorm.DB, err error) {
	// DATABASE_URL takes priority when provided (managed deployments)
	params := env.GetVar("DATABASE_URL")

	sslmode := env.GetVar("PGSSLMODE")
	host := env.GetVar("PGHOST")
	user := env.GetVar("PGUSER")
	dbname := env.GetVar("PGDATABASE")
	password := env.GetVar("PGPASSWORD")
	logDBString := env.GetVar("LOG_DB")
	maxOpenConns := env.GetVar("DB_MAX_OPEN_CONNS")
	maxIdleConns := env.GetVar("DB_MAX_IDLE_CONNS")

	if len(OptionsList) != 0 {
		options := OptionsList[0]
		for key, val := range options {
			switch key {
			case "PGHOST":
				host = val
			case "PGUSER":
				user = val
			case "PGDATABASE":
				dbname = val
			case "PGPASSWORD":
				password = val
			case "SSLMODE":
				sslmode = val
			case "LOG_DB":
				logDBString = val
			case "DB_MAX_OPEN_CONNS":
				maxOpenConns = val
			case "DB_MAX_IDLE_CONNS":
				maxIdleConns = val
			}
		}
		params = ""
	}

	if sslmode == "" {
		sslmode = "disable"
	}

	if params == "" {
		params = fmt.Sprintf(
			"host=%v user=%v dbname=%v sslmode=%v password=%v",
			host, user, dbname, sslmode, password,
		)
	}

	dbT, err = gorm.Open("postgres", params)
	if err != nil {
		return nil, err
	}

	// default = 20 (Go's default is 0 == unlimited)
	dbT.DB().SetMaxOpenConns(20)
	if maxOpenConns != "" {
		nMaxOpenConns, err := strconv.Atoi(maxOpenConns)
		if err != nil {
			log.Warn("parse error DB_MAX_OPEN_CONNS", "error", err)
		} else {
			dbT.DB().SetMaxOpenConns(nMaxOpenConns)
		}
	}

	if maxIdleConns != "" {
		nMaxIdleConns, err := strconv.Atoi(maxIdleConns)
		if err != nil {
			log.Warn("parse error DB_MAX_IDLE_CONNS", "error", err)
		} else {
			dbT.DB().SetMaxIdleConns(nMaxIdleConns)
		}
	}

	// so it doesn't reuse stale connections
	dbT.DB().SetConnMaxLifetime(30 * time.Minute)

	logDB, _ := strconv.ParseBool(logDBString)
	dbT.LogMode(logDB)

	return dbT, nil
}

// MockDB mocks the database using sqlmock.
// Used for testing only.
func MockDB() sqlmock.Sqlmock {
	_, mock, err := sqlmock.NewWithDSN("sqlmock_db_0")
	if err != nil {
		panic("Failed to mock db")
	}
	db, err = gorm.Open("sqlmock", "sqlmock_db_0")
	if err != nil {
		panic("Failed to open mocked db")
	}
	return mock
}

// Reconnect pings the database to re-establish
// a connection.
func Reconnect() error {
	if db == nil {
		return fmt.Errorf("db is nil")
	}

	return db.DB().Ping()
}

// IsConnectionError returns true if the supplied error is a connection
// related error based on PostgreSQL connection exceptions class (08).
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if pqErr, ok := err.(*pq.Error); ok {
		return strings.HasPrefix(string(pqErr.Code), "08")
	}
	return strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "connection reset")
}

// IsUniqueViolation returns true if the supplied error is a PostgreSQL
// unique constraint violation (23505).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "duplicate key value")
}
