package utils

import (
	"github.com/Favorjs/e-rights-backend/utils/env"
)

// Dev returns true if the service is in development mode
func Dev() bool {
	return env.GetVar("ERIGHTS_MODE") == "DEV"
}

// Stg returns true if the service is in staging mode
func Stg() bool {
	return env.GetVar("ERIGHTS_MODE") == "STG"
}

// Prod returns true if the service is in production mode
func Prod() bool {
	return env.GetVar("ERIGHTS_MODE") == "PROD"
}

var (
	Sha1hash string
	Version  string = "dev"
)
