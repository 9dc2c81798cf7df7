package initializer

import (
	"github.com/Favorjs/e-rights-backend/utils/env"
)

// Initialize registers the service's required environment
// variables to their default values.
func Initialize() {
	// Service
	env.RegisterDefault("ERIGHTS_MODE", "DEV")
	env.RegisterDefault("ERIGHTS_PORT", "5000")
	env.RegisterDefault("ADMIN_SECRET", "")
	env.RegisterDefault("DEBUG", "FALSE")
	env.RegisterDefault("EMAILS_ENABLED", "TRUE")
	env.RegisterDefault("FRONTEND_URL", "http://localhost:3000")

	// Rights issue terms
	env.RegisterDefault("RIGHTS_PRICE_PER_SHARE", "7.00")
	env.RegisterDefault("RIGHTS_TEMPLATE_PATH", "uploads/forms/RIGHTS_ISSUE.pdf")
	env.RegisterDefault("RIGHTS_TEMPLATE_KEY", "templates/RIGHTS_ISSUE.pdf")

	// Postgres
	env.RegisterDefault("PGDATABASE", "erights")
	env.RegisterDefault("PGHOST", "127.0.0.1")
	env.RegisterDefault("PGUSER", "postgres")
	env.RegisterDefault("PGPASSWORD", "postgres")

	// Object storage
	env.RegisterDefault("AWS_REGION", "eu-west-1")
	env.RegisterDefault("AWS_S3_BUCKETNAME", "erights-artifacts")
	env.RegisterDefault("AWS_S3_NAMESPACE", "")

	// Mail
	env.RegisterDefault("ADMIN_EMAIL", "registrars@apel.com.ng")
	env.RegisterDefault("SUPPORT_EMAIL", "support@apel.com.ng")
	env.RegisterDefault("MAILGUN_DOMAIN", "mg.apel.com.ng")
}
