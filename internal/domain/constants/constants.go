// Package constants holds string constants shared between configuration and delivery code.
package constants

const (
	// EnvDevelop is the env name used for local development.
	EnvDevelop = "develop"

	// PubSubProviderLocal publishes events by HTTP POST to a local worker.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// ActivityStorePostgres keeps activity logs in PostgreSQL.
	ActivityStorePostgres = "postgres"
	// ActivityStoreMongo keeps activity logs in MongoDB.
	ActivityStoreMongo = "mongo"

	// DefaultTimezone is used for day boundaries when billing.timezone is empty.
	DefaultTimezone = "Asia/Kolkata"
	// DefaultActivityRetentionDays is how long activity logs are kept.
	DefaultActivityRetentionDays = 10
	// DefaultCurrency is the currency used for gateway orders.
	DefaultCurrency = "INR"
)
