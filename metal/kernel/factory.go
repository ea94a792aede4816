package kernel

import (
	"log"
	"strconv"

	"github.com/DCSlucifer/quickblog-backend/database"
	"github.com/DCSlucifer/quickblog-backend/metal/env"
	"github.com/DCSlucifer/quickblog-backend/pkg/llogs"
	"github.com/DCSlucifer/quickblog-backend/pkg/portal"
	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
)

func MakeSentry(e *env.Environment) *sentryhttp.Handler {
	cOptions := sentry.ClientOptions{
		Dsn:         e.Sentry.DSN,
		Environment: e.App.Type,
	}

	if err := sentry.Init(cOptions); err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}

	return sentryhttp.New(sentryhttp.Options{})
}

func MakeDbConnection(e *env.Environment) *database.Connection {
	dbConn, err := database.MakeConnection(e)

	if err != nil {
		panic("Sql: error connecting to PostgresSQL: " + err.Error())
	}

	return dbConn
}

func MakeLogs(e *env.Environment) llogs.Driver {
	lDriver, err := llogs.MakeFilesLogs(e)

	if err != nil {
		panic("logs: error opening logs file: " + err.Error())
	}

	return lDriver
}

func MakeEnv(validate *portal.Validator) *env.Environment {
	errorSuffix := "Environment: "

	port, err := strconv.Atoi(env.GetEnvVar("ENV_DB_PORT"))
	if err != nil {
		panic(errorSuffix + "invalid value for ENV_DB_PORT: " + err.Error())
	}

	app := env.AppEnvironment{
		Name:      env.GetEnvVar("ENV_APP_NAME"),
		URL:       env.GetEnvVar("ENV_APP_URL"),
		Type:      env.GetEnvVar("ENV_APP_ENV_TYPE"),
		MasterKey: env.GetEnvVar("ENV_APP_MASTER_KEY"),
	}

	db := env.DBEnvironment{
		UserName:     env.GetSecretOrEnv("pg_username", "ENV_DB_USER_NAME"),
		UserPassword: env.GetSecretOrEnv("pg_password", "ENV_DB_USER_PASSWORD"),
		DatabaseName: env.GetSecretOrEnv("pg_dbname", "ENV_DB_DATABASE_NAME"),
		Port:         port,
		Host:         env.GetEnvVar("ENV_DB_HOST"),
		DriverName:   database.DriverName,
		SSLMode:      env.GetEnvVar("ENV_DB_SSL_MODE"),
		TimeZone:     env.GetEnvVar("ENV_DB_TIMEZONE"),
	}

	logsEnv := env.LogsEnvironment{
		Level:      env.GetEnvVar("ENV_APP_LOG_LEVEL"),
		Dir:        env.GetEnvVar("ENV_APP_LOGS_DIR"),
		DateFormat: env.GetEnvVar("ENV_APP_LOGS_DATE_FORMAT"),
	}

	netEnv := env.NetEnvironment{
		HttpHost: env.GetEnvVar("ENV_HTTP_HOST"),
		HttpPort: env.GetEnvVar("ENV_HTTP_PORT"),
	}

	sentryEnv := env.SentryEnvironment{
		DSN: env.GetEnvVar("ENV_SENTRY_DSN"),
	}

	mailEnv := env.MailEnvironment{
		APIKey:    env.GetSecretOrEnv("brevo_api_key", "ENV_MAIL_API_KEY"),
		FromEmail: env.GetEnvVar("ENV_MAIL_FROM_EMAIL"),
		FromName:  env.GetEnvVar("ENV_MAIL_FROM_NAME"),
	}

	aiEnv := env.AIEnvironment{
		APIKey: env.GetSecretOrEnv("gemini_api_key", "ENV_AI_API_KEY"),
		Model:  env.GetEnvVar("ENV_AI_MODEL"),
	}

	adminEnv := env.AdminEnvironment{
		Email:    env.GetEnvVar("ENV_ADMIN_EMAIL"),
		Password: env.GetSecretOrEnv("admin_password", "ENV_ADMIN_PASSWORD"),
	}

	cleanupEnv := env.CleanupEnvironment{
		Schedule: env.GetEnvVar("ENV_CLEANUP_SCHEDULE"),
	}

	if cleanupEnv.Schedule == "" {
		cleanupEnv.Schedule = "@daily"
	}

	if _, err := validate.Rejects(app); err != nil {
		panic(errorSuffix + "invalid [APP] model: " + portal.FieldErrorsAsJson(err))
	}

	if _, err := validate.Rejects(db); err != nil {
		panic(errorSuffix + "invalid [Sql] model: " + portal.FieldErrorsAsJson(err))
	}

	if _, err := validate.Rejects(logsEnv); err != nil {
		panic(errorSuffix + "invalid [logs Credentials] model: " + portal.FieldErrorsAsJson(err))
	}

	if _, err := validate.Rejects(netEnv); err != nil {
		panic(errorSuffix + "invalid [NETWORK] model: " + portal.FieldErrorsAsJson(err))
	}

	if _, err := validate.Rejects(sentryEnv); err != nil {
		panic(errorSuffix + "invalid [SENTRY] model: " + portal.FieldErrorsAsJson(err))
	}

	if _, err := validate.Rejects(mailEnv); err != nil {
		panic(errorSuffix + "invalid [MAIL] model: " + portal.FieldErrorsAsJson(err))
	}

	if _, err := validate.Rejects(aiEnv); err != nil {
		panic(errorSuffix + "invalid [AI] model: " + portal.FieldErrorsAsJson(err))
	}

	if _, err := validate.Rejects(adminEnv); err != nil {
		panic(errorSuffix + "invalid [ADMIN] model: " + portal.FieldErrorsAsJson(err))
	}

	if _, err := validate.Rejects(cleanupEnv); err != nil {
		panic(errorSuffix + "invalid [CLEANUP] model: " + portal.FieldErrorsAsJson(err))
	}

	blog := &env.Environment{
		App:     app,
		DB:      db,
		Logs:    logsEnv,
		Network: netEnv,
		Sentry:  sentryEnv,
		Mail:    mailEnv,
		AI:      aiEnv,
		Admin:   adminEnv,
		Cleanup: cleanupEnv,
	}

	if _, err := validate.Rejects(blog); err != nil {
		panic(errorSuffix + "invalid [quickblog] model: " + portal.FieldErrorsAsJson(err))
	}

	return blog
}
