package env

import "testing"

func TestAppEnvironmentType(t *testing.T) {
	app := AppEnvironment{Type: "production"}
	if !app.IsProduction() {
		t.Fatalf("expected production")
	}

	app.Type = "staging"
	if !app.IsStaging() {
		t.Fatalf("expected staging")
	}

	app.Type = "local"
	if !app.IsLocal() {
		t.Fatalf("expected local")
	}
}

func TestDBEnvironment_GetDSN(t *testing.T) {
	db := DBEnvironment{
		UserName:     "usernamefoo",
		UserPassword: "passwordfoo",
		DatabaseName: "dbnamefoo",
		Port:         5432,
		Host:         "localhost",
		DriverName:   "postgres",
		SSLMode:      "require",
		TimeZone:     "UTC",
	}

	expect := "host=localhost user='usernamefoo' password='passwordfoo' dbname='dbnamefoo' port=5432 sslmode=require TimeZone=UTC"
	if dsn := db.GetDSN(); dsn != expect {
		t.Fatalf("unexpected dsn %q", dsn)
	}
}

func TestNetEnvironment(t *testing.T) {
	net := NetEnvironment{HttpHost: "localhost", HttpPort: "8080"}

	if net.GetHttpHost() != "localhost" {
		t.Fatalf("wrong host")
	}
	if net.GetHttpPort() != "8080" {
		t.Fatalf("wrong port")
	}
	if net.GetHostURL() != "localhost:8080" {
		t.Fatalf("wrong host url")
	}
}

func TestMailEnvironmentConfigured(t *testing.T) {
	mail := MailEnvironment{}
	if mail.IsConfigured() {
		t.Fatalf("empty key should not be configured")
	}

	mail.APIKey = "xkeysib-foo"
	if !mail.IsConfigured() {
		t.Fatalf("expected configured")
	}
}

func TestAdminEnvironmentCredentials(t *testing.T) {
	admin := AdminEnvironment{Email: "root@example.com"}
	if admin.HasCredentials() {
		t.Fatalf("missing password should not count as credentials")
	}

	admin.Password = "super-secret"
	if !admin.HasCredentials() {
		t.Fatalf("expected credentials")
	}
}
