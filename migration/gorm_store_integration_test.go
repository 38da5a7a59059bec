package migration_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/hectohq/hecto_backend/config"
	"github.com/hectohq/hecto_backend/migration"
	"github.com/hectohq/hecto_backend/models"
)

// Exercises GormStore against a real MySQL. Point DB_USER/DB_PASSWORD/DB_HOST/
// DB_PORT/DB_NAME at a disposable database before running.
func TestGormStoreRoundTrip(t *testing.T) {
	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run integration tests (requires MySQL)")
	}

	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	models.MigrateTable()

	store := migration.NewGormStore(config.GetDB())

	// Unique per run so re-running against the same database stays green.
	userID := "it-user-" + uuid.NewString()
	email := userID + "@example.com"

	exists, err := store.UserExists(ctx, userID, email)
	if err != nil {
		t.Fatalf("UserExists: %v", err)
	}
	if exists {
		t.Fatalf("user %s existed before creation", userID)
	}

	if err := store.CreateUser(ctx, &models.User{
		ID:                 userID,
		Email:              email,
		Password:           "x",
		MigratedFromBubble: true,
		BubbleUserId:       &userID,
	}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	exists, err = store.UserExists(ctx, "other-id", email)
	if err != nil {
		t.Fatalf("UserExists: %v", err)
	}
	if !exists {
		t.Error("email collision not detected by OR-check")
	}
	gotID, err := store.UserIDByEmail(ctx, email)
	if err != nil {
		t.Fatalf("UserIDByEmail: %v", err)
	}
	if gotID != userID {
		t.Errorf("UserIDByEmail = %q, want %q", gotID, userID)
	}

	companyID := "it-news-" + uuid.NewString()
	if err := store.CreateCompany(ctx, &models.Company{
		ID:           companyID,
		UserId:       userID,
		CreatorEmail: email,
		Tags:         models.StringList{},
		IsNewsletter: true,
	}); err != nil {
		t.Fatalf("CreateCompany: %v", err)
	}

	isNewsletter, err := store.NewsletterExists(ctx, companyID)
	if err != nil {
		t.Fatalf("NewsletterExists: %v", err)
	}
	if !isNewsletter {
		t.Error("newsletter discriminator not visible through NewsletterExists")
	}

	if err := store.SetNewsletterProofUrl(ctx, companyID, "https://proof.example.com"); err != nil {
		t.Fatalf("SetNewsletterProofUrl: %v", err)
	}

	ids, err := store.CompanyIDs(ctx)
	if err != nil {
		t.Fatalf("CompanyIDs: %v", err)
	}
	var found bool
	for _, id := range ids {
		if id == companyID {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("company %s missing from CompanyIDs listing", companyID)
	}
}
