package migration

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hectohq/hecto_backend/models"
	"github.com/hectohq/hecto_backend/utils"
)

// TempPassword is the shared placeholder credential every migrated identity
// receives; PasswordResetRequired forces a reset on first login.
const TempPassword = "TEMP_PASSWORD_RESET_REQUIRED"

const (
	colUserEmail      = "email"
	colFirstName      = "firstName"
	colLastName       = "lastName"
	colIntention      = "Intention"
	colMailOptIn      = "Mail OptIn"
	colProfilePic     = "profilePic"
	colStripeSellerID = "Stripe Seller ID"
)

// ImportUsers creates one identity per legacy row, preserving the Bubble
// unique id as the primary key. Rows missing id or email are skipped, as are
// rows whose id or email already exists. One bad row never aborts the batch.
func ImportUsers(ctx context.Context, p *Pipeline, rows []Row) (*Result, error) {
	p.printf("Starting User Migration...\n\n")
	p.printf("Found %d users to migrate\n\n", len(rows))

	result := &Result{Total: len(rows)}

	// Hash the placeholder credential once; bcrypt is far too slow per row.
	hashed, err := utils.HashPassword(TempPassword)
	if err != nil {
		return nil, fmt.Errorf("hash placeholder credential: %w", err)
	}
	password := string(hashed)

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if i%100 == 0 {
			p.logProgress("Users", i, len(rows))
		}

		id := strings.TrimSpace(row.Get(colUniqueID))
		email := strings.ToLower(strings.TrimSpace(row.Get(colUserEmail)))
		if id == "" || email == "" {
			result.skip(row, "Missing required field: unique id or email")
			continue
		}

		exists, err := p.Store.UserExists(ctx, id, email)
		if err != nil {
			result.fail(row, err)
			continue
		}
		if exists {
			result.Skipped++
			p.printf("  skip: user already exists: %s\n", email)
			continue
		}

		now := time.Now()
		user := &models.User{
			ID:                    id,
			Email:                 email,
			Password:              password,
			FirstName:             CleanString(row.Get(colFirstName)),
			LastName:              CleanString(row.Get(colLastName)),
			Intention:             CleanString(row.Get(colIntention)),
			MailOptIn:             boolOrFalse(ParseBoolean(row.Get(colMailOptIn))),
			ProfilePicUrl:         CleanString(row.Get(colProfilePic)),
			StripeSellerId:        CleanString(row.Get(colStripeSellerID)),
			MigratedFromBubble:    true,
			BubbleUserId:          &id,
			PasswordResetRequired: true,
			MigrationDate:         &now,
			CreatedAt:             parseDateAssumed(row, colCreationDate, result),
			UpdatedAt:             parseDateAssumed(row, colModifiedDate, result),
		}

		if err := p.Store.CreateUser(ctx, user); err != nil {
			result.fail(row, err)
			p.log("ImportUsers").WithField("email", email).Error("failed to migrate user: " + err.Error())
			continue
		}
		result.Succeeded++
	}

	p.logProgress("Users", len(rows), len(rows))
	p.LogResult("User Migration", result)
	return result, nil
}

func boolOrFalse(b *bool) bool {
	return b != nil && *b
}
