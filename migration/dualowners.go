package migration

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DefaultDualOwnerReportFile is where the detector writes its report and
// where the company importer looks for it.
const DefaultDualOwnerReportFile = "dual-owners-report.json"

// DualOwner is an identity that owns at least one brand and at least one
// newsletter in the legacy data. Such identities are excluded from automatic
// migration and handed to the operations team instead.
type DualOwner struct {
	Email         string   `json:"email"`
	BrandIds      []string `json:"brandIds"`
	NewsletterIds []string `json:"newsletterIds"`
}

// Brand rows name their owner in "Creator"; newsletter rows prefer "Owner"
// and fall back to "Creator".
var (
	brandOwnerColumns      = []string{"Creator"}
	newsletterOwnerColumns = []string{"Owner", "Creator"}
)

// IdentifyDualOwners intersects the owner-email sets of the two exports.
// Matching is exact after case folding and trimming. Rows without an owner
// email fall out of both maps silently. Output order follows the brand file's
// first-seen order, so re-running on the same inputs is byte-stable.
func IdentifyDualOwners(brandRows, newsletterRows []Row) []DualOwner {
	brandOwners, brandOrder := collectOwners(brandRows, brandOwnerColumns)
	newsletterOwners, _ := collectOwners(newsletterRows, newsletterOwnerColumns)

	var dualOwners []DualOwner
	for _, email := range brandOrder {
		newsletterIds, ok := newsletterOwners[email]
		if !ok {
			continue
		}
		dualOwners = append(dualOwners, DualOwner{
			Email:         email,
			BrandIds:      brandOwners[email],
			NewsletterIds: newsletterIds,
		})
	}
	return dualOwners
}

func collectOwners(rows []Row, columns []string) (map[string][]string, []string) {
	owners := make(map[string][]string)
	var order []string
	for _, row := range rows {
		email := ownerEmail(row, columns)
		if email == "" {
			continue
		}
		if _, seen := owners[email]; !seen {
			order = append(order, email)
		}
		owners[email] = append(owners[email], row.Get(colUniqueID))
	}
	return owners, order
}

func ownerEmail(row Row, columns []string) string {
	for _, column := range columns {
		if email := strings.ToLower(strings.TrimSpace(row.Get(column))); email != "" {
			return email
		}
	}
	return ""
}

// WriteDualOwnerReport overwrites any prior report unconditionally.
func WriteDualOwnerReport(path string, owners []DualOwner) error {
	if owners == nil {
		owners = []DualOwner{}
	}
	data, err := json.MarshalIndent(owners, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadDualOwnerEmails reads the report into an exclusion set. A missing
// report is tolerated: the company import proceeds with no exclusions and the
// caller is expected to warn.
func LoadDualOwnerEmails(path string) (map[string]struct{}, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]struct{}{}, nil
	}
	if err != nil {
		return nil, err
	}
	var owners []DualOwner
	if err := json.Unmarshal(data, &owners); err != nil {
		return nil, fmt.Errorf("parse dual-owner report %s: %w", path, err)
	}
	emails := make(map[string]struct{}, len(owners))
	for _, owner := range owners {
		emails[strings.ToLower(owner.Email)] = struct{}{}
	}
	return emails, nil
}

// WriteDualOwnerWorkbook writes the handoff workbook for the team migrating
// dual owners by hand. One row per owner, ids joined with commas.
func WriteDualOwnerWorkbook(path string, owners []DualOwner) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Dual Owners"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	header := []interface{}{"Email", "Brand Count", "Newsletter Count", "Brand IDs", "Newsletter IDs"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, owner := range owners {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			owner.Email,
			len(owner.BrandIds),
			len(owner.NewsletterIds),
			strings.Join(owner.BrandIds, ", "),
			strings.Join(owner.NewsletterIds, ", "),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
