package reference

import "context"

// Repository provides read-only reference data.
type Repository interface {
	ListOrgIDs(ctx context.Context) ([]string, error)
	ListDepartments(ctx context.Context, orgID string) ([]Department, error)
	GetTaxonomy(ctx context.Context, orgID string) (Taxonomy, error)
}
