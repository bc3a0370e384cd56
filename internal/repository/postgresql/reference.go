package postgresql

import (
	"context"
	"fmt"

	"github.com/worklens/worklens-backend-go/internal/domain/reference"
	"github.com/worklens/worklens-backend-go/internal/fixtures"
	"github.com/worklens/worklens-backend-go/internal/pkg/database"
)

type referenceRepositoryImpl struct {
	db *database.DB
}

func NewReferenceRepository(db *database.DB) reference.Repository {
	return &referenceRepositoryImpl{db: db}
}

func (r *referenceRepositoryImpl) ListOrgIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id FROM orgs ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query orgs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan org id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read orgs: %w", err)
	}

	return ids, nil
}

func (r *referenceRepositoryImpl) ListDepartments(ctx context.Context, orgID string) ([]reference.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name
		FROM departments
		WHERE org_id = $1
		ORDER BY name ASC
	`, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	var departments []reference.Department
	for rows.Next() {
		var d reference.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read departments: %w", err)
	}

	return departments, nil
}

// GetTaxonomy returns the org's configured categories in display order,
// falling back to the shipped defaults when none are configured.
func (r *referenceRepositoryImpl) GetTaxonomy(ctx context.Context, orgID string) (reference.Taxonomy, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT c.key, c.label, s.key, s.label
		FROM idle_categories c
		LEFT JOIN idle_subcategories s ON s.category_key = c.key AND s.org_id = c.org_id
		WHERE c.org_id = $1
		ORDER BY c.position ASC, s.position ASC
	`, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to query taxonomy: %w", err)
	}
	defer rows.Close()

	var taxonomy reference.Taxonomy
	index := make(map[string]int)

	for rows.Next() {
		var catKey, catLabel string
		var subKey, subLabel *string
		if err := rows.Scan(&catKey, &catLabel, &subKey, &subLabel); err != nil {
			return nil, fmt.Errorf("failed to scan taxonomy row: %w", err)
		}

		i, ok := index[catKey]
		if !ok {
			taxonomy = append(taxonomy, reference.Category{Key: catKey, Label: catLabel})
			i = len(taxonomy) - 1
			index[catKey] = i
		}
		if subKey != nil && subLabel != nil {
			taxonomy[i].Subcategories = append(taxonomy[i].Subcategories, reference.Subcategory{
				Key:   *subKey,
				Label: *subLabel,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read taxonomy: %w", err)
	}

	if len(taxonomy) == 0 {
		return fixtures.DefaultTaxonomy(), nil
	}
	return taxonomy, nil
}
