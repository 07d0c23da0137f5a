package repository

import (
	"fmt"

	"wordingo/internal/database"
	"wordingo/internal/models"
)

// CatalogRepository handles database operations for the game catalog
type CatalogRepository struct {
	db *database.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *database.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetGameTypes retrieves all game types in the catalog
func (r *CatalogRepository) GetGameTypes() ([]models.GameType, error) {
	query := `
		SELECT id, name, description, type
		FROM games
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get game types: %w", err)
	}
	defer rows.Close()

	var types []models.GameType
	for rows.Next() {
		var gt models.GameType
		if err := rows.Scan(&gt.ID, &gt.Name, &gt.Description, &gt.Type); err != nil {
			return nil, fmt.Errorf("failed to scan game type: %w", err)
		}
		types = append(types, gt)
	}

	return types, rows.Err()
}
