package repository

import (
	"database/sql"

	"ricemill/models"
)

type PostgresGodownRepo struct {
	DB *sql.DB
}

func NewPostgresGodownRepo(db *sql.DB) *PostgresGodownRepo {
	return &PostgresGodownRepo{DB: db}
}

func (r *PostgresGodownRepo) FindByName(name string) (*models.UnloadingGodown, error) {
	g := &models.UnloadingGodown{}
	err := r.DB.QueryRow(`
		SELECT id, name FROM unloading_godowns WHERE name=$1
	`, name).Scan(&g.ID, &g.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *PostgresGodownRepo) Insert(name string) (*models.UnloadingGodown, error) {
	g := &models.UnloadingGodown{Name: name}
	err := r.DB.QueryRow(`
		INSERT INTO unloading_godowns(name) VALUES($1) RETURNING id
	`, name).Scan(&g.ID)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *PostgresGodownRepo) ListAll() ([]models.UnloadingGodown, error) {
	rows, err := r.DB.Query(`
		SELECT id, name FROM unloading_godowns ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var godowns []models.UnloadingGodown
	for rows.Next() {
		var g models.UnloadingGodown
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		godowns = append(godowns, g)
	}
	return godowns, rows.Err()
}
