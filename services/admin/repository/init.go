package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/propline/adminauth/internal/pkg/database"
	"github.com/propline/adminauth/internal/pkg/models"
)

// AdminRepository persists admin auth state: admins, sessions and challenges
// in Postgres, rate-limit counters and validation tokens in Redis.
type AdminRepository struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewAdminRepository creates a new admin repository instance
func NewAdminRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *AdminRepository {
	return &AdminRepository{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
