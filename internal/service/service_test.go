package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/carrierx/carrierx/internal/models"
	"github.com/carrierx/carrierx/internal/repo"
	"github.com/carrierx/carrierx/internal/token"
)

func viewerFor(u *models.User) *token.Identity {
	return &token.Identity{UserID: u.ID, Email: u.Email, Role: u.Role}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	// A fresh pool connection to :memory: would see an empty database;
	// pin the pool to one connection so concurrent queries share it.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return db
}

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()
	return repo.New(newTestDB(t))
}

func seedCompany(t *testing.T, r *repo.GormRepo, name string, premium bool) *models.Company {
	t.Helper()

	company := &models.Company{Name: name, IsPremium: premium}
	require.NoError(t, r.DB.Create(company).Error)
	return company
}

type seedJobOpts struct {
	Title     string
	Type      string
	Location  string
	TechStack []string
	Deadline  time.Time
	Active    bool
	PPO       bool
	CreatedAt time.Time
}

func seedJob(t *testing.T, r *repo.GormRepo, companyID uuid.UUID, opts seedJobOpts) *models.Job {
	t.Helper()

	if opts.Title == "" {
		opts.Title = "Backend Intern"
	}
	if opts.Type == "" {
		opts.Type = models.JobTypeInternship
	}
	if opts.Location == "" {
		opts.Location = "Remote"
	}
	if opts.Deadline.IsZero() {
		opts.Deadline = time.Now().Add(30 * 24 * time.Hour)
	}

	job := &models.Job{
		CompanyID: companyID,
		Title:     opts.Title,
		Type:      opts.Type,
		Location:  opts.Location,
		TechStack: models.StringList(opts.TechStack),
		Deadline:  opts.Deadline,
		IsPPO:     opts.PPO,
		IsActive:  opts.Active,
	}
	require.NoError(t, r.DB.Create(job).Error)

	if !opts.CreatedAt.IsZero() {
		require.NoError(t, r.DB.Model(job).Update("created_at", opts.CreatedAt).Error)
	}
	return job
}

func seedUser(t *testing.T, r *repo.GormRepo, email, role string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "x",
		Name:         "Test User",
		Role:         role,
	}
	require.NoError(t, r.DB.Create(user).Error)
	return user
}
