package repo

import (
	"context"
	"strings"

	"github.com/carrierx/carrierx/internal/models"
)

// Per-entity cap for free-text search results; categories are capped
// independently, not ranked globally.
const searchLimit = 5

// likeEscaper neutralizes LIKE metacharacters so user input only ever
// matches as a literal substring. Clauses built from likePattern must
// carry ESCAPE '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(q string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"
}

func (r *GormRepo) SearchJobs(ctx context.Context, q string) ([]models.Job, error) {
	var jobs []models.Job
	p := likePattern(q)
	err := r.DB.WithContext(ctx).
		Preload("Company").
		Where("is_active = ?", true).
		Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(location) LIKE ? ESCAPE '\'`, p, p).
		Limit(searchLimit).
		Find(&jobs).Error
	return jobs, err
}

func (r *GormRepo) SearchCompanies(ctx context.Context, q string) ([]models.Company, error) {
	var companies []models.Company
	err := r.DB.WithContext(ctx).
		Where(`LOWER(name) LIKE ? ESCAPE '\'`, likePattern(q)).
		Limit(searchLimit).
		Find(&companies).Error
	return companies, err
}

func (r *GormRepo) SearchEvents(ctx context.Context, q string) ([]models.Event, error) {
	var events []models.Event
	p := likePattern(q)
	err := r.DB.WithContext(ctx).
		Preload("Company").
		Where("is_active = ?", true).
		Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'`, p, p).
		Limit(searchLimit).
		Find(&events).Error
	return events, err
}

func (r *GormRepo) SearchBlogs(ctx context.Context, q string) ([]models.Blog, error) {
	var blogs []models.Blog
	p := likePattern(q)
	err := r.DB.WithContext(ctx).
		Where("published_at IS NOT NULL").
		Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(content) LIKE ? ESCAPE '\'`, p, p).
		Limit(searchLimit).
		Find(&blogs).Error
	return blogs, err
}
