package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carrierx/carrierx/internal/models"
)

func TestListEvents(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	svc := &EventService{Repo: r}
	ctx := context.Background()

	company := seedCompany(t, r, "Acme", false)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		event := &models.Event{
			CompanyID: company.ID,
			Title:     fmt.Sprintf("Hackathon %d", i),
			IsActive:  true,
		}
		require.NoError(t, r.DB.Create(event).Error)
		require.NoError(t, r.DB.Model(event).Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}
	require.NoError(t, r.DB.Create(&models.Event{
		CompanyID: company.ID,
		Title:     "Cancelled Meetup",
		IsActive:  false,
	}).Error)

	page, err := svc.List(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Events, 3)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, int64(1), page.TotalPages)

	// Newest first, inactive events never listed.
	assert.Equal(t, "Hackathon 2", page.Events[0].Title)
	assert.Equal(t, "Hackathon 0", page.Events[2].Title)
	for _, ev := range page.Events {
		assert.NotEqual(t, "Cancelled Meetup", ev.Title)
		require.NotNil(t, ev.Company)
	}
}

func TestListEvents_Pagination(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	svc := &EventService{Repo: r}
	ctx := context.Background()

	company := seedCompany(t, r, "Acme", false)
	for i := 0; i < 5; i++ {
		require.NoError(t, r.DB.Create(&models.Event{
			CompanyID: company.ID,
			Title:     fmt.Sprintf("Fair %d", i),
			IsActive:  true,
		}).Error)
	}

	page, err := svc.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, page.Events, 2)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, int64(3), page.TotalPages)
	assert.Equal(t, 2, page.Page)
}
