package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCompanies(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	svc := &CompanyService{Repo: r}
	ctx := context.Background()

	seedCompany(t, r, "Plain Co", false)
	seedCompany(t, r, "Premium Co", true)

	all, err := svc.List(ctx, false, 1, 10)
	require.NoError(t, err)
	assert.Len(t, all.Companies, 2)

	premium, err := svc.List(ctx, true, 1, 10)
	require.NoError(t, err)
	require.Len(t, premium.Companies, 1)
	assert.Equal(t, "Premium Co", premium.Companies[0].Name)
}

func TestGetCompany(t *testing.T) {
	t.Parallel()
	r := newTestRepo(t)
	svc := &CompanyService{Repo: r}
	ctx := context.Background()

	company := seedCompany(t, r, "Acme", false)
	seedJob(t, r, company.ID, seedJobOpts{Title: "Live", Active: true})
	seedJob(t, r, company.ID, seedJobOpts{Title: "Paused", Active: false})

	detail, err := svc.Get(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", detail.Company.Name)
	require.Len(t, detail.Jobs, 1)
	assert.Equal(t, "Live", detail.Jobs[0].Title)

	_, err = svc.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
