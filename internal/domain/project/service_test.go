package project_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ganot/builderp/internal/domain/project"
	"github.com/ganot/builderp/internal/repository"
	"github.com/ganot/builderp/internal/repository/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validRequest() project.CreateRequest {
	return project.CreateRequest{
		Name:      "  Harbor Warehouse ",
		Budget:    decimal.NewFromInt(300000),
		Progress:  5,
		StartDate: "2024-03-01",
		EndDate:   "2025-03-01",
	}
}

func TestProjectService_CreateDefaultsAndTrims(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Create", ctx, mock.AnythingOfType("*project.Project")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*project.Project).ID = 4
		}).
		Return(nil)

	svc := project.NewService(repo, nil)
	proj, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	require.Equal(t, int64(4), proj.ID)
	require.Equal(t, "Harbor Warehouse", proj.Name)
	require.Equal(t, project.StatusActive, proj.Status)
	require.True(t, proj.Spent.IsZero())
	repo.AssertExpectations(t)
}

func TestProjectService_CreateValidation(t *testing.T) {
	ctx := context.Background()

	cases := map[string]func(*project.CreateRequest){
		"blank name":       func(r *project.CreateRequest) { r.Name = "  " },
		"negative budget":  func(r *project.CreateRequest) { r.Budget = decimal.NewFromInt(-1) },
		"negative spent":   func(r *project.CreateRequest) { r.Spent = decimal.NewFromInt(-1) },
		"progress too low": func(r *project.CreateRequest) { r.Progress = -1 },
		"progress too big": func(r *project.CreateRequest) { r.Progress = 101 },
		"unknown status":   func(r *project.CreateRequest) { r.Status = "Paused" },
		"bad start date":   func(r *project.CreateRequest) { r.StartDate = "01/03/2024" },
		"bad end date":     func(r *project.CreateRequest) { r.EndDate = "soon" },
		"end before start": func(r *project.CreateRequest) { r.EndDate = "2024-02-01" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &mocks.ProjectRepository{}
			svc := project.NewService(repo, nil)

			req := validRequest()
			mutate(&req)
			_, err := svc.Create(ctx, req)
			require.ErrorIs(t, err, project.ErrInvalidInput)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestProjectService_CreateAcceptsBoundaries(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)
	svc := project.NewService(repo, nil)

	req := validRequest()
	req.Budget = decimal.Zero
	req.Progress = 100
	req.EndDate = ""
	req.Status = project.StatusOnHold
	proj, err := svc.Create(ctx, req)
	require.NoError(t, err)
	require.Equal(t, project.StatusOnHold, proj.Status)
}

func TestProjectService_GetNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, int64(99)).Return((*project.Project)(nil), repository.ErrNotFound)

	svc := project.NewService(repo, nil)
	_, err := svc.Get(ctx, 99)
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestProjectService_GetWrapsStoreErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk on fire")

	repo := &mocks.ProjectRepository{}
	repo.On("Get", ctx, int64(1)).Return((*project.Project)(nil), boom)

	svc := project.NewService(repo, nil)
	_, err := svc.Get(ctx, 1)
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, project.ErrProjectNotFound)
}

func TestProjectService_SearchBlankListsAll(t *testing.T) {
	ctx := context.Background()
	all := []project.Project{{ID: 1, Name: "Skyline Apartments"}, {ID: 2, Name: "Downtown Plaza Reno"}}

	repo := &mocks.ProjectRepository{}
	repo.On("List", ctx).Return(all, nil)
	repo.On("Search", ctx, "plaza").Return(all[1:], nil)

	svc := project.NewService(repo, nil)

	got, err := svc.Search(ctx, "   ")
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = svc.Search(ctx, " plaza ")
	require.NoError(t, err)
	require.Equal(t, []project.Project{all[1]}, got)
}
