package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/ligue-landing/internal/entity"
	"github.com/xavierca1/ligue-landing/internal/infra/queue"
	"github.com/xavierca1/ligue-landing/internal/mocks"
	"github.com/xavierca1/ligue-landing/internal/usecase"
)

func strPtr(s string) *string { return &s }

func eventOfType(eventType string) interface{} {
	return mock.MatchedBy(func(e queue.Event) bool { return e.Type == eventType })
}

func TestCreateLead_AppliesDefaults(t *testing.T) {
	repo := new(mocks.MockLeadRepository)
	events := new(mocks.MockPublisher)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(l *entity.Lead) bool {
		return l.InterestLevel == entity.InterestLevelMedium &&
			l.Source == entity.SourceLandingPage &&
			l.Status == entity.LeadStatusNew
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Lead).ID = 1
	}).Return(nil)
	events.On("Publish", mock.Anything, eventOfType(queue.EventLeadCreated)).Return(nil)

	uc := usecase.NewCreateLeadUseCase(repo, events)
	lead, err := uc.Execute(context.Background(), usecase.CreateLeadInput{Email: "a@x.io"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), lead.ID)
	assert.Equal(t, entity.LeadStatusNew, lead.Status)
	assert.Equal(t, entity.InterestLevelMedium, lead.InterestLevel)
	assert.Equal(t, "landing_page", lead.Source)
	repo.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestCreateLead_InvalidEmail(t *testing.T) {
	repo := new(mocks.MockLeadRepository)

	uc := usecase.NewCreateLeadUseCase(repo, nil)
	_, err := uc.Execute(context.Background(), usecase.CreateLeadInput{Email: "not-an-email"})

	var domainErr *usecase.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, usecase.CodeValidation, domainErr.Code)
	require.Len(t, domainErr.Fields, 1)
	assert.Equal(t, "email", domainErr.Fields[0].Field)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateLead_InvalidInterestLevel(t *testing.T) {
	repo := new(mocks.MockLeadRepository)

	uc := usecase.NewCreateLeadUseCase(repo, nil)
	_, err := uc.Execute(context.Background(), usecase.CreateLeadInput{
		Email:         "a@x.io",
		InterestLevel: "urgent",
	})

	var domainErr *usecase.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "interest_level", domainErr.Fields[0].Field)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateLead_DuplicateEmail(t *testing.T) {
	repo := new(mocks.MockLeadRepository)
	events := new(mocks.MockPublisher)
	repo.On("Create", mock.Anything, mock.Anything).Return(entity.ErrEmailAlreadyExists)

	uc := usecase.NewCreateLeadUseCase(repo, events)
	lead, err := uc.Execute(context.Background(), usecase.CreateLeadInput{Email: "a@x.io"})

	assert.Nil(t, lead)
	assert.ErrorIs(t, err, entity.ErrEmailAlreadyExists)
	events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateLead_PublishFailureDoesNotFail(t *testing.T) {
	repo := new(mocks.MockLeadRepository)
	events := new(mocks.MockPublisher)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	events.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	uc := usecase.NewCreateLeadUseCase(repo, events)
	lead, err := uc.Execute(context.Background(), usecase.CreateLeadInput{Email: "a@x.io"})

	require.NoError(t, err)
	assert.NotNil(t, lead)
}

func TestGetLeads_PassesFilters(t *testing.T) {
	repo := new(mocks.MockLeadRepository)
	high := entity.InterestLevelHigh
	source := "landing_page"

	expected := []entity.Lead{{ID: 2, Email: "b@x.io"}, {ID: 1, Email: "a@x.io"}}
	repo.On("List", mock.Anything, entity.LeadFilter{InterestLevel: &high, Source: &source}).Return(expected, nil)

	uc := usecase.NewGetLeadsUseCase(repo)
	leads, err := uc.Execute(context.Background(), usecase.GetLeadsInput{InterestLevel: &high, Source: &source})

	require.NoError(t, err)
	assert.Equal(t, expected, leads)
	repo.AssertExpectations(t)
}

func TestGetLeads_RejectsInvertedDateRange(t *testing.T) {
	repo := new(mocks.MockLeadRepository)
	after := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	before := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	uc := usecase.NewGetLeadsUseCase(repo)
	_, err := uc.Execute(context.Background(), usecase.GetLeadsInput{CreatedAfter: &after, CreatedBefore: &before})

	var domainErr *usecase.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "created_before", domainErr.Fields[0].Field)
}

func TestGetLeads_RejectsUnknownStatus(t *testing.T) {
	repo := new(mocks.MockLeadRepository)
	status := entity.LeadStatus("archived")

	uc := usecase.NewGetLeadsUseCase(repo)
	_, err := uc.Execute(context.Background(), usecase.GetLeadsInput{Status: &status})

	assert.True(t, usecase.IsDomainError(err))
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestUpdateLeadStatus(t *testing.T) {
	t.Run("updates and publishes", func(t *testing.T) {
		repo := new(mocks.MockLeadRepository)
		events := new(mocks.MockPublisher)
		repo.On("UpdateStatus", mock.Anything, int64(7), entity.LeadStatusQualified).
			Return(&entity.Lead{ID: 7, Status: entity.LeadStatusQualified}, nil)
		events.On("Publish", mock.Anything, eventOfType(queue.EventLeadStatusChanged)).Return(nil)

		uc := usecase.NewUpdateLeadStatusUseCase(repo, events)
		lead, err := uc.Execute(context.Background(), usecase.UpdateLeadStatusInput{ID: 7, Status: entity.LeadStatusQualified})

		require.NoError(t, err)
		assert.Equal(t, entity.LeadStatusQualified, lead.Status)
		events.AssertExpectations(t)
	})

	t.Run("missing lead", func(t *testing.T) {
		repo := new(mocks.MockLeadRepository)
		repo.On("UpdateStatus", mock.Anything, int64(9), entity.LeadStatusLost).Return(nil, entity.ErrLeadNotFound)

		uc := usecase.NewUpdateLeadStatusUseCase(repo, nil)
		_, err := uc.Execute(context.Background(), usecase.UpdateLeadStatusInput{ID: 9, Status: entity.LeadStatusLost})

		var domainErr *usecase.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, usecase.CodeLeadNotFound, domainErr.Code)
		assert.ErrorIs(t, err, entity.ErrLeadNotFound)
	})

	t.Run("invalid status", func(t *testing.T) {
		repo := new(mocks.MockLeadRepository)

		uc := usecase.NewUpdateLeadStatusUseCase(repo, nil)
		_, err := uc.Execute(context.Background(), usecase.UpdateLeadStatusInput{ID: 9, Status: "won"})

		assert.True(t, usecase.IsDomainError(err))
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}
