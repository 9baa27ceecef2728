package usecase_test

import (
	"context"
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

func TestSubscribe_NewEmail(t *testing.T) {
	repo := new(mocks.MockNewsletterRepository)
	events := new(mocks.MockPublisher)

	repo.On("FindByEmail", mock.Anything, "n@x.io").Return(nil, entity.ErrSubscriptionNotFound)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *entity.NewsletterSubscription) bool {
		return s.Status == entity.SubscriptionStatusActive
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.NewsletterSubscription).ID = 1
	}).Return(nil)
	events.On("Publish", mock.Anything, eventOfType(queue.EventNewsletterSubscribed)).Return(nil)

	uc := usecase.NewCreateNewsletterSubscriptionUseCase(repo, events)
	sub, err := uc.Execute(context.Background(), usecase.NewsletterEmailInput{Email: "n@x.io"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), sub.ID)
	assert.True(t, sub.IsActive())
	assert.Nil(t, sub.UnsubscribedAt)
	events.AssertExpectations(t)
}

func TestSubscribe_AlreadyActiveIsUnchanged(t *testing.T) {
	repo := new(mocks.MockNewsletterRepository)
	events := new(mocks.MockPublisher)
	existing := &entity.NewsletterSubscription{ID: 1, Email: "n@x.io", Status: entity.SubscriptionStatusActive}

	repo.On("FindByEmail", mock.Anything, "n@x.io").Return(existing, nil)

	uc := usecase.NewCreateNewsletterSubscriptionUseCase(repo, events)
	sub, err := uc.Execute(context.Background(), usecase.NewsletterEmailInput{Email: "n@x.io"})

	require.NoError(t, err)
	assert.Same(t, existing, sub)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Reactivate", mock.Anything, mock.Anything)
	events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestSubscribe_ReactivatesUnsubscribed(t *testing.T) {
	repo := new(mocks.MockNewsletterRepository)
	old := time.Now().Add(-time.Hour)
	existing := &entity.NewsletterSubscription{
		ID:             4,
		Email:          "n@x.io",
		Status:         entity.SubscriptionStatusUnsubscribed,
		SubscribedAt:   old,
		UnsubscribedAt: &old,
	}
	reactivated := &entity.NewsletterSubscription{
		ID:           4,
		Email:        "n@x.io",
		Status:       entity.SubscriptionStatusActive,
		SubscribedAt: time.Now(),
	}

	repo.On("FindByEmail", mock.Anything, "n@x.io").Return(existing, nil)
	repo.On("Reactivate", mock.Anything, int64(4)).Return(reactivated, nil)

	uc := usecase.NewCreateNewsletterSubscriptionUseCase(repo, nil)
	sub, err := uc.Execute(context.Background(), usecase.NewsletterEmailInput{Email: "n@x.io"})

	require.NoError(t, err)
	assert.Equal(t, int64(4), sub.ID)
	assert.True(t, sub.IsActive())
	assert.Nil(t, sub.UnsubscribedAt)
	assert.True(t, sub.SubscribedAt.After(old))
}

func TestSubscribe_RetriesOnceAfterInsertRace(t *testing.T) {
	repo := new(mocks.MockNewsletterRepository)
	winner := &entity.NewsletterSubscription{ID: 9, Email: "n@x.io", Status: entity.SubscriptionStatusActive}

	repo.On("FindByEmail", mock.Anything, "n@x.io").Return(nil, entity.ErrSubscriptionNotFound).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(entity.ErrEmailAlreadyExists).Once()
	repo.On("FindByEmail", mock.Anything, "n@x.io").Return(winner, nil).Once()

	uc := usecase.NewCreateNewsletterSubscriptionUseCase(repo, nil)
	sub, err := uc.Execute(context.Background(), usecase.NewsletterEmailInput{Email: "n@x.io"})

	require.NoError(t, err)
	assert.Equal(t, int64(9), sub.ID)
	repo.AssertNumberOfCalls(t, "FindByEmail", 2)
	repo.AssertNumberOfCalls(t, "Create", 1)
}

func TestSubscribe_SecondConflictSurfaces(t *testing.T) {
	repo := new(mocks.MockNewsletterRepository)

	repo.On("FindByEmail", mock.Anything, "n@x.io").Return(nil, entity.ErrSubscriptionNotFound)
	repo.On("Create", mock.Anything, mock.Anything).Return(entity.ErrEmailAlreadyExists)

	uc := usecase.NewCreateNewsletterSubscriptionUseCase(repo, nil)
	_, err := uc.Execute(context.Background(), usecase.NewsletterEmailInput{Email: "n@x.io"})

	assert.ErrorIs(t, err, entity.ErrEmailAlreadyExists)
	repo.AssertNumberOfCalls(t, "Create", 2)
}

func TestSubscribe_InvalidEmail(t *testing.T) {
	repo := new(mocks.MockNewsletterRepository)

	uc := usecase.NewCreateNewsletterSubscriptionUseCase(repo, nil)
	_, err := uc.Execute(context.Background(), usecase.NewsletterEmailInput{Email: "nope"})

	assert.True(t, usecase.IsDomainError(err))
	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestUnsubscribe(t *testing.T) {
	t.Run("active subscription", func(t *testing.T) {
		repo := new(mocks.MockNewsletterRepository)
		events := new(mocks.MockPublisher)
		now := time.Now()

		repo.On("FindByEmail", mock.Anything, "n@x.io").
			Return(&entity.NewsletterSubscription{ID: 2, Email: "n@x.io", Status: entity.SubscriptionStatusActive}, nil)
		repo.On("Unsubscribe", mock.Anything, int64(2)).
			Return(&entity.NewsletterSubscription{ID: 2, Email: "n@x.io", Status: entity.SubscriptionStatusUnsubscribed, UnsubscribedAt: &now}, nil)
		events.On("Publish", mock.Anything, eventOfType(queue.EventNewsletterUnsubscribed)).Return(nil)

		uc := usecase.NewUnsubscribeNewsletterUseCase(repo, events)
		sub, err := uc.Execute(context.Background(), usecase.NewsletterEmailInput{Email: "n@x.io"})

		require.NoError(t, err)
		assert.Equal(t, entity.SubscriptionStatusUnsubscribed, sub.Status)
		assert.NotNil(t, sub.UnsubscribedAt)
		events.AssertExpectations(t)
	})

	t.Run("already unsubscribed", func(t *testing.T) {
		repo := new(mocks.MockNewsletterRepository)
		existing := &entity.NewsletterSubscription{ID: 2, Status: entity.SubscriptionStatusUnsubscribed}
		repo.On("FindByEmail", mock.Anything, "n@x.io").Return(existing, nil)

		uc := usecase.NewUnsubscribeNewsletterUseCase(repo, nil)
		sub, err := uc.Execute(context.Background(), usecase.NewsletterEmailInput{Email: "n@x.io"})

		require.NoError(t, err)
		assert.Same(t, existing, sub)
		repo.AssertNotCalled(t, "Unsubscribe", mock.Anything, mock.Anything)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(mocks.MockNewsletterRepository)
		repo.On("FindByEmail", mock.Anything, "n@x.io").Return(nil, entity.ErrSubscriptionNotFound)

		uc := usecase.NewUnsubscribeNewsletterUseCase(repo, nil)
		_, err := uc.Execute(context.Background(), usecase.NewsletterEmailInput{Email: "n@x.io"})

		var domainErr *usecase.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, usecase.CodeSubscriptionNotFound, domainErr.Code)
	})
}

func TestGetNewsletterSubscriptions(t *testing.T) {
	repo := new(mocks.MockNewsletterRepository)
	expected := []entity.NewsletterSubscription{{ID: 1}, {ID: 2}}
	repo.On("List", mock.Anything).Return(expected, nil)

	uc := usecase.NewGetNewsletterSubscriptionsUseCase(repo)
	subs, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, subs)
}
