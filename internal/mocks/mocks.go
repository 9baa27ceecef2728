package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-landing/internal/entity"
	"github.com/xavierca1/ligue-landing/internal/infra/queue"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id int64) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context, filter entity.LeadFilter) ([]entity.Lead, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id int64, status entity.LeadStatus) (*entity.Lead, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockContactFormRepository
type MockContactFormRepository struct {
	mock.Mock
}

func (m *MockContactFormRepository) Create(ctx context.Context, form *entity.ContactForm) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

// MockNewsletterRepository
type MockNewsletterRepository struct {
	mock.Mock
}

func (m *MockNewsletterRepository) Create(ctx context.Context, sub *entity.NewsletterSubscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockNewsletterRepository) FindByEmail(ctx context.Context, email string) (*entity.NewsletterSubscription, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.NewsletterSubscription), args.Error(1)
}

func (m *MockNewsletterRepository) Reactivate(ctx context.Context, id int64) (*entity.NewsletterSubscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.NewsletterSubscription), args.Error(1)
}

func (m *MockNewsletterRepository) Unsubscribe(ctx context.Context, id int64) (*entity.NewsletterSubscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.NewsletterSubscription), args.Error(1)
}

func (m *MockNewsletterRepository) List(ctx context.Context) ([]entity.NewsletterSubscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.NewsletterSubscription), args.Error(1)
}

// MockAnalyticsEventRepository
type MockAnalyticsEventRepository struct {
	mock.Mock
}

func (m *MockAnalyticsEventRepository) Create(ctx context.Context, event *entity.AnalyticsEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event queue.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// FakeNotifier records contact notifications on a channel so tests can wait
// for the asynchronous send.
type FakeNotifier struct {
	Sent chan Notification
	Err  error
}

type Notification struct {
	Form        entity.ContactForm
	LeadCreated bool
}

func NewFakeNotifier() *FakeNotifier {
	return &FakeNotifier{Sent: make(chan Notification, 8)}
}

func (f *FakeNotifier) SendContactNotification(form entity.ContactForm, leadCreated bool) error {
	f.Sent <- Notification{Form: form, LeadCreated: leadCreated}
	return f.Err
}
