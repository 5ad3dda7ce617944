package impl

import (
	"context"
	"log/slog"
	"time"

	"pricefield/config"
	"pricefield/internal/domain/entity"
	domainerrors "pricefield/internal/domain/errors"
	"pricefield/internal/domain/repository"
	"pricefield/internal/domain/service"
	"pricefield/internal/errors"
	"pricefield/internal/usecase"

	"go.uber.org/fx"
)

const defaultPlanDays = 30

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	paymentRepo      repository.PaymentRepository
	userRepo         repository.UserRepository
	config           *config.Config
	clock            service.Clock
	idGen            service.IDGenerator
	logger           *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	PaymentRepo      repository.PaymentRepository
	UserRepo         repository.UserRepository
	Config           *config.Config
	Clock            service.Clock
	IDGen            service.IDGenerator
	Logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		paymentRepo:      params.PaymentRepo,
		userRepo:         params.UserRepo,
		config:           params.Config,
		clock:            params.Clock,
		idGen:            params.IDGen,
		logger:           params.Logger,
	}
}

func (s *subscriptionService) planDays() int {
	if s.config != nil && s.config.Subscriptions != nil && s.config.Subscriptions.PlanDays > 0 {
		return s.config.Subscriptions.PlanDays
	}

	return defaultPlanDays
}

// Subscribe starts a subscription for the user. Any prior active
// subscription is cancelled first (a state transition, never a
// deletion), the payment is recorded, and the user is flagged premium
// until the plan expiry.
func (s *subscriptionService) Subscribe(ctx context.Context, input usecase.SubscribeInput) (*entity.Subscription, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.ErrInvalidSubscriptionAmount
	}

	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	now := s.clock.Now()

	prior, err := s.subscriptionRepo.FindActiveByUser(ctx, input.UserID)
	if err != nil && !errors.Is(err, repository.ErrSubscriptionNotFound) {
		return nil, errors.Wrap(err, "failed to find active subscription")
	}
	if prior != nil {
		prior.Status = entity.SubscriptionStatusCancelled
		prior.UpdatedAt = now
		if err := s.subscriptionRepo.Save(ctx, prior); err != nil {
			return nil, errors.Wrap(err, "failed to cancel prior subscription")
		}
	}

	expiresAt := now.AddDate(0, 0, s.planDays())
	subscription := &entity.Subscription{
		ID:        s.idGen.NewID("sub"),
		UserID:    input.UserID,
		Plan:      input.Plan,
		Status:    entity.SubscriptionStatusActive,
		StartsAt:  now,
		ExpiresAt: expiresAt,
		Amount:    input.Amount,
		AutoRenew: input.AutoRenew,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.subscriptionRepo.Save(ctx, subscription); err != nil {
		return nil, errors.Wrap(err, "failed to save subscription")
	}

	payment := &entity.Payment{
		ID:        s.idGen.NewID("pay"),
		UserID:    input.UserID,
		Type:      entity.PaymentTypeSubscription,
		Amount:    input.Amount,
		Currency:  "TWD",
		Reference: subscription.ID,
		CreatedAt: now,
	}
	if err := s.paymentRepo.Append(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to record payment")
	}

	user.IsPremium = true
	user.PremiumExpiresAt = &expiresAt
	user.UpdatedAt = now
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to save user")
	}

	return subscription, nil
}

// CancelSubscription cancels the user's active subscription and clears
// the premium flag
func (s *subscriptionService) CancelSubscription(ctx context.Context, userID string) error {
	subscription, err := s.subscriptionRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return domainerrors.ErrSubscriptionNotFound
		}

		return errors.Wrap(err, "failed to find active subscription")
	}

	now := s.clock.Now()
	subscription.Status = entity.SubscriptionStatusCancelled
	subscription.UpdatedAt = now
	if err := s.subscriptionRepo.Save(ctx, subscription); err != nil {
		return errors.Wrap(err, "failed to save subscription")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user by id")
	}
	user.IsPremium = false
	user.PremiumExpiresAt = nil
	user.UpdatedAt = now

	if err := s.userRepo.Save(ctx, user); err != nil {
		return errors.Wrap(err, "failed to save user")
	}

	return nil
}

// GetActiveSubscription retrieves the user's active subscription
func (s *subscriptionService) GetActiveSubscription(ctx context.Context, userID string) (*entity.Subscription, error) {
	subscription, err := s.subscriptionRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, domainerrors.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find active subscription")
	}

	return subscription, nil
}

// ListUserSubscriptions retrieves the user's subscriptions, newest first
func (s *subscriptionService) ListUserSubscriptions(ctx context.Context, userID string) ([]*entity.Subscription, error) {
	subscriptions, err := s.subscriptionRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions by user")
	}

	return subscriptions, nil
}

// ExpireDue marks active subscriptions past their expiry as expired
// and clears the premium flag on their users
func (s *subscriptionService) ExpireDue(ctx context.Context) (int, error) {
	subscriptions, err := s.subscriptionRepo.FindAll(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load subscriptions")
	}

	now := s.clock.Now()
	expired := 0
	for _, sub := range subscriptions {
		if sub.Status != entity.SubscriptionStatusActive || sub.ExpiresAt.After(now) {
			continue
		}

		sub.Status = entity.SubscriptionStatusExpired
		sub.UpdatedAt = now
		if err := s.subscriptionRepo.Save(ctx, sub); err != nil {
			return expired, errors.Wrap(err, "failed to save subscription")
		}
		expired++

		if err := s.clearPremium(ctx, sub.UserID, now); err != nil {
			// The sweep keeps going; the user record catches up on the
			// next run.
			s.logger.Warn("failed to clear premium flag",
				slog.String("user_id", sub.UserID),
				slog.Any("error", err),
			)
		}
	}

	return expired, nil
}

func (s *subscriptionService) clearPremium(ctx context.Context, userID string, now time.Time) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to find user by id")
	}

	user.IsPremium = false
	user.PremiumExpiresAt = nil
	user.UpdatedAt = now

	return errors.Wrap(s.userRepo.Save(ctx, user), "failed to save user")
}
