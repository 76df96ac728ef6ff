package items

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ib-77/ropresult/pkg/rop"
	"github.com/ib-77/ropresult/pkg/rop/chain"
	"github.com/ib-77/ropresult/pkg/rop/solo"
)

type Service struct {
	store     Store
	notifier  Notifier
	log       *slog.Logger
	authorize func(ctx context.Context) bool
	now       func() time.Time
}

type Option func(*Service)

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithAuthorizer decides whether the caller in ctx may create items.
func WithAuthorizer(authorize func(ctx context.Context) bool) Option {
	return func(s *Service) { s.authorize = authorize }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(store Store, notifier Notifier, opts ...Option) *Service {
	s := &Service{
		store:     store,
		notifier:  notifier,
		log:       slog.Default(),
		authorize: func(context.Context) bool { return true },
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create runs authorize, validate, persist and notify in order. The first
// failing step ends the chain; later steps do not run.
func (s *Service) Create(ctx context.Context, in CreateInput) rop.Outcome[Item] {
	validated := rop.AndThen(s.Authorize(ctx, in), func(in CreateInput) rop.Outcome[Item] {
		return s.Validate(ctx, in)
	})

	return chain.Start(ctx, validated).
		Then(s.Persist).
		Then(s.Notify).
		Ensure(nil, func(ctx context.Context, e rop.ErrorInfo) {
			s.log.DebugContext(ctx, "create item rejected", slog.String("code", e.Code))
		}).
		Result()
}

func (s *Service) Authorize(ctx context.Context, in CreateInput) rop.Outcome[CreateInput] {
	if !s.authorize(ctx) {
		return rop.Fail[CreateInput](Errors.NotPermitted)
	}
	return rop.Success(in)
}

// Validate checks the input and builds the item to store. It reports the
// first rule the input breaks.
func (s *Service) Validate(ctx context.Context, in CreateInput) rop.Outcome[Item] {
	in.Name = strings.TrimSpace(in.Name)

	checked := solo.ValidateAll(ctx, rop.Success(in), true,
		func(_ context.Context, in CreateInput) rop.Outcome[CreateInput] {
			if in.Name == "" {
				return rop.Fail[CreateInput](Errors.NameRequired)
			}
			return rop.Success(in)
		},
		func(_ context.Context, in CreateInput) rop.Outcome[CreateInput] {
			if utf8.RuneCountInString(in.Name) > MaxNameLength {
				return rop.Fail[CreateInput](Errors.NameTooLong.WithMessagef("name is longer than %d characters", MaxNameLength))
			}
			return rop.Success(in)
		},
		func(_ context.Context, in CreateInput) rop.Outcome[CreateInput] {
			if in.Quantity < 0 {
				return rop.Fail[CreateInput](Errors.QuantityNegative)
			}
			return rop.Success(in)
		},
	)

	first := rop.MapErr(checked, func(errs []rop.ErrorInfo) rop.ErrorInfo { return errs[0] })

	return rop.Map(first, func(in CreateInput) Item {
		return Item{
			ID:        uuid.New(),
			Name:      in.Name,
			Quantity:  in.Quantity,
			CreatedAt: s.now(),
		}
	})
}

func (s *Service) Persist(ctx context.Context, item Item) rop.Outcome[Item] {
	return solo.TryClassified(ctx, rop.Success(item),
		func(ctx context.Context, item Item) (Item, error) {
			return item, s.store.Insert(ctx, item)
		},
		classifyStoreError)
}

func (s *Service) Notify(ctx context.Context, item Item) rop.Outcome[Item] {
	if err := s.notifier.ItemCreated(ctx, item); err != nil {
		return rop.Fail[Item](Errors.NotifyFailed.WithMessage("item notification failed: " + err.Error()))
	}
	return rop.Success(item)
}

// Get looks an item up by its textual id.
func (s *Service) Get(ctx context.Context, id string) rop.Outcome[Item] {
	parsedID, err := uuid.Parse(id)
	parsed := rop.FromPair(parsedID, err, func(error) rop.ErrorInfo { return Errors.InvalidID })

	return solo.TryClassified(ctx, parsed, s.store.Get, classifyStoreError)
}

// classifyStoreError turns store errors into catalog entries. Context
// cancellation keeps its own CANCELED or TIMEOUT code.
func classifyStoreError(err error) rop.ErrorInfo {
	if rop.IsCancellationError(err) {
		return rop.Classify(err)
	}

	switch info := rop.Classify(err); info.Category {
	case rop.CategoryConflict:
		return Errors.ItemExists
	case rop.CategoryNotFound:
		return Errors.ItemNotFound
	default:
		return Errors.StoreFailure.WithMessage("item store failed: " + err.Error())
	}
}
