package commands

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/commands/admin.go -package=commandsmock

import (
	"context"
	"log/slog"

	"atlas-hotel/internal/domain/booking"
	"atlas-hotel/internal/infra"
	"atlas-hotel/internal/pkg/clock"
	"atlas-hotel/internal/pkg/errs"
	"atlas-hotel/internal/pkg/jwt"
	"atlas-hotel/internal/pkg/password"
	"atlas-hotel/internal/usecase/shared"
)

const adminSubject = "admin"

type LoginResult struct {
	AccessToken string
	ExpiresIn   int64
}

type AdminCommands interface {
	Login(ctx context.Context, plain string) (*LoginResult, error)
	ChangeBookingStatus(ctx context.Context, id, status string) (*booking.Booking, error)
}

type adminCommandsImpl struct {
	uow          shared.UnitOfWork
	jwtService   *jwt.Service
	passwordHash string
	publisher    shared.EventPublisher
	clock        clock.Clock
}

func NewAdminCommands(
	uow shared.UnitOfWork,
	jwtService *jwt.Service,
	passwordHash string,
	publisher shared.EventPublisher,
	clk clock.Clock,
) AdminCommands {
	return &adminCommandsImpl{
		uow:          uow,
		jwtService:   jwtService,
		passwordHash: passwordHash,
		publisher:    publisher,
		clock:        clk,
	}
}

func (uc *adminCommandsImpl) Login(_ context.Context, plain string) (*LoginResult, error) {
	if uc.passwordHash == "" || plain == "" {
		return nil, errs.ErrInvalidCredentials
	}
	if err := password.Check(uc.passwordHash, plain); err != nil {
		slog.Warn("admin login rejected")
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	token, err := uc.jwtService.GenerateAdminToken(adminSubject)
	if err != nil {
		return nil, errs.Wrap(err, "generate admin token")
	}
	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   int64(uc.jwtService.Duration().Seconds()),
	}, nil
}

func (uc *adminCommandsImpl) ChangeBookingStatus(ctx context.Context, id, status string) (*booking.Booking, error) {
	next, ok := booking.ParseStatus(status)
	if !ok {
		return nil, errs.ErrInvalidStatus
	}

	var updated *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().GetForUpdate(ctx, id)
		if derr != nil {
			return derr
		}
		if derr = b.ChangeStatus(next, uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Bookings().Update(ctx, b); derr != nil {
			return derr
		}
		updated = b
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, err
	}

	publish(ctx, uc.publisher, shared.Event{
		Topic:      shared.TopicBookingStatusChanged,
		Reference:  updated.ID(),
		OccurredAt: updated.UpdatedAt(),
		Data:       map[string]any{"status": updated.Status()},
	})
	return updated, nil
}
