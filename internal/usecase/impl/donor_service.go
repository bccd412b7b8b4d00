package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type donorService struct {
	donorRepo repository.DonorRepository
	logger    *slog.Logger
	now       func() time.Time
}

// DonorServiceParams holds dependencies for the donor service
type DonorServiceParams struct {
	fx.In

	DonorRepo repository.DonorRepository
	Logger    *slog.Logger
}

// NewDonorService creates a new donor profile service instance
func NewDonorService(params DonorServiceParams) usecase.DonorUsecase {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &donorService{
		donorRepo: params.DonorRepo,
		logger:    logger,
		now:       time.Now,
	}
}

func (srv *donorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpsertDonorProfile creates the caller's donor profile or updates the provided fields.
// New profiles start available unless told otherwise.
func (srv *donorService) UpsertDonorProfile(
	ctx context.Context,
	donorID uuid.UUID,
	input *usecase.UpsertDonorProfileInput,
) (*entity.DonorProfile, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("request body is required")
	}

	bloodType, ok := entity.ParseBloodType(input.BloodType)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unsupported blood_type %q", input.BloodType))
	}

	if input.Coordinates != nil && !input.Coordinates.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("coordinates must be finite and within range")
	}

	donor, err := srv.donorRepo.FindByID(ctx, donorID)
	switch {
	case errors.Is(err, repository.ErrDonorNotFound):
		donor = &entity.DonorProfile{ID: donorID, IsAvailable: true}
	case err != nil:
		return nil, errors.Wrap(err, "failed to find donor profile")
	}

	donor.Name = strings.TrimSpace(input.Name)
	donor.Phone = strings.TrimSpace(input.Phone)
	donor.BloodType = bloodType
	if input.IsAvailable != nil {
		donor.IsAvailable = *input.IsAvailable
	}
	if input.Coordinates != nil {
		donor.Coordinates = input.Coordinates
	}
	if input.PushToken != nil {
		donor.PushToken = strings.TrimSpace(*input.PushToken)
	}
	donor.UpdatedAt = srv.now()

	if err := srv.save(ctx, donor); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Donor profile saved",
		slog.String("donor_id", donorID.String()),
		slog.String("blood_type", bloodType.String()),
		slog.Bool("is_available", donor.IsAvailable),
	)

	return donor, nil
}

// GetDonorProfile retrieves the donor profile
func (srv *donorService) GetDonorProfile(ctx context.Context, donorID uuid.UUID) (*entity.DonorProfile, error) {
	donor, err := srv.donorRepo.FindByID(ctx, donorID)
	if err != nil {
		if errors.Is(err, repository.ErrDonorNotFound) {
			return nil, domainerrors.ErrDonorNotFound.WrapMessage(donorID.String())
		}

		return nil, errors.Wrap(err, "failed to find donor profile")
	}

	return donor, nil
}

// SetAvailability toggles whether the donor is considered by the matcher
func (srv *donorService) SetAvailability(ctx context.Context, donorID uuid.UUID, available bool) (*entity.DonorProfile, error) {
	donor, err := srv.GetDonorProfile(ctx, donorID)
	if err != nil {
		return nil, err
	}

	if donor.IsAvailable == available {
		return donor, nil
	}

	donor.IsAvailable = available
	donor.UpdatedAt = srv.now()
	if err := srv.save(ctx, donor); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Donor availability changed", slog.String("donor_id", donorID.String()), slog.Bool("is_available", available))

	return donor, nil
}

func (srv *donorService) save(ctx context.Context, donor *entity.DonorProfile) error {
	if err := srv.donorRepo.Save(ctx, donor); err != nil {
		if errors.Is(err, repository.ErrDonorRepositoryReadOnly) {
			return domainerrors.ErrDonorProfileReadOnly
		}

		return domainerrors.NewStoreExecuteError(err, "persist donor profile")
	}

	return nil
}
