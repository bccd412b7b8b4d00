package impl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/geo"
	"bloodlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type bloodRequestService struct {
	requestRepo      repository.BloodRequestRepository
	donorRepo        repository.DonorRepository
	notificationRepo repository.NotificationRepository
	matcher          usecase.MatchingUsecase
	notifier         usecase.NotificationUsecase
	logger           *slog.Logger
	now              func() time.Time
}

// BloodRequestServiceParams holds dependencies for the blood request service
type BloodRequestServiceParams struct {
	fx.In

	RequestRepo      repository.BloodRequestRepository
	DonorRepo        repository.DonorRepository
	NotificationRepo repository.NotificationRepository
	Matcher          usecase.MatchingUsecase
	Notifier         usecase.NotificationUsecase
	Logger           *slog.Logger
}

// NewBloodRequestService creates a new blood request service instance
func NewBloodRequestService(params BloodRequestServiceParams) usecase.BloodRequestUsecase {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &bloodRequestService{
		requestRepo:      params.RequestRepo,
		donorRepo:        params.DonorRepo,
		notificationRepo: params.NotificationRepo,
		matcher:          params.Matcher,
		notifier:         params.Notifier,
		logger:           logger,
		now:              time.Now,
	}
}

func (srv *bloodRequestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitBloodRequest stores the request and notifies matching donors. Once the
// request is stored the submission succeeds, even if matching or notification fails.
func (srv *bloodRequestService) SubmitBloodRequest(
	ctx context.Context,
	caller entity.Caller,
	input *usecase.SubmitBloodRequestInput,
) (*usecase.SubmitResult, error) {
	bloodType, urgency, err := validateSubmitInput(input)
	if err != nil {
		return nil, err
	}

	requesterID := caller.UserID
	if caller.Anonymous {
		requesterID = uuid.Nil
	}

	now := srv.now()
	request := &entity.BloodRequest{
		ID:            uuid.New(),
		RequesterID:   requesterID,
		BloodType:     bloodType,
		Units:         input.Units,
		Urgency:       urgency,
		HospitalName:  strings.TrimSpace(input.HospitalName),
		ContactNumber: strings.TrimSpace(input.ContactNumber),
		Notes:         strings.TrimSpace(input.Notes),
		Coordinates:   input.Coordinates,
		Status:        entity.RequestStatusActive,
		CreatedAt:     now,
		LastUpdated:   now,
	}

	if err := srv.requestRepo.Save(ctx, request); err != nil {
		srv.log(ctx).Error("Failed to store blood request", slog.Any("error", err))

		return nil, domainerrors.NewStoreExecuteError(err, "persist blood request")
	}

	srv.log(ctx).Info("Blood request submitted",
		slog.String("blood_request_id", request.ID.String()),
		slog.String("blood_type", bloodType.String()),
		slog.String("urgency", urgency.String()),
		slog.Bool("has_location", request.Coordinates != nil),
	)

	notified := 0
	if request.Coordinates != nil {
		notified = srv.notifyMatchingDonors(ctx, request)
	}

	if notified > 0 {
		srv.recordNotifiedDonors(ctx, request.ID, notified)
	}

	return &usecase.SubmitResult{
		RequestID:      request.ID,
		NotifiedDonors: notified,
	}, nil
}

// notifyMatchingDonors returns the number of notifications created. Failures are logged, not returned.
func (srv *bloodRequestService) notifyMatchingDonors(ctx context.Context, request *entity.BloodRequest) int {
	pool, err := srv.donorRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to load donor pool", slog.Any("error", err), slog.String("blood_request_id", request.ID.String()))

		return 0
	}

	// requesters are never alerted about their own request
	donors := make([]*entity.DonorProfile, 0, len(pool))
	for _, donor := range pool {
		if donor != nil && !request.IsAnonymous() && donor.ID == request.RequesterID {
			continue
		}
		donors = append(donors, donor)
	}

	candidates := srv.matcher.FindMatches(*request.Coordinates, request.BloodType, donors, 0)
	if len(candidates) == 0 {
		srv.log(ctx).Info("No matching donors found", slog.String("blood_request_id", request.ID.String()))

		return 0
	}

	created, err := srv.notifier.NotifyMatches(ctx, request, candidates)
	if err != nil {
		srv.log(ctx).Error("Failed to notify matching donors",
			slog.Any("error", err),
			slog.String("blood_request_id", request.ID.String()),
			slog.Int("candidates", len(candidates)),
		)
	}

	return len(created)
}

// recordNotifiedDonors writes the count onto the stored request. Notified donors may already
// have accepted, so the stored copy is reloaded and only an active request is updated.
func (srv *bloodRequestService) recordNotifiedDonors(ctx context.Context, requestID uuid.UUID, notified int) {
	logger := srv.log(ctx).With(
		slog.String("blood_request_id", requestID.String()),
		slog.Int("notified_donors", notified),
	)

	current, err := srv.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		logger.Warn("Failed to reload blood request for notified donor count", slog.Any("error", err))

		return
	}

	if !current.IsActive() {
		logger.Info("Blood request left active state during fan-out; notified donor count not recorded",
			slog.String("status", string(current.Status)),
		)

		return
	}

	current.NotifiedDonors = notified
	if err := srv.requestRepo.Save(ctx, current); err != nil {
		logger.Warn("Failed to record notified donor count", slog.Any("error", err))
	}
}

// AcceptRequest records the donor's acceptance and tells the requester.
// The status check and the write are not atomic; concurrent accepts resolve last-writer-wins.
func (srv *bloodRequestService) AcceptRequest(ctx context.Context, requestID, donorID uuid.UUID) (*usecase.AcceptResult, error) {
	request, err := srv.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if !request.IsActive() {
		return nil, domainerrors.ErrRequestNotActive.WithDetails(fmt.Sprintf("request is %s", request.Status))
	}

	if !request.IsAnonymous() && request.RequesterID == donorID {
		return nil, domainerrors.ErrForbidden.WithDetails("requesters cannot accept their own request")
	}

	donor, err := srv.loadDonor(ctx, donorID)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	request.Status = entity.RequestStatusAccepted
	request.AcceptedBy = &donorID
	request.AcceptedAt = &now
	request.LastUpdated = now

	if err := srv.requestRepo.Save(ctx, request); err != nil {
		srv.log(ctx).Error("Failed to store accepted request", slog.Any("error", err), slog.String("blood_request_id", requestID.String()))

		return nil, domainerrors.NewStoreExecuteError(err, "persist accepted blood request")
	}

	srv.log(ctx).Info("Blood request accepted",
		slog.String("blood_request_id", requestID.String()),
		slog.String("donor_id", donorID.String()),
	)

	if !request.IsAnonymous() {
		if _, err := srv.notifier.NotifyAcceptance(ctx, request, donor); err != nil {
			srv.log(ctx).Warn("Failed to notify requester about acceptance",
				slog.Any("error", err),
				slog.String("blood_request_id", requestID.String()),
			)
		}
	}

	return &usecase.AcceptResult{
		Success: true,
		DonorInfo: &usecase.DonorContact{
			ID:        donor.ID,
			Name:      donor.Name,
			Phone:     donor.Phone,
			BloodType: donor.BloodType,
		},
	}, nil
}

// CancelRequest withdraws an active request on behalf of its requester
func (srv *bloodRequestService) CancelRequest(ctx context.Context, caller entity.Caller, requestID uuid.UUID) (*entity.BloodRequest, error) {
	request, err := srv.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if caller.Anonymous || request.IsAnonymous() || request.RequesterID != caller.UserID {
		return nil, domainerrors.ErrForbidden.WithDetails("only the requester can cancel this request")
	}

	if !request.IsActive() {
		return nil, domainerrors.ErrRequestNotActive.WithDetails(fmt.Sprintf("request is %s", request.Status))
	}

	request.Status = entity.RequestStatusCancelled
	request.LastUpdated = srv.now()

	if err := srv.requestRepo.Save(ctx, request); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "persist cancelled blood request")
	}

	srv.log(ctx).Info("Blood request cancelled", slog.String("blood_request_id", requestID.String()))

	return request, nil
}

// MarkNotificationRead flags the notification as read. Already-read notifications are left untouched.
func (srv *bloodRequestService) MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	notification, err := srv.notificationRepo.FindByID(ctx, userID, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound.WrapMessage("mark notification read")
		}

		return errors.Wrap(err, "failed to find notification")
	}

	if notification.Read {
		return nil
	}

	notification.MarkRead(srv.now())
	if err := srv.notificationRepo.Save(ctx, notification); err != nil {
		return domainerrors.NewStoreExecuteError(err, "persist notification read state")
	}

	return nil
}

func (srv *bloodRequestService) GetRequest(ctx context.Context, requestID uuid.UUID) (*entity.BloodRequest, error) {
	return srv.loadRequest(ctx, requestID)
}

// ListRequestsByRequester returns the requester's requests, newest first
func (srv *bloodRequestService) ListRequestsByRequester(ctx context.Context, requesterID uuid.UUID) ([]*entity.BloodRequest, error) {
	all, err := srv.requestRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blood requests")
	}

	requests := make([]*entity.BloodRequest, 0)
	for _, request := range all {
		if request.RequesterID == requesterID {
			requests = append(requests, request)
		}
	}
	slices.SortStableFunc(requests, func(a, b *entity.BloodRequest) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})

	return requests, nil
}

// FindCandidates re-runs the matcher for a stored request without notifying anyone
func (srv *bloodRequestService) FindCandidates(ctx context.Context, requestID uuid.UUID, radiusKm float64) (*usecase.CandidateList, error) {
	request, err := srv.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if radiusKm <= 0 {
		radiusKm = srv.matcher.DefaultRadiusKm()
	}

	result := &usecase.CandidateList{
		Request:    request,
		RadiusKm:   radiusKm,
		Candidates: []*usecase.DonorCandidate{},
	}
	if request.Coordinates == nil {
		return result, nil
	}

	pool, err := srv.donorRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load donor pool")
	}

	for _, match := range srv.matcher.FindMatches(*request.Coordinates, request.BloodType, pool, radiusKm) {
		result.Candidates = append(result.Candidates, usecase.NewDonorCandidate(match))
	}

	return result, nil
}

// NearbyRequests lists active requests the donor can supply, most urgent first, then nearest
func (srv *bloodRequestService) NearbyRequests(ctx context.Context, donorID uuid.UUID, radiusKm float64) ([]*usecase.NearbyRequest, error) {
	donor, err := srv.loadDonor(ctx, donorID)
	if err != nil {
		return nil, err
	}

	if !donor.HasLocation() {
		return nil, domainerrors.ErrDonorLocationUnknown
	}

	if radiusKm <= 0 {
		radiusKm = srv.matcher.DefaultRadiusKm()
	}

	all, err := srv.requestRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blood requests")
	}

	nearby := make([]*usecase.NearbyRequest, 0)
	for _, request := range all {
		if !request.IsActive() || request.Coordinates == nil {
			continue
		}
		if !request.IsAnonymous() && request.RequesterID == donorID {
			continue
		}
		if !entity.IsCompatible(donor.BloodType, request.BloodType) {
			continue
		}

		distance := geo.DistanceKm(donor.Coordinates.Lat, donor.Coordinates.Lng, request.Coordinates.Lat, request.Coordinates.Lng)
		if distance > radiusKm {
			continue
		}

		nearby = append(nearby, &usecase.NearbyRequest{Request: request, DistanceKm: distance})
	}

	slices.SortStableFunc(nearby, func(a, b *usecase.NearbyRequest) int {
		if byUrgency := cmp.Compare(b.Request.Urgency.Rank(), a.Request.Urgency.Rank()); byUrgency != 0 {
			return byUrgency
		}

		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})

	return nearby, nil
}

func (srv *bloodRequestService) loadRequest(ctx context.Context, requestID uuid.UUID) (*entity.BloodRequest, error) {
	request, err := srv.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrBloodRequestNotFound) {
			return nil, domainerrors.ErrBloodRequestNotFound.WrapMessage(requestID.String())
		}

		return nil, errors.Wrap(err, "failed to find blood request")
	}

	return request, nil
}

func (srv *bloodRequestService) loadDonor(ctx context.Context, donorID uuid.UUID) (*entity.DonorProfile, error) {
	donor, err := srv.donorRepo.FindByID(ctx, donorID)
	if err != nil {
		if errors.Is(err, repository.ErrDonorNotFound) {
			return nil, domainerrors.ErrDonorNotFound.WrapMessage(donorID.String())
		}

		return nil, errors.Wrap(err, "failed to find donor profile")
	}

	return donor, nil
}

func validateSubmitInput(input *usecase.SubmitBloodRequestInput) (entity.BloodType, entity.Urgency, error) {
	if input == nil {
		return "", "", domainerrors.ErrValidationFailed.WithDetails("request body is required")
	}

	if strings.TrimSpace(input.BloodType) == "" {
		return "", "", domainerrors.ErrValidationFailed.WithDetails("blood_type is required")
	}
	bloodType, ok := entity.ParseBloodType(input.BloodType)
	if !ok {
		return "", "", domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unsupported blood_type %q", input.BloodType))
	}

	if input.Units <= 0 {
		return "", "", domainerrors.ErrValidationFailed.WithDetails("units must be a positive integer")
	}

	urgency := entity.DefaultUrgency
	if strings.TrimSpace(input.Urgency) != "" {
		parsed, ok := entity.ParseUrgency(input.Urgency)
		if !ok {
			return "", "", domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unsupported urgency %q", input.Urgency))
		}
		urgency = parsed
	}

	if input.Coordinates != nil && !input.Coordinates.IsValid() {
		return "", "", domainerrors.ErrValidationFailed.WithDetails("coordinates must be finite and within range")
	}

	return bloodType, urgency, nil
}
