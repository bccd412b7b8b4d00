package impl

import (
	"cmp"
	"hash/fnv"
	"slices"

	"bloodlink/config"
	"bloodlink/internal/domain/constants"
	"bloodlink/internal/domain/entity"
	"bloodlink/internal/geo"
	"bloodlink/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultMatchRadiusKm = 15.0
	defaultMaxRadiusKm   = 100.0

	// Pseudo-near distances fall in [pseudoNearMinKm, pseudoNearMinKm+pseudoNearSpanKm).
	pseudoNearMinKm  = 1.0
	pseudoNearSpanKm = 10.0
)

type matchingService struct {
	defaultRadiusKm       float64
	maxRadiusKm           float64
	unknownLocationPolicy string
}

// MatchingServiceParams holds dependencies for the matching service
type MatchingServiceParams struct {
	fx.In

	Config *config.Config
}

// NewMatchingService creates a new matching service instance
func NewMatchingService(params MatchingServiceParams) usecase.MatchingUsecase {
	srv := &matchingService{
		defaultRadiusKm:       defaultMatchRadiusKm,
		maxRadiusKm:           defaultMaxRadiusKm,
		unknownLocationPolicy: constants.UnknownLocationExclude,
	}

	if params.Config == nil || params.Config.Matching == nil {
		return srv
	}

	matching := params.Config.Matching
	if matching.DefaultRadiusKm > 0 {
		srv.defaultRadiusKm = matching.DefaultRadiusKm
	}
	if matching.MaxRadiusKm > 0 {
		srv.maxRadiusKm = matching.MaxRadiusKm
	}
	if matching.UnknownLocationPolicy == constants.UnknownLocationPseudoNear {
		srv.unknownLocationPolicy = constants.UnknownLocationPseudoNear
	}

	return srv
}

// DefaultRadiusKm returns the radius used for non-positive inputs
func (srv *matchingService) DefaultRadiusKm() float64 {
	return srv.defaultRadiusKm
}

// FindMatches filters the donor pool and orders the candidates by distance
func (srv *matchingService) FindMatches(
	origin entity.Coordinates,
	requested entity.BloodType,
	pool []*entity.DonorProfile,
	radiusKm float64,
) []entity.MatchCandidate {
	radiusKm = srv.effectiveRadius(radiusKm)
	candidates := make([]entity.MatchCandidate, 0)

	for _, donor := range pool {
		if donor == nil || !donor.IsAvailable || !donor.BloodType.IsValid() {
			continue
		}
		if !entity.IsCompatible(donor.BloodType, requested) {
			continue
		}

		candidate := entity.MatchCandidate{Donor: donor}
		switch {
		case donor.HasLocation():
			candidate.DistanceKm = geo.DistanceKm(origin.Lat, origin.Lng, donor.Coordinates.Lat, donor.Coordinates.Lng)
		case srv.unknownLocationPolicy == constants.UnknownLocationPseudoNear:
			candidate.DistanceKm = pseudoNearDistanceKm(donor)
			candidate.Estimated = true
		default:
			continue
		}

		if candidate.DistanceKm > radiusKm {
			continue
		}

		candidates = append(candidates, candidate)
	}

	slices.SortStableFunc(candidates, func(a, b entity.MatchCandidate) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})

	return candidates
}

func (srv *matchingService) effectiveRadius(radiusKm float64) float64 {
	if radiusKm <= 0 {
		return srv.defaultRadiusKm
	}
	if radiusKm > srv.maxRadiusKm {
		return srv.maxRadiusKm
	}

	return radiusKm
}

// pseudoNearDistanceKm places a donor without coordinates at a stable synthetic
// distance derived from its ID, so the same donor always ranks the same way.
func pseudoNearDistanceKm(donor *entity.DonorProfile) float64 {
	h := fnv.New64a()
	_, _ = h.Write(donor.ID[:])
	steps := h.Sum64() % uint64(pseudoNearSpanKm*10)

	return pseudoNearMinKm + float64(steps)/10
}
