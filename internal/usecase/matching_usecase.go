package usecase

import "bloodlink/internal/domain/entity"

// MatchingUsecase selects the donors that can serve a blood request
type MatchingUsecase interface {
	// FindMatches filters the pool by availability, compatibility and radius and
	// returns candidates ordered by ascending distance. A radius <= 0 means the default radius.
	FindMatches(origin entity.Coordinates, requested entity.BloodType, pool []*entity.DonorProfile, radiusKm float64) []entity.MatchCandidate

	// DefaultRadiusKm returns the radius used when callers pass a non-positive one.
	DefaultRadiusKm() float64
}
