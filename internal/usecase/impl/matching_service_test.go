package impl

import (
	"testing"

	"bloodlink/config"
	"bloodlink/internal/domain/constants"
	"bloodlink/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var newYork = entity.Coordinates{Lat: 40.7128, Lng: -74.0060}

// donorAt places a donor north of newYork at the given latitude.
func donorAt(bloodType entity.BloodType, lat float64) *entity.DonorProfile {
	return &entity.DonorProfile{
		ID:          uuid.New(),
		BloodType:   bloodType,
		IsAvailable: true,
		Coordinates: &entity.Coordinates{Lat: lat, Lng: newYork.Lng},
	}
}

func newTestMatcher(policy string) *matchingService {
	cfg := &config.Config{
		Matching: &config.MatchingConfig{
			DefaultRadiusKm:       15,
			MaxRadiusKm:           100,
			UnknownLocationPolicy: policy,
		},
	}

	return NewMatchingService(MatchingServiceParams{Config: cfg}).(*matchingService)
}

func TestNewMatchingService_Defaults(t *testing.T) {
	srv := NewMatchingService(MatchingServiceParams{Config: &config.Config{}}).(*matchingService)

	assert.Equal(t, defaultMatchRadiusKm, srv.DefaultRadiusKm())
	assert.Equal(t, defaultMaxRadiusKm, srv.maxRadiusKm)
	assert.Equal(t, constants.UnknownLocationExclude, srv.unknownLocationPolicy)
}

func TestMatchingService_FindMatches_RadiusIsInclusive(t *testing.T) {
	srv := newTestMatcher(constants.UnknownLocationExclude)

	inside := donorAt(entity.BloodTypeOPositive, 40.8468)  // 14.9 km
	outside := donorAt(entity.BloodTypeOPositive, 40.8486) // 15.1 km
	edge := donorAt(entity.BloodTypeOPositive, 40.8477)    // 15.0 km

	matches := srv.FindMatches(newYork, entity.BloodTypeOPositive, []*entity.DonorProfile{outside, inside}, 15)
	require.Len(t, matches, 1)
	assert.Equal(t, inside.ID, matches[0].Donor.ID)
	assert.Equal(t, 14.9, matches[0].DistanceKm)

	matches = srv.FindMatches(newYork, entity.BloodTypeOPositive, []*entity.DonorProfile{edge}, 15)
	require.Len(t, matches, 1)
	assert.Equal(t, 15.0, matches[0].DistanceKm)
}

func TestMatchingService_FindMatches_SortedByDistance(t *testing.T) {
	srv := newTestMatcher(constants.UnknownLocationExclude)

	far := donorAt(entity.BloodTypeONegative, 40.7865)   // 8.2 km
	near := donorAt(entity.BloodTypeOPositive, 40.7218)  // 1.0 km
	mid := donorAt(entity.BloodTypeABPositive, 40.7623)  // 5.5 km, AB+ request accepts anyone

	matches := srv.FindMatches(newYork, entity.BloodTypeABPositive, []*entity.DonorProfile{far, near, mid}, 15)

	require.Len(t, matches, 3)
	assert.Equal(t, []float64{1.0, 5.5, 8.2}, []float64{matches[0].DistanceKm, matches[1].DistanceKm, matches[2].DistanceKm})
	assert.Equal(t, near.ID, matches[0].Donor.ID)
	assert.Equal(t, mid.ID, matches[1].Donor.ID)
	assert.Equal(t, far.ID, matches[2].Donor.ID)
}

func TestMatchingService_FindMatches_StableForEqualDistances(t *testing.T) {
	srv := newTestMatcher(constants.UnknownLocationExclude)

	first := donorAt(entity.BloodTypeOPositive, 40.7623)
	second := donorAt(entity.BloodTypeOPositive, 40.7623)

	matches := srv.FindMatches(newYork, entity.BloodTypeOPositive, []*entity.DonorProfile{first, second}, 15)

	require.Len(t, matches, 2)
	assert.Equal(t, first.ID, matches[0].Donor.ID)
	assert.Equal(t, second.ID, matches[1].Donor.ID)
}

func TestMatchingService_FindMatches_Filters(t *testing.T) {
	srv := newTestMatcher(constants.UnknownLocationExclude)

	unavailable := donorAt(entity.BloodTypeOPositive, 40.7218)
	unavailable.IsAvailable = false
	incompatible := donorAt(entity.BloodTypeAPositive, 40.7218)
	unknownType := donorAt("", 40.7218)
	noLocation := donorAt(entity.BloodTypeOPositive, 0)
	noLocation.Coordinates = nil
	eligible := donorAt(entity.BloodTypeOPositive, 40.7218)

	pool := []*entity.DonorProfile{unavailable, incompatible, unknownType, noLocation, nil, eligible}
	matches := srv.FindMatches(newYork, entity.BloodTypeOPositive, pool, 15)

	require.Len(t, matches, 1)
	assert.Equal(t, eligible.ID, matches[0].Donor.ID)
}

func TestMatchingService_FindMatches_DefaultRadius(t *testing.T) {
	srv := newTestMatcher(constants.UnknownLocationExclude)

	inside := donorAt(entity.BloodTypeOPositive, 40.8468)  // 14.9 km
	outside := donorAt(entity.BloodTypeOPositive, 40.8927) // 20.0 km

	for _, radius := range []float64{0, -3} {
		matches := srv.FindMatches(newYork, entity.BloodTypeOPositive, []*entity.DonorProfile{inside, outside}, radius)
		require.Len(t, matches, 1)
		assert.Equal(t, inside.ID, matches[0].Donor.ID)
	}

	matches := srv.FindMatches(newYork, entity.BloodTypeOPositive, []*entity.DonorProfile{inside, outside}, 25)
	assert.Len(t, matches, 2)
}

func TestMatchingService_FindMatches_EmptyPool(t *testing.T) {
	srv := newTestMatcher(constants.UnknownLocationExclude)

	matches := srv.FindMatches(newYork, entity.BloodTypeOPositive, nil, 15)

	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestMatchingService_FindMatches_PseudoNearPolicy(t *testing.T) {
	srv := newTestMatcher(constants.UnknownLocationPseudoNear)

	donor := donorAt(entity.BloodTypeOPositive, 0)
	donor.Coordinates = nil

	first := srv.FindMatches(newYork, entity.BloodTypeOPositive, []*entity.DonorProfile{donor}, 15)
	second := srv.FindMatches(newYork, entity.BloodTypeOPositive, []*entity.DonorProfile{donor}, 15)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.True(t, first[0].Estimated)
	assert.Equal(t, first[0].DistanceKm, second[0].DistanceKm)
	assert.GreaterOrEqual(t, first[0].DistanceKm, 1.0)
	assert.Less(t, first[0].DistanceKm, 11.0)
}

func TestPseudoNearDistanceKm_Range(t *testing.T) {
	for i := 0; i < 500; i++ {
		d := pseudoNearDistanceKm(&entity.DonorProfile{ID: uuid.New()})
		assert.GreaterOrEqual(t, d, pseudoNearMinKm)
		assert.Less(t, d, pseudoNearMinKm+pseudoNearSpanKm)
	}
}
