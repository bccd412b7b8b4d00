// Package fixture serves a read-only donor pool loaded from a YAML file for demo deployments.
package fixture

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"bloodlink/config"
	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/repository"

	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const donorsKey = "donors"

// donorRepository implements repository.DonorRepository over a fixed donor list.
type donorRepository struct {
	donors []*entity.DonorProfile
	byID   map[uuid.UUID]*entity.DonorProfile
}

// LoadDonors reads the donor fixture at path. Entries are listed under a top-level "donors" key.
func LoadDonors(path string) ([]*entity.DonorProfile, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read donor fixture %s", path)
	}

	var donors []*entity.DonorProfile
	if err := k.UnmarshalWithConf(donorsKey, &donors, koanf.UnmarshalConf{
		Tag: "yaml",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &donors,
			TagName:          "yaml",
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.TextUnmarshallerHookFunc(),
				mapstructure.StringToTimeHookFunc("2006-01-02T15:04:05Z07:00"),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "decode donor fixture %s", path)
	}

	return donors, nil
}

// NewDonorRepository builds a read-only repository from the given donors.
// Duplicate IDs keep the first entry.
func NewDonorRepository(donors []*entity.DonorProfile) repository.DonorRepository {
	repo := &donorRepository{
		donors: make([]*entity.DonorProfile, 0, len(donors)),
		byID:   make(map[uuid.UUID]*entity.DonorProfile, len(donors)),
	}

	for _, donor := range donors {
		if donor == nil {
			continue
		}
		if _, exists := repo.byID[donor.ID]; exists {
			continue
		}
		if bloodType, ok := entity.ParseBloodType(donor.BloodType.String()); ok {
			donor.BloodType = bloodType
		}
		repo.donors = append(repo.donors, donor)
		repo.byID[donor.ID] = donor
	}

	return repo
}

// NewDonorRepositoryFromConfig loads the fixture configured under demo.donorFixturePath.
func NewDonorRepositoryFromConfig(cfg *config.Config, logger *slog.Logger) (repository.DonorRepository, error) {
	if cfg.Demo == nil || strings.TrimSpace(cfg.Demo.DonorFixturePath) == "" {
		return nil, errors.New("demo.donorFixturePath is required when demo mode is enabled")
	}

	donors, err := LoadDonors(cfg.Demo.DonorFixturePath)
	if err != nil {
		return nil, err
	}

	repo := NewDonorRepository(donors)
	if logger != nil {
		logger.Info("Loaded demo donor fixture",
			slog.String("path", cfg.Demo.DonorFixturePath),
			slog.Int("donors", len(repo.(*donorRepository).donors)),
		)
	}

	return repo, nil
}

// Save always fails; fixture donors cannot be edited.
func (repo *donorRepository) Save(_ context.Context, _ *entity.DonorProfile) error {
	return repository.ErrDonorRepositoryReadOnly
}

// FindByID returns a copy of the fixture donor.
func (repo *donorRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.DonorProfile, error) {
	donor, ok := repo.byID[id]
	if !ok {
		return nil, repository.ErrDonorNotFound
	}

	return cloneDonor(donor), nil
}

// FindAll returns copies of every fixture donor in file order.
func (repo *donorRepository) FindAll(_ context.Context) ([]*entity.DonorProfile, error) {
	donors := make([]*entity.DonorProfile, 0, len(repo.donors))
	for _, donor := range repo.donors {
		donors = append(donors, cloneDonor(donor))
	}

	return slices.Clip(donors), nil
}

func cloneDonor(donor *entity.DonorProfile) *entity.DonorProfile {
	clone := *donor
	if donor.Coordinates != nil {
		coords := *donor.Coordinates
		clone.Coordinates = &coords
	}

	return &clone
}
