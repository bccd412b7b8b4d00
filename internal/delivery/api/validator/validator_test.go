package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type donation struct {
	BloodType string `json:"blood_type" validate:"required,blood_type"`
	Urgency   string `json:"urgency,omitempty" validate:"omitempty,urgency"`
	Units     int    `json:"units" validate:"required,gt=0,lte=100"`
	Internal  string `json:"-" validate:"max=3"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   donation
		wantErr []string
	}{
		{
			name:  "valid",
			input: donation{BloodType: "AB-", Urgency: "High", Units: 3},
		},
		{
			name:  "lowercase codes are accepted",
			input: donation{BloodType: "o+", Urgency: "critical", Units: 1},
		},
		{
			name:    "missing blood type",
			input:   donation{Units: 1},
			wantErr: []string{"blood_type is required"},
		},
		{
			name:    "unknown blood type and urgency",
			input:   donation{BloodType: "A", Urgency: "Later", Units: 1},
			wantErr: []string{"blood_type must be one of", "urgency must be one of"},
		},
		{
			name:    "too many units",
			input:   donation{BloodType: "A+", Units: 101},
			wantErr: []string{"units must satisfy lte=100"},
		},
		{
			name:    "field without json name",
			input:   donation{BloodType: "A+", Units: 1, Internal: "long"},
			wantErr: []string{"Internal must satisfy max=3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestRequestValidator_JoinsMessages(t *testing.T) {
	err := New().Validate(&donation{})
	require.Error(t, err)

	assert.Equal(t, "blood_type is required; units is required", err.Error())
}
