package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationInputValidate(t *testing.T) {
	lat := 10.0

	tests := []struct {
		name    string
		loc     LocationInput
		wantErr bool
	}{
		{name: "address", loc: AddressLocation("1 Main St")},
		{name: "point", loc: PointLocation(51.5, -0.12)},
		{name: "empty", loc: LocationInput{}, wantErr: true},
		{name: "blank address", loc: AddressLocation("   "), wantErr: true},
		{name: "both forms", loc: LocationInput{Address: "x", Lat: &lat, Lng: &lat}, wantErr: true},
		{name: "lat without lng", loc: LocationInput{Lat: &lat}, wantErr: true},
		{name: "lat out of range", loc: PointLocation(91, 0), wantErr: true},
		{name: "lng out of range", loc: PointLocation(0, -181), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.loc.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidLocation))
		})
	}
}

func TestLocationInputJSON(t *testing.T) {
	b, err := json.Marshal(AddressLocation("Paris"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"address":"Paris"}`, string(b))

	b, err = json.Marshal(PointLocation(48.85, 2.35))
	require.NoError(t, err)
	assert.JSONEq(t, `{"lat":48.85,"lng":2.35}`, string(b))
}

func TestLocationInputString(t *testing.T) {
	assert.Equal(t, "10 Downing St", AddressLocation("  10   Downing St ").String())
	assert.Equal(t, "48.8566, 2.3522", PointLocation(48.8566, 2.3522).String())
}
