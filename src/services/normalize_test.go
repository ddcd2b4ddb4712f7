package services

import (
	"encoding/json"
	"testing"

	"github.com/alpinemaps/venue-map-server/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryList_CommaSeparatedString(t *testing.T) {
	var cl CategoryList
	require.NoError(t, json.Unmarshal([]byte(`"bars, clubs"`), &cl))
	assert.Equal(t, CategoryList{"bars", "clubs"}, cl)
}

func TestCategoryList_Array(t *testing.T) {
	var cl CategoryList
	require.NoError(t, json.Unmarshal([]byte(`[" bars", "clubs "]`), &cl))
	assert.Equal(t, CategoryList{"bars", "clubs"}, cl)
}

func TestCategoryList_RejectsOtherTypes(t *testing.T) {
	var cl CategoryList
	assert.Error(t, json.Unmarshal([]byte(`42`), &cl))
}

func TestFlexInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "number", input: `7`, want: 7},
		{name: "numeric string", input: `"7"`, want: 7},
		{name: "padded string", input: `" 7 "`, want: 7},
		{name: "float truncates", input: `7.9`, want: 7},
		{name: "garbage string", input: `"seven"`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fi FlexInt
			err := json.Unmarshal([]byte(tt.input), &fi)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, int(fi))
		})
	}
}

func TestLocationInput_LatLng(t *testing.T) {
	var li LocationInput
	require.NoError(t, json.Unmarshal([]byte(`{"lat": 46.23, "lng": 10.82}`), &li))
	assert.Equal(t, models.GeoPoint{Type: "Point", Coordinates: []float64{10.82, 46.23}}, li.Point())
}

func TestLocationInput_GeoJSON(t *testing.T) {
	var li LocationInput
	require.NoError(t, json.Unmarshal([]byte(`{"type": "Point", "coordinates": [10.82, 46.23]}`), &li))
	assert.Equal(t, models.GeoPoint{Type: "Point", Coordinates: []float64{10.82, 46.23}}, li.Point())
}

func TestLocationInput_Invalid(t *testing.T) {
	var li LocationInput
	assert.Error(t, json.Unmarshal([]byte(`{"x": 1}`), &li))
}

func TestClampImportance(t *testing.T) {
	assert.Equal(t, 10, clampImportance(15))
	assert.Equal(t, 1, clampImportance(-3))
	assert.Equal(t, 5, clampImportance(5))
	assert.Equal(t, 1, clampImportance(1))
	assert.Equal(t, 10, clampImportance(10))
}
