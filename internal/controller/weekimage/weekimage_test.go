package weekimage

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentdesk/interview-scheduler/internal/model"
)

func TestRender(t *testing.T) {
	windows := []model.AvailabilityWindow{
		{DayOfWeek: "Monday", StartTime: model.TimeOfDay{Hour: 9}, EndTime: model.TimeOfDay{Hour: 10}, Active: true},
		{DayOfWeek: "Wednesday", StartTime: model.TimeOfDay{Hour: 14}, EndTime: model.TimeOfDay{Hour: 16, Minute: 30}, Active: true},
		{DayOfWeek: "Friday", StartTime: model.TimeOfDay{Hour: 11}, EndTime: model.TimeOfDay{Hour: 12}, Active: false},
	}

	data, err := Render("Acme Staffing", windows)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, imageWidth, img.Bounds().Dx())
	assert.Equal(t, imageHeight, img.Bounds().Dy())
}

func TestRenderEmptySchedule(t *testing.T) {
	data, err := Render("Acme Staffing", nil)
	require.NoError(t, err)

	_, err = png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
}
