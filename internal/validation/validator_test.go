package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/ratemyshots/ratemyshots-server/internal/errors"
)

type ratingInput struct {
	ImageID string `json:"image_id" validate:"required"`
	Value   int    `json:"value"    validate:"gte=1,lte=5"`
}

func TestValidatePasses(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(ratingInput{ImageID: "bild-1", Value: 3}))
}

func TestValidateUsesJSONTagNames(t *testing.T) {
	v := New()

	err := v.Validate(ratingInput{Value: 3})
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))

	var domainErr *domainerrors.Error
	require.True(t, domainerrors.As(err, &domainErr))

	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "is required", details["image_id"])
}

func TestValidateRangeMessages(t *testing.T) {
	v := New()

	err := v.Validate(ratingInput{ImageID: "bild-1", Value: 9})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.True(t, domainerrors.As(err, &domainErr))

	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "must be less than or equal to 5", details["value"])
}
