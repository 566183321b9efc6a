package domain

import (
	"testing"

	"fortio.org/assert"

	"github.com/featuremesh/featuremesh-go-sdk/constants"
)

func TestFieldSpecRoundTrip(t *testing.T) {
	field := Field{Name: "age", Type: constants.FS_INT32}
	assert.Equal(t, field.String(), "age (INT32)")
	assert.Equal(t, FieldFromSpec(field.Spec()), field)

	array := Field{Name: "scores", Type: constants.FS_ARRAY_FLOAT}
	assert.Equal(t, array.Spec().ValueType, "ARRAY<FLOAT>")
	assert.Equal(t, FieldFromSpec(array.Spec()), array)
}
