package domain

import (
	"testing"

	"fortio.org/assert"

	"github.com/featuremesh/featuremesh-go-sdk/constants"
)

func TestSampleValueInference(t *testing.T) {
	// a probe value must infer back to the type it was built for
	testcases := []constants.FSType{
		constants.FS_INT32,
		constants.FS_INT64,
		constants.FS_FLOAT,
		constants.FS_DOUBLE,
		constants.FS_STRING,
		constants.FS_BOOLEAN,
		constants.FS_TIMESTAMP,
		constants.FS_ARRAY_INT64,
		constants.FS_ARRAY_FLOAT,
		constants.FS_ARRAY_STRING,
		constants.FS_ARRAY_ARRAY_FLOAT,
		constants.FS_MAP_STRING_DOUBLE,
		constants.FS_MAP_INT64_STRING,
	}
	for _, fsType := range testcases {
		inferred, err := InferTypeOf(SampleValueForType(fsType))
		assert.NoError(t, err)
		assert.Equal(t, inferred, fsType)
	}
}

func TestInferTypeOfWidensInt(t *testing.T) {
	inferred, err := InferTypeOf(7)
	assert.NoError(t, err)
	assert.Equal(t, inferred, constants.FS_INT64)
}

func TestInferTypeOfUnknownType(t *testing.T) {
	if _, err := InferTypeOf(struct{}{}); err == nil {
		t.Fatal("expected an error for an unmappable go type")
	}
}
