package bserr_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vrtsystems/bacsched/bserr"
)

func TestError_KindAndMessage(t *testing.T) {
	err := bserr.New(bserr.KindConfigurationError, "scheduleDefault is Null")
	assert.Equal(t, bserr.KindConfigurationError, err.Kind())
	assert.Equal(t, "ConfigurationError: scheduleDefault is Null", err.Error())
}

func TestIsKind(t *testing.T) {
	err := bserr.New(bserr.KindInvalidCalendarReference, "no such object")
	var plain error = err
	assert.True(t, bserr.IsKind(plain, bserr.KindInvalidCalendarReference))
	assert.False(t, bserr.IsKind(plain, bserr.KindConfigurationError))
	assert.False(t, bserr.IsKind(errors.New("other"), bserr.KindConfigurationError))
}

func TestError_Is(t *testing.T) {
	a := bserr.New(bserr.KindMalformedConfiguration, "a")
	b := bserr.New(bserr.KindMalformedConfiguration, "b")
	c := bserr.New(bserr.KindConfigurationError, "c")
	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
}

func TestError_MarshalJSON(t *testing.T) {
	err := bserr.New(bserr.KindConfigurationError, "bad")
	out, marshalErr := json.Marshal(err)
	assert.NoError(t, marshalErr)
	assert.JSONEq(t, `{"kind":"ConfigurationError","message":"bad"}`, string(out))
}

func TestNilError_SafeAccessors(t *testing.T) {
	var err *bserr.Error
	assert.Equal(t, "", err.Error())
	assert.Equal(t, bserr.Kind(""), err.Kind())
}
