package errkind

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	base := errors.New("boom")
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "unclassified", err: base, want: nil},
		{name: "wrapped validation", err: Wrap(ErrValidation, base), want: ErrValidation},
		{name: "priority follows declaration order", err: Wrap(ErrConflict, Wrap(ErrNotFound, base)), want: ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Of(tt.err))
		})
	}
}

func TestStore(t *testing.T) {
	base := errors.New("connection reset")
	wrapped := Store(base)
	require.ErrorIs(t, wrapped, ErrStore)
	require.ErrorIs(t, wrapped, base)
	assert.Equal(t, "store failure: connection reset", wrapped.Error())

	notFound := Wrap(ErrNotFound, base)
	assert.Same(t, notFound, Store(notFound))
	assert.Nil(t, Store(nil))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "pet name is required", Message(Wrap(ErrValidation, errors.New("pet name is required"))))
	assert.Equal(t, "boom", Message(errors.New("boom")))
	assert.Empty(t, Message(nil))
}

func TestNameRoundTrip(t *testing.T) {
	original := Wrap(ErrConflict, errors.New("pet is not available for adoption"))
	name := Name(original)
	assert.Equal(t, "Conflict", name)

	rebuilt := FromName(name, Message(original))
	require.ErrorIs(t, rebuilt, ErrConflict)
	assert.Equal(t, original.Error(), rebuilt.Error())

	assert.Empty(t, Name(errors.New("plain")))
	assert.False(t, Classified(FromName("", "plain")))
}
