package inkbound

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReaderStatus_Transitions(t *testing.T) {
	errFirst := errors.New("first")

	tests := []struct {
		name  string
		steps []func(s *readerStatus)
		want  Status
	}{
		{
			name: "starts initializing",
			want: StatusInitializing,
		},
		{
			name:  "backlog pass stays initializing",
			steps: []func(*readerStatus){(*readerStatus).reading, (*readerStatus).reading},
			want:  StatusInitializing,
		},
		{
			name:  "backlog applied",
			steps: []func(*readerStatus){(*readerStatus).reading, (*readerStatus).idle},
			want:  StatusIdle,
		},
		{
			name:  "live update reads",
			steps: []func(*readerStatus){(*readerStatus).idle, (*readerStatus).reading},
			want:  StatusReading,
		},
		{
			name:  "live update applied",
			steps: []func(*readerStatus){(*readerStatus).idle, (*readerStatus).reading, (*readerStatus).idle},
			want:  StatusIdle,
		},
		{
			name: "errored ignores reading",
			steps: []func(*readerStatus){
				(*readerStatus).idle,
				func(s *readerStatus) { s.fail(errFirst) },
				(*readerStatus).reading,
			},
			want: StatusErrored,
		},
		{
			name: "errored ignores idle",
			steps: []func(*readerStatus){
				func(s *readerStatus) { s.fail(errFirst) },
				(*readerStatus).idle,
			},
			want: StatusErrored,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newReaderStatus()
			for _, step := range tt.steps {
				step(s)
			}
			assert.Equal(t, tt.want, s.load())
		})
	}
}

func TestReaderStatus_FirstErrorWins(t *testing.T) {
	s := newReaderStatus()
	assert.NoError(t, s.lastError())

	first := errors.New("first")
	s.fail(first)
	s.fail(errors.New("second"))

	assert.Equal(t, StatusErrored, s.load())
	assert.Same(t, first, s.lastError())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Initializing", StatusInitializing.String())
	assert.Equal(t, "Reading", StatusReading.String())
	assert.Equal(t, "Idle", StatusIdle.String())
	assert.Equal(t, "Errored", StatusErrored.String())
	assert.Equal(t, "Unknown", Status(0).String())
}
