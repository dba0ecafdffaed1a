package assert_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/prysmaticlabs/blockrewards/testing/assert"
	"github.com/prysmaticlabs/blockrewards/testing/assertions"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestAssert_Equal(t *testing.T) {
	type args struct {
		tb       *assertions.TBMock
		expected interface{}
		actual   interface{}
		msgs     []interface{}
	}
	tests := []struct {
		name        string
		args        args
		expectedErr string
	}{
		{
			name: "equal values",
			args: args{
				tb:       &assertions.TBMock{},
				expected: 42,
				actual:   42,
			},
		},
		{
			name: "non-equal values",
			args: args{
				tb:       &assertions.TBMock{},
				expected: 42,
				actual:   41,
			},
			expectedErr: "Values are not equal, got: 41, want: 42",
		},
		{
			name: "custom error message",
			args: args{
				tb:       &assertions.TBMock{},
				expected: 42,
				actual:   41,
				msgs:     []interface{}{"Custom values are not equal"},
			},
			expectedErr: "Custom values are not equal, got: 41, want: 42",
		},
		{
			name: "custom error message with params",
			args: args{
				tb:       &assertions.TBMock{},
				expected: 42,
				actual:   41,
				msgs:     []interface{}{"Custom values are not equal (for slot %d)", 12},
			},
			expectedErr: "Custom values are not equal (for slot 12), got: 41, want: 42",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(tt.args.tb, tt.args.expected, tt.args.actual, tt.args.msgs...)
			if !strings.Contains(tt.args.tb.ErrorfMsg, tt.expectedErr) {
				t.Errorf("got: %q, want: %q", tt.args.tb.ErrorfMsg, tt.expectedErr)
			}
		})
	}
}

func TestAssert_DeepEqual(t *testing.T) {
	tb := &assertions.TBMock{}
	assert.DeepEqual(tb, []uint64{1, 2}, []uint64{1, 2})
	if tb.ErrorfMsg != "" {
		t.Errorf("unexpected error: %q", tb.ErrorfMsg)
	}

	tb = &assertions.TBMock{}
	assert.DeepEqual(tb, []uint64{1, 2}, []uint64{1, 3})
	if !strings.Contains(tb.ErrorfMsg, "Values are not equal, got: [1 3], want: [1 2]") {
		t.Errorf("unexpected error message: %q", tb.ErrorfMsg)
	}
}

func TestAssert_NoError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		msgs        []interface{}
		expectedErr string
	}{
		{
			name: "nil error",
		},
		{
			name:        "non-nil error",
			err:         errors.New("failed"),
			expectedErr: "Unexpected error: failed",
		},
		{
			name:        "custom message",
			err:         errors.New("failed"),
			msgs:        []interface{}{"Custom error message"},
			expectedErr: "Custom error message: failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := &assertions.TBMock{}
			assert.NoError(tb, tt.err, tt.msgs...)
			if !strings.Contains(tb.ErrorfMsg, tt.expectedErr) {
				t.Errorf("got: %q, want: %q", tb.ErrorfMsg, tt.expectedErr)
			}
		})
	}
}

func TestAssert_ErrorContains(t *testing.T) {
	tests := []struct {
		name        string
		want        string
		err         error
		expectedErr string
	}{
		{
			name:        "nil error",
			want:        "some error",
			expectedErr: "Expected error not returned, got: <nil>, want: some error",
		},
		{
			name:        "unexpected error",
			want:        "another error",
			err:         errors.New("failed"),
			expectedErr: "Expected error not returned, got: failed, want: another error",
		},
		{
			name: "expected error",
			want: "failed",
			err:  errors.New("failed"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := &assertions.TBMock{}
			assert.ErrorContains(tb, tt.want, tt.err)
			if !strings.Contains(tb.ErrorfMsg, tt.expectedErr) {
				t.Errorf("got: %q, want: %q", tb.ErrorfMsg, tt.expectedErr)
			}
		})
	}
}

func TestAssert_ErrorIs(t *testing.T) {
	wanted := errors.New("wanted")
	tb := &assertions.TBMock{}
	assert.ErrorIs(tb, wrap(wanted), wanted)
	if tb.ErrorfMsg != "" {
		t.Errorf("unexpected error: %q", tb.ErrorfMsg)
	}
	assert.ErrorIs(tb, errors.New("other"), wanted)
	if !strings.Contains(tb.ErrorfMsg, "Expected error not returned") {
		t.Errorf("unexpected error message: %q", tb.ErrorfMsg)
	}
}

func TestAssert_NotNil(t *testing.T) {
	var nilPtr *int
	tb := &assertions.TBMock{}
	assert.NotNil(tb, nilPtr)
	if !strings.Contains(tb.ErrorfMsg, "Unexpected nil value") {
		t.Errorf("unexpected error message: %q", tb.ErrorfMsg)
	}
	tb = &assertions.TBMock{}
	assert.NotNil(tb, 0)
	if tb.ErrorfMsg != "" {
		t.Errorf("unexpected error: %q", tb.ErrorfMsg)
	}
}

func TestAssert_LogsContain(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.WithField("prefix", "rewards").Info("Computed block rewards")

	tb := &assertions.TBMock{}
	assert.LogsContain(tb, hook, "Computed block rewards")
	if tb.ErrorfMsg != "" {
		t.Errorf("unexpected error: %q", tb.ErrorfMsg)
	}
	assert.LogsDoNotContain(tb, hook, "Computed block rewards")
	if !strings.Contains(tb.ErrorfMsg, "Unexpected log found") {
		t.Errorf("unexpected error message: %q", tb.ErrorfMsg)
	}
	tb = &assertions.TBMock{}
	assert.LogsContain(tb, hook, "rewards")
	if tb.ErrorfMsg != "" {
		t.Errorf("field match expected, got: %q", tb.ErrorfMsg)
	}
}

type wrapped struct{ err error }

func (w wrapped) Error() string { return "wrapped: " + w.err.Error() }
func (w wrapped) Unwrap() error { return w.err }

func wrap(err error) error { return wrapped{err: err} }
