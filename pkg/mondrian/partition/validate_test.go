package partition

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(ind *Individual)
		valid   bool
		wantErr error
	}{
		{
			name:   "reference grid",
			mutate: func(*Individual) {},
			valid:  true,
		},
		{
			name:    "vertical run reaches horizontal count",
			mutate:  func(ind *Individual) { ind.Vertical[1].Runs = []int{0, len(ind.Horizontal)} },
			wantErr: ErrRunOutOfRange,
		},
		{
			name:    "horizontal run reaches vertical count",
			mutate:  func(ind *Individual) { ind.Horizontal[2].Runs = []int{1, len(ind.Vertical)} },
			wantErr: ErrRunOutOfRange,
		},
		{
			name:    "negative run",
			mutate:  func(ind *Individual) { ind.Horizontal[0].Runs = []int{-1, 1} },
			wantErr: ErrRunOutOfRange,
		},
		{
			name:    "missing cell",
			mutate:  func(ind *Individual) { ind.Cells = ind.Cells[1:] },
			wantErr: ErrCellCount,
		},
		{
			name:    "line added without regenerating cells",
			mutate:  func(ind *Individual) { ind.Vertical = append(ind.Vertical, Line{Position: 1}) },
			wantErr: ErrCellCount,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ind := grid(3, 4, White)
			tt.mutate(ind)

			assert.Equal(t, tt.valid, IsValid(ind))
			err := Validate(ind)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	ind := grid(2, 2, White)
	ind.Vertical[0].Runs = []int{0, 9}
	ind.Horizontal[1].Runs = []int{2, 1}
	ind.Cells = nil

	err := Validate(ind)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRunOutOfRange)
	assert.ErrorIs(t, err, ErrUnorderedRuns)
	assert.ErrorIs(t, err, ErrCellCount)
}

func TestUnorderedRunsAreOnlyReportedByValidate(t *testing.T) {
	ind := grid(2, 2, White)
	ind.Vertical[1].Runs = []int{2, 0}

	assert.True(t, IsValid(ind))
	assert.ErrorIs(t, Validate(ind), ErrUnorderedRuns)
}

func TestIsValidNil(t *testing.T) {
	assert.False(t, IsValid(nil))
	assert.Error(t, Validate(nil))
}
