package dice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/skirmish/internal"
	"github.com/KirkDiggler/skirmish/internal/dice"
	mockdice "github.com/KirkDiggler/skirmish/internal/dice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"
)

func TestRandomRoller_RollBatchInRange(t *testing.T) {
	roller := dice.NewRandomRoller(42)

	rapid.Check(t, func(t *rapid.T) {
		sides := rapid.IntRange(1, 100).Draw(t, "sides")
		names := rapid.SliceOfNDistinct(rapid.StringMatching(`[a-z]{1,8}`), 0, 6, rapid.ID[string]).Draw(t, "names")

		rolls, err := roller.RollBatch(context.Background(), sides, names)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rolls) != len(names) {
			t.Fatalf("got %d rolls for %d names", len(rolls), len(names))
		}
		for _, name := range names {
			v, ok := rolls[name]
			if !ok || v < 1 || v > sides {
				t.Fatalf("roll %q = %d out of [1,%d]", name, v, sides)
			}
		}
	})
}

func TestRandomRoller_SeedIsDeterministic(t *testing.T) {
	names := []string{"skill", "aim", "hit"}
	a, err := dice.NewRandomRoller(7).RollBatch(context.Background(), 20, names)
	require.NoError(t, err)
	b, err := dice.NewRandomRoller(7).RollBatch(context.Background(), 20, names)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRandomRoller_Errors(t *testing.T) {
	roller := dice.NewRandomRoller(1)

	_, err := roller.RollBatch(context.Background(), 0, []string{"x"})
	assert.ErrorIs(t, err, internal.ErrInvalidParam)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = roller.RollBatch(ctx, 20, []string{"x"})
	assert.ErrorIs(t, err, internal.ErrTransientDice)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTimeoutRoller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	names := []string{"team1", "team2"}

	t.Run("passes rolls through", func(t *testing.T) {
		next := mockdice.NewMockRoller(ctrl)
		next.EXPECT().RollBatch(gomock.Any(), 20, names).Return(map[string]int{"team1": 4, "team2": 17}, nil)

		rolls, err := dice.NewTimeoutRoller(next, time.Second).RollBatch(context.Background(), 20, names)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"team1": 4, "team2": 17}, rolls)
	})

	t.Run("times out a hung source", func(t *testing.T) {
		next := mockdice.NewMockRoller(ctrl)
		next.EXPECT().RollBatch(gomock.Any(), 20, names).DoAndReturn(
			func(ctx context.Context, _ int, _ []string) (map[string]int, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			})

		_, err := dice.NewTimeoutRoller(next, 10*time.Millisecond).RollBatch(context.Background(), 20, names)
		assert.ErrorIs(t, err, internal.ErrTransientDice)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("classifies source failures", func(t *testing.T) {
		next := mockdice.NewMockRoller(ctrl)
		boom := errors.New("entropy pool drained")
		next.EXPECT().RollBatch(gomock.Any(), 20, names).Return(nil, boom)

		_, err := dice.NewTimeoutRoller(next, time.Second).RollBatch(context.Background(), 20, names)
		assert.ErrorIs(t, err, internal.ErrTransientDice)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("no timeout still classifies", func(t *testing.T) {
		next := mockdice.NewMockRoller(ctrl)
		next.EXPECT().RollBatch(gomock.Any(), 20, names).Return(nil, errors.New("down"))

		_, err := dice.NewTimeoutRoller(next, 0).RollBatch(context.Background(), 20, names)
		assert.ErrorIs(t, err, internal.ErrTransientDice)
	})
}

func TestManualMockRoller(t *testing.T) {
	tests := []struct {
		name       string
		setupRolls []int
		sides      int
		names      []string
		want       map[string]int
		wantErr    bool
	}{
		{
			name:       "turn rolls",
			setupRolls: []int{15, 1, 20},
			sides:      20,
			names:      []string{"skill", "aim", "hit"},
			want:       map[string]int{"skill": 15, "aim": 1, "hit": 20},
		},
		{
			name:       "not enough rolls",
			setupRolls: []int{10},
			sides:      20,
			names:      []string{"team1", "team2"},
			wantErr:    true,
		},
		{
			name:       "invalid roll for die size",
			setupRolls: []int{21},
			sides:      20,
			names:      []string{"hit"},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mockdice.NewManualMockRoller()
			m.SetRolls(tt.setupRolls)

			got, err := m.RollBatch(context.Background(), tt.sides, tt.names)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, [][]string{tt.names}, m.Calls())
			assert.Zero(t, m.Remaining())
		})
	}
}
