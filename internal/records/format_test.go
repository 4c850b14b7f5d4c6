package records

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/treat-catcher/internal/config"
)

func TestLines(t *testing.T) {
	board := []Entry{{Name: "Ada", Score: 12}, {Name: "Mia", Score: 4}}

	tests := []struct {
		name   string
		st     Standing
		policy string
		player string
		score  int
		want   []string
	}{
		{
			name:   "best beaten",
			st:     Standing{Best: 5},
			policy: config.PolicyBest,
			score:  7,
			want:   []string{"New best: 7"},
		},
		{
			name:   "best kept",
			st:     Standing{Best: 9},
			policy: config.PolicyBest,
			score:  3,
			want:   []string{"Best: 9"},
		},
		{
			name:   "zero run with no best",
			policy: config.PolicyBest,
			want:   []string{"Best: 0"},
		},
		{
			name:   "empty board",
			policy: config.PolicyLeaderboard,
			want:   []string{"No scores yet"},
		},
		{
			name:   "board marks player",
			st:     Standing{Best: 12, Board: board},
			policy: config.PolicyLeaderboard,
			player: "Mia",
			want: []string{
				"Leaderboard",
				"  1. Ada                12",
				"> 2. Mia                 4",
			},
		},
		{
			name:   "player off the board",
			st:     Standing{Best: 12, Board: board},
			policy: config.PolicyLeaderboard,
			player: "Zed",
			want: []string{
				"Leaderboard",
				"  1. Ada                12",
				"  2. Mia                 4",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.st, tt.policy, tt.player, tt.score)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lines() = %q, want %q", got, tt.want)
			}
		})
	}
}
