package records

import (
	"fmt"

	"github.com/vovakirdan/treat-catcher/internal/config"
)

// Lines formats a standing for a game-over overlay. Under the best policy
// it is a single line that folds in the score of the run just finished;
// under the leaderboard policy it is a header followed by one row per entry,
// with the player's row marked by a leading '>'.
func Lines(st Standing, policy, player string, score int) []string {
	if policy != config.PolicyLeaderboard {
		best := max(st.Best, score)
		if score > 0 && score >= best {
			return []string{fmt.Sprintf("New best: %d", best)}
		}
		return []string{fmt.Sprintf("Best: %d", best)}
	}

	if len(st.Board) == 0 {
		return []string{"No scores yet"}
	}
	rank := Rank(st.Board, player)
	lines := make([]string, 0, len(st.Board)+1)
	lines = append(lines, "Leaderboard")
	for i, e := range st.Board {
		marker := " "
		if i+1 == rank {
			marker = ">"
		}
		lines = append(lines, fmt.Sprintf("%s%2d. %-*s %4d", marker, i+1, MaxNameLen, e.Name, e.Score))
	}
	return lines
}
