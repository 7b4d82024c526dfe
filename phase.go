package main

// Phase is one of Early / Mid / Late, used to pick a weight profile.
type Phase string

const (
	PhaseEarly Phase = "early"
	PhaseMid   Phase = "mid"
	PhaseLate  Phase = "late"
)

// density returns the fraction of the board occupied by snake bodies:
// sum(snake lengths) / (width*height).
func density(board Board) float64 {
	if board.Width == 0 || board.Height == 0 {
		return 0
	}
	total := 0
	for _, s := range board.Snakes {
		if isSnakeDead(s) {
			continue
		}
		total += s.Length()
	}
	return float64(total) / float64(board.Width*board.Height)
}

// aliveOpponentCount returns the number of live snakes other than ourIndex.
func aliveOpponentCount(board Board, ourIndex int) int {
	n := 0
	for i, s := range board.Snakes {
		if i == ourIndex {
			continue
		}
		if !isSnakeDead(s) {
			n++
		}
	}
	return n
}

// selectPhase applies the phase table:
//
//	Early: turn <= 75, not cramped (density <= 40%).
//	Mid:   turn > 75, >= 3 opponents, density <= 40%.
//	Late:  <= 2 opponents, or occupancy > 40%.
func selectPhase(board Board, turn int, ourIndex int) Phase {
	d := density(board)
	opponents := aliveOpponentCount(board, ourIndex)

	if opponents <= 2 || d > 0.40 {
		return PhaseLate
	}
	if turn <= 75 {
		return PhaseEarly
	}
	return PhaseMid
}

// selectProfile picks the weight profile for a turn, applying the phase
// table and then the orthogonal food-competition detector on top.
func selectProfile(board Board, turn int, ourIndex int) WeightProfile {
	var p WeightProfile
	switch selectPhase(board, turn, ourIndex) {
	case PhaseEarly:
		p = earlyProfile()
	case PhaseMid:
		p = midProfile()
	default:
		p = lateProfile()
	}

	if isFoodCompetition(board, ourIndex) {
		p = withFoodCompetition(p)
	}
	return p
}

// isFoodCompetition detects a scramble for scarce food: food-per-snake
// < 1.5 and at least one live opponent is nearer to some food than we are.
func isFoodCompetition(board Board, ourIndex int) bool {
	aliveSnakes := 0
	for _, s := range board.Snakes {
		if !isSnakeDead(s) {
			aliveSnakes++
		}
	}
	if aliveSnakes == 0 || len(board.Food) == 0 {
		return false
	}
	if float64(len(board.Food))/float64(aliveSnakes) >= 1.5 {
		return false
	}

	ourHead := board.Snakes[ourIndex].Head
	for i, snake := range board.Snakes {
		if i == ourIndex || isSnakeDead(snake) {
			continue
		}
		for _, food := range board.Food {
			ourDist := manhattan(ourHead, food)
			theirDist := manhattan(snake.Head, food)
			if theirDist < ourDist {
				return true
			}
		}
	}
	return false
}
