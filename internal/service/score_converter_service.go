package service

import (
	"fmt"
	"math"
)

// MaxScore is the score of a fully correct test.
const MaxScore = 100.0

// scoreEpsilon absorbs float drift from summing n weights of 100/n.
const scoreEpsilon = 1e-6

type ScoreConverterService interface {
	// ToDisplayScore validates a stored score and rounds it to two decimals.
	ToDisplayScore(rawScore float64) (float64, error)
}

type scoreConverterServiceImpl struct{}

func NewScoreConverterService() ScoreConverterService {
	return &scoreConverterServiceImpl{}
}

func (s *scoreConverterServiceImpl) ToDisplayScore(rawScore float64) (float64, error) {
	if rawScore < -scoreEpsilon || rawScore > MaxScore+scoreEpsilon {
		return 0, fmt.Errorf("raw score %.4f is out of valid range (0-%.0f)", rawScore, MaxScore)
	}
	return RoundScore(ClampScore(rawScore)), nil
}

// ClampScore keeps a summed score inside [0, 100]. A fully correct test with three
// questions sums to 100.00000000000001 without it.
func ClampScore(score float64) float64 {
	return math.Max(0, math.Min(MaxScore, score))
}

// RoundScore rounds to two decimals.
func RoundScore(score float64) float64 {
	return math.Round(score*100) / 100
}
