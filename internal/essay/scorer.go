package essay

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

// Feedback is the scored result of an essay.
type Feedback struct {
	Score         int
	Overview      string
	Strengths     []string
	Improvements  []string
	GrammarIssues int
	Readability   int
	Coherence     int
	Vocabulary    int
}

// Label names the band the score falls in.
func (f Feedback) Label() string {
	switch {
	case f.Score >= 90:
		return "Excellent"
	case f.Score >= 80:
		return "Good"
	case f.Score >= 70:
		return "Satisfactory"
	default:
		return "Needs Improvement"
	}
}

// Scorer turns an essay into feedback. LocalScorer stands in until a remote
// scoring endpoint exists; the controller only sees this interface.
type Scorer interface {
	Score(ctx context.Context, essay, topic string) (Feedback, error)
}

// LocalScorer synthesizes plausible feedback after Delay. Its scores carry
// no information about the essay beyond its length.
type LocalScorer struct {
	Delay time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewLocalScorer creates a scorer seeded from seed.
func NewLocalScorer(delay time.Duration, seed uint64) *LocalScorer {
	return &LocalScorer{
		Delay: delay,
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *LocalScorer) Score(ctx context.Context, essay, topic string) (Feedback, error) {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Feedback{}, ctx.Err()
		case <-timer.C:
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	score := s.rng.IntN(25) + 70
	switch words := WordCount(essay); {
	case words < 200:
		score -= 5
	case words > 500:
		score += 5
	}
	score = min(score, 100)

	strong := score > 85
	pick := func(cond bool, a, b string) string {
		if cond {
			return a
		}
		return b
	}

	return Feedback{
		Score: score,
		Overview: fmt.Sprintf("Your essay on %q demonstrates %s understanding of the subject matter. The writing is %s.",
			topic,
			pick(strong, "strong", "adequate"),
			pick(strong, "clear and engaging", "somewhat clear but could be more cohesive")),
		Strengths: []string{
			"Good introduction that sets the context",
			"Effective use of " + pick(strong, "evidence and examples", "some examples"),
			pick(strong, "Strong", "Adequate") + " conclusion that summarizes key points",
		},
		Improvements: []string{
			pick(score < 85, "Develop arguments more thoroughly", "Consider exploring counterarguments"),
			pick(score < 85, "Improve transitions between paragraphs", "Add more varied sentence structures"),
			"Enhance vocabulary with more " + pick(score < 85, "precise", "sophisticated") + " terms",
		},
		GrammarIssues: s.rng.IntN(5),
		Readability:   s.rng.IntN(20) + 70,
		Coherence:     s.rng.IntN(20) + 70,
		Vocabulary:    s.rng.IntN(20) + 70,
	}, nil
}
