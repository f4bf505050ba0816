package simulator

import (
	"context"
	"sync"
	"time"

	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/domain"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/oracle"
	"github.com/sirupsen/logrus"
)

// DefaultConcurrency bounds in-flight oracle calls during a batch. The
// oracle client additionally rate limits individual calls.
const DefaultConcurrency = 3

const answerSystemPrompt = "You are an AI search assistant. Answer the user's question the way an AI-powered search engine would, naming the specific products and vendors you would actually recommend."

// Simulator obtains one simulated engine answer per query and extracts
// brand presence, position and sentiment from the raw text.
type Simulator struct {
	completer   oracle.Completer
	log         *logrus.Logger
	concurrency int
}

func New(completer oracle.Completer, log *logrus.Logger) *Simulator {
	return &Simulator{completer: completer, log: log, concurrency: DefaultConcurrency}
}

// WithConcurrency overrides the worker bound; values below 1 mean
// sequential processing.
func (s *Simulator) WithConcurrency(n int) *Simulator {
	if n < 1 {
		n = 1
	}
	s.concurrency = n
	return s
}

// Simulate runs one query against the oracle and analyzes the answer.
func (s *Simulator) Simulate(ctx context.Context, query, brand string, competitors []string) (domain.SimulationOutcome, error) {
	response, err := s.completer.Complete(ctx, oracle.Request{
		Prompt:       query,
		SystemPrompt: answerSystemPrompt,
		Temperature:  0.7,
	})
	if err != nil {
		return domain.SimulationOutcome{}, err
	}
	return analyze(query, response, brand, competitors), nil
}

// SimulateAll processes every query with a bounded worker pool and returns
// outcomes index-aligned with the input. A failed query is substituted
// with a neutral/absent placeholder instead of aborting the batch.
func (s *Simulator) SimulateAll(ctx context.Context, queries []domain.PlannedQuery, brand string, competitors []string) []domain.SimulationOutcome {
	outcomes := make([]domain.SimulationOutcome, len(queries))

	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup
	for i, q := range queries {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, query string) {
			defer wg.Done()
			defer func() { <-sem }()

			out, err := s.Simulate(ctx, query, brand, competitors)
			if err != nil {
				s.log.WithError(err).WithField("query", query).Warn("simulation failed, using placeholder")
				out = placeholder(query)
			}
			outcomes[i] = out
		}(i, q.Text)
	}
	wg.Wait()

	return outcomes
}

func analyze(query, response, brand string, competitors []string) domain.SimulationOutcome {
	offset := firstMention(response, brand)
	return domain.SimulationOutcome{
		Query:            query,
		Response:         response,
		BrandFound:       offset >= 0,
		BrandPosition:    positionFor(offset, len(response)),
		CompetitorsFound: competitorsIn(response, competitors),
		Sentiment:        sentimentAround(response, offset),
		Timestamp:        time.Now().UTC(),
	}
}

// placeholder is the neutral/absent outcome recorded when a single query
// could not be simulated.
func placeholder(query string) domain.SimulationOutcome {
	return domain.SimulationOutcome{
		Query:            query,
		BrandFound:       false,
		BrandPosition:    domain.PositionAbsent,
		CompetitorsFound: []string{},
		Sentiment:        domain.SentimentNeutral,
		Timestamp:        time.Now().UTC(),
	}
}
