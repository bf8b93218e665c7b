package quizgen

import (
	"context"
	"strings"

	"github.com/witsiq/witsiq/internal/cache"
)

// Batch sizing: one remote call asks for at most maxBatchSize questions,
// and never more than a full session (maxSessionSize) minus what the
// caller already has.
const (
	maxBatchSize   = 10
	maxSessionSize = 20
)

// TopicKey partitions the question-batch cache by normalized topic and
// difficulty.
type TopicKey struct {
	Topic      string
	Difficulty string
}

func makeTopicKey(topic, difficulty string) TopicKey {
	return TopicKey{
		Topic:      strings.ToLower(strings.TrimSpace(topic)),
		Difficulty: strings.ToLower(strings.TrimSpace(difficulty)),
	}
}

// RateRecorder is notified after every successful remote generation
// call. The session package provides a no-op recorder today; the call
// site exists so rate enforcement can be added without touching the
// pipeline.
type RateRecorder interface {
	RecordRemoteCall()
}

// Service is the question generation orchestrator. It owns the batch
// cache and the similarity engine, so one Service instance per process
// preserves the shared-cache behavior without hidden globals.
type Service struct {
	gen      Generator
	sim      *Similarity
	batches  *cache.Cache[TopicKey, []Question]
	recorder RateRecorder
	config   Config

	stopSweeper func()
}

// NewService creates the orchestrator. recorder may be nil.
func NewService(gen Generator, recorder RateRecorder, cfg Config) *Service {
	batches := cache.New[TopicKey, []Question](cfg.BatchCacheTTL, cfg.BatchCacheSize)
	return &Service{
		gen:         gen,
		sim:         NewSimilarity(),
		batches:     batches,
		recorder:    recorder,
		config:      cfg,
		stopSweeper: batches.StartSweeper(),
	}
}

// Close stops the cache sweeper.
func (s *Service) Close() {
	s.stopSweeper()
}

// Similarity exposes the service's shared similarity engine.
func (s *Service) Similarity() *Similarity {
	return s.sim
}

// NextQuestion returns one question that duplicates neither the
// caller's existing questions nor anything it has already handed out of
// the same cached batch. The cache is consulted first; a remote call is
// made only on miss or exhaustion. Callers build a full test by calling
// this sequentially, feeding each accepted question back via
// input.Existing. Fails with *GenerationError when even a fresh remote
// batch yields nothing unique.
//
// Duplicate-session checks happen once per test at session start, not
// here; see the session package.
func (s *Service) NextQuestion(ctx context.Context, input GenerateInput) (*Question, error) {
	key := makeTopicKey(input.Topic, input.Difficulty)

	if batch, ok := s.batches.Get(key); ok {
		if unique := FilterUnique(s.sim, batch, input.Existing, 1); len(unique) > 0 {
			q := unique[0]
			return &q, nil
		}
	}

	count := maxSessionSize - len(input.Existing)
	if count > maxBatchSize {
		count = maxBatchSize
	}
	if count < 1 {
		count = 1
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline && s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	batch, err := s.gen.GenerateBatch(ctx, input.Topic, input.Difficulty, count)
	if err != nil {
		return nil, err
	}
	if s.recorder != nil {
		s.recorder.RecordRemoteCall()
	}

	valid := make([]Question, 0, len(batch))
	for _, q := range batch {
		if ValidQuestion(q) {
			valid = append(valid, q)
		}
	}

	// Full replace: the new batch supersedes whatever was cached for
	// this topic+difficulty.
	s.batches.Set(key, valid)

	if unique := FilterUnique(s.sim, valid, input.Existing, 1); len(unique) > 0 {
		q := unique[0]
		return &q, nil
	}

	return nil, &GenerationError{Reason: "Could not generate a unique question. Please try again."}
}
