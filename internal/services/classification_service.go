package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tarifflens/tarifflens-api/internal/catalog"
	"github.com/tarifflens/tarifflens-api/internal/interfaces"
	"github.com/tarifflens/tarifflens-api/internal/logger"
	"github.com/tarifflens/tarifflens-api/internal/types"
)

const (
	// Substring match scores reward tighter matches without ever beating an
	// exact code hit.
	substringScoreFloor = 0.30
	substringScoreCeil  = 0.95

	// Semantic lookups are time-boxed; on timeout the search degrades to
	// exact/substring matching instead of blocking the request.
	semanticTimeout = 2 * time.Second
)

// ClassificationService maps free-text product queries to ranked HTS
// candidates over the current catalog snapshot.
type ClassificationService struct {
	store      *catalog.Store
	similarity interfaces.SimilarityClient
	logger     *zap.Logger
}

// NewClassificationService creates a classification service. similarity may
// be nil, in which case search runs permanently in degraded (non-semantic)
// mode.
func NewClassificationService(store *catalog.Store, similarity interfaces.SimilarityClient) *ClassificationService {
	return &ClassificationService{
		store:      store,
		similarity: similarity,
		logger:     logger.Log,
	}
}

// Match returns ranked candidates for the query, best first. An empty or
// whitespace-only query and a non-positive limit both yield an empty result,
// not an error.
func (s *ClassificationService) Match(ctx context.Context, query string, limit int) ([]types.MatchCandidate, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || limit <= 0 {
		return []types.MatchCandidate{}, nil
	}

	snapshot := s.store.Snapshot()

	// An explicit code lookup is always rank 0 and never out-ranked by a
	// fuzzy text hit.
	var exact *types.MatchCandidate
	if looksLikeCode(trimmed) {
		if entry, err := snapshot.Lookup(trimmed); err == nil {
			exact = &types.MatchCandidate{Entry: entry, Score: 1.0, MatchKind: types.MatchExactCode}
		}
	}

	normalized := normalizeQuery(trimmed)
	best := make(map[string]types.MatchCandidate)

	if normalized != "" {
		for _, c := range s.substringCandidates(snapshot, normalized) {
			mergeCandidate(best, c)
		}
		for _, c := range s.semanticCandidates(ctx, snapshot, normalized) {
			mergeCandidate(best, c)
		}
	}

	if exact != nil {
		delete(best, exact.Entry.Code)
	}

	candidates := make([]types.MatchCandidate, 0, len(best)+1)
	for _, c := range best {
		candidates = append(candidates, c)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		if candidates[i].MatchKind != candidates[j].MatchKind {
			return candidates[i].MatchKind.StrongerThan(candidates[j].MatchKind)
		}
		// Ties broken by the shorter, more specific raw code first.
		if len(candidates[i].Entry.RawCode) != len(candidates[j].Entry.RawCode) {
			return len(candidates[i].Entry.RawCode) < len(candidates[j].Entry.RawCode)
		}
		return candidates[i].Entry.Code < candidates[j].Entry.Code
	})

	if exact != nil {
		candidates = append([]types.MatchCandidate{*exact}, candidates...)
	}
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

// substringCandidates scores entries whose description contains the query,
// case-insensitive, by len(query)/len(description) clamped into
// [substringScoreFloor, substringScoreCeil].
func (s *ClassificationService) substringCandidates(snapshot *catalog.Catalog, query string) []types.MatchCandidate {
	var out []types.MatchCandidate
	for _, entry := range snapshot.All() {
		desc := strings.ToLower(entry.Description)
		if !strings.Contains(desc, query) {
			continue
		}
		score := float64(len(query)) / float64(len(desc))
		if score < substringScoreFloor {
			score = substringScoreFloor
		} else if score > substringScoreCeil {
			score = substringScoreCeil
		}
		out = append(out, types.MatchCandidate{Entry: entry, Score: score, MatchKind: types.MatchSubstring})
	}
	return out
}

// semanticCandidates delegates to the similarity client with a short
// timeout. Any failure is logged and swallowed; the match continues without
// semantic results.
func (s *ClassificationService) semanticCandidates(ctx context.Context, snapshot *catalog.Catalog, query string) []types.MatchCandidate {
	if s.similarity == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, semanticTimeout)
	defer cancel()

	entries := snapshot.All()
	hits, err := s.similarity.Rank(ctx, query, snapshot.Descriptions())
	if err != nil {
		s.logger.Warn("Semantic search unavailable, degrading to text matching",
			zap.String("query", query),
			zap.Error(err))
		return nil
	}

	out := make([]types.MatchCandidate, 0, len(hits))
	for _, hit := range hits {
		if hit.Index < 0 || hit.Index >= len(entries) {
			continue
		}
		score := hit.Score
		if score < 0 {
			score = 0
		} else if score > 1 {
			score = 1
		}
		out = append(out, types.MatchCandidate{Entry: entries[hit.Index], Score: score, MatchKind: types.MatchSemantic})
	}
	return out
}

// mergeCandidate keeps the highest score per code; on a score tie the
// stronger match kind wins.
func mergeCandidate(best map[string]types.MatchCandidate, c types.MatchCandidate) {
	existing, ok := best[c.Entry.Code]
	if !ok || c.Score > existing.Score ||
		(c.Score == existing.Score && c.MatchKind.StrongerThan(existing.MatchKind)) {
		best[c.Entry.Code] = c
	}
}

// looksLikeCode reports whether the query is plausibly an HTS code: digits
// and dots only, with 4 to 10 digits.
func looksLikeCode(query string) bool {
	digits := 0
	for _, r := range query {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
		default:
			return false
		}
	}
	return digits >= 4 && digits <= 10
}

// normalizeQuery lowercases, trims and strips punctuation except hyphens
// that sit inside a word.
func normalizeQuery(query string) string {
	query = strings.ToLower(strings.TrimSpace(query))
	runes := []rune(query)
	var b strings.Builder
	for i, r := range runes {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		case r == '-' && i > 0 && i < len(runes)-1 &&
			isWordRune(runes[i-1]) && isWordRune(runes[i+1]):
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
