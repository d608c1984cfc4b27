package interfaces

import (
	"context"
)

// SimilarityHit is one semantic nearest-neighbor result: the index of the
// corpus entry and a similarity score in [0,1].
type SimilarityHit struct {
	Index int     `json:"index"`
	Score float64 `json:"score"`
}

// SimilarityClient ranks a corpus of descriptions against a query. The
// matcher treats it as optional: errors and timeouts degrade the search to
// exact/substring matching instead of failing the request.
type SimilarityClient interface {
	Rank(ctx context.Context, query string, corpus []string) ([]SimilarityHit, error)
}

// CompletionClient generates a short natural-language completion. Only the
// assistant layer uses it; core results never depend on generated text.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// RateProvider supplies a currency conversion rate from one ISO 4217 code to
// another. Used strictly for display conversion after core math is done.
type RateProvider interface {
	Rate(ctx context.Context, from, to string) (float64, error)
}
