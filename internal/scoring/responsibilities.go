package scoring

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobmatch-checker/internal/config"
	"github.com/jonathan/jobmatch-checker/internal/embedding"
	"github.com/jonathan/jobmatch-checker/internal/types"
)

// ScoreResponsibilities computes the responsibilities similarity component
// and the source map backing it. Every job responsibility is compared against
// every resume bullet by cosine similarity of their embeddings; the best
// bullet supports the line only when its similarity clears the configured
// semantic match minimum. Unmatched lines contribute zero to the numerator
// but still count in the denominator, so sparse coverage is penalized.
//
// The exhaustive n×m search is fine at the engine's input caps (12×25);
// nothing here should grow an index.
func ScoreResponsibilities(ctx context.Context, jdResps []string, bullets []types.Bullet, cfg *config.Config, provider embedding.Provider) (float64, []types.SourceMapEntry, types.ExtractionMode) {
	if len(jdResps) == 0 || len(bullets) == 0 {
		return 0.0, []types.SourceMapEntry{}, types.ModeFallback
	}

	bulletTexts := make([]string, len(bullets))
	for i, b := range bullets {
		bulletTexts[i] = b.Text
	}

	// The two batches are independent; embed them concurrently. The provider
	// never errors, so the group only carries context cancellation.
	var (
		jdVecs, cvVecs [][]float64
		jdMode, cvMode types.ExtractionMode
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		jdVecs, jdMode = provider.EmbedBatch(gCtx, jdResps)
		return nil
	})
	g.Go(func() error {
		cvVecs, cvMode = provider.EmbedBatch(gCtx, bulletTexts)
		return nil
	})
	_ = g.Wait()

	mode := types.ModeFallback
	if jdMode == types.ModeAIPowered || cvMode == types.ModeAIPowered {
		mode = types.ModeAIPowered
	}

	sourceMap := make([]types.SourceMapEntry, 0, len(jdVecs))
	supportedSum := 0.0
	supported := false

	for i, jv := range jdVecs {
		bestSim, bestIdx := 0.0, -1
		for k, cvv := range cvVecs {
			if s := Cosine(jv, cvv); s > bestSim {
				bestSim, bestIdx = s, k
			}
		}

		entry := types.SourceMapEntry{
			JDLine:     jdResps[i],
			Similarity: round3(bestSim),
		}
		if bestIdx >= 0 && bestSim >= cfg.Thresholds.SemanticMatchMin {
			line := bulletTexts[bestIdx]
			entry.CVSupportingLine = &line
			supportedSum += bestSim
			supported = true
		}
		sourceMap = append(sourceMap, entry)
	}

	if !supported {
		return 0.0, sourceMap, mode
	}
	score := supportedSum / float64(len(jdResps)) * cfg.Weights.ResponsibilitiesSimilarity
	return score, sourceMap, mode
}

// round3 rounds to three decimals, the precision similarities are reported at.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
