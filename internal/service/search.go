package service

import (
	"context"
	"log/slog"

	"github.com/hearthlocal/local-finder/api/internal/ai"
	"github.com/hearthlocal/local-finder/api/internal/dto"
	"github.com/hearthlocal/local-finder/api/internal/entity"
	"github.com/hearthlocal/local-finder/api/internal/places"
	"github.com/hearthlocal/local-finder/api/internal/service/vetting"
)

// Curation soft-failures fall back to the first entries of the pre-filtered
// list.
const fallbackResultLimit = 5

// KeywordTranslator resolves a search keyword from a free-text need.
type KeywordTranslator interface {
	Translate(ctx context.Context, query string) string
}

// ResultCurator re-ranks a pre-filtered candidate list.
type ResultCurator interface {
	Curate(ctx context.Context, query string, candidates []entity.Business) (*ai.Verdict, error)
}

// PlaceSearcher issues nearby-search lookups.
type PlaceSearcher interface {
	NearbySearch(ctx context.Context, keyword string, lat, lng float64, radius int) ([]entity.Business, error)
}

// SearchService runs the search-and-curation pipeline: translate the need,
// look up nearby places, pre-filter chains, then let the model pick and
// justify the best matches.
type SearchService struct {
	translator KeywordTranslator
	searcher   PlaceSearcher
	curator    ResultCurator
	logger     *slog.Logger
}

// NewSearchService wires the pipeline stages together.
func NewSearchService(translator KeywordTranslator, searcher PlaceSearcher, curator ResultCurator) *SearchService {
	return &SearchService{
		translator: translator,
		searcher:   searcher,
		curator:    curator,
		logger:     slog.Default().With("component", "search"),
	}
}

// Search executes one pipeline run. Provider lookup failures propagate;
// failures in either AI stage degrade silently per the documented fallbacks.
func (s *SearchService) Search(ctx context.Context, params dto.SearchParams) (*dto.SearchResponse, error) {
	radius := places.ClampRadius(params.Radius)

	if params.ShowAll {
		// Bypass mode: literal keyword, no vetting, no curation.
		businesses, err := s.searcher.NearbySearch(ctx, params.Query, params.Lat, params.Lng, radius)
		if err != nil {
			return nil, err
		}
		return s.respond(params, params.Query, radius, businesses), nil
	}

	keyword := s.translator.Translate(ctx, params.Query)
	s.logger.Info("resolved search keyword", "query", params.Query, "keyword", keyword)

	results, err := s.searcher.NearbySearch(ctx, keyword, params.Lat, params.Lng, radius)
	if err != nil {
		return nil, err
	}

	candidates := make([]entity.Business, 0, len(results))
	for _, b := range results {
		if vetting.IsSmallBusiness(vetting.Candidate{Name: b.Name, ReviewCount: b.ReviewCount, PriceLevel: b.PriceLevel}) {
			candidates = append(candidates, b)
		}
	}

	if len(candidates) == 0 {
		return s.respond(params, keyword, radius, candidates), nil
	}

	verdict, err := s.curator.Curate(ctx, params.Query, candidates)
	if err != nil {
		s.logger.Warn("curation failed, keeping pre-filtered list", "err", err)
		if len(candidates) > fallbackResultLimit {
			candidates = candidates[:fallbackResultLimit]
		}
		return s.respond(params, keyword, radius, candidates), nil
	}

	return s.respond(params, keyword, radius, applyVerdict(candidates, verdict)), nil
}

// applyVerdict rebuilds the result list in the verdict's own order, keeping
// only recommended identifiers that exist in the candidate set.
func applyVerdict(candidates []entity.Business, verdict *ai.Verdict) []entity.Business {
	byID := make(map[string]entity.Business, len(candidates))
	for _, b := range candidates {
		byID[b.ID] = b
	}

	curated := make([]entity.Business, 0, len(verdict.RecommendedIDs))
	for _, id := range verdict.RecommendedIDs {
		b, ok := byID[id]
		if !ok {
			continue
		}
		b.AIReason = verdict.Reason(id)
		curated = append(curated, b)
	}
	return curated
}

func (s *SearchService) respond(params dto.SearchParams, keyword string, radius int, businesses []entity.Business) *dto.SearchResponse {
	return &dto.SearchResponse{
		Query:      params.Query,
		AIKeyword:  keyword,
		Location:   dto.Location{Lat: params.Lat, Lng: params.Lng},
		RadiusM:    radius,
		TotalFound: len(businesses),
		Businesses: businesses,
	}
}
