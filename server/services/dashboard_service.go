package services

import (
	"context"
	"sort"
	"strings"

	"crmserver/contacts"
	"crmserver/database"
	apperrors "crmserver/server/errors"
)

// DashboardStore is the slice of the contact store the dashboard reads.
type DashboardStore interface {
	CountContacts() (int, error)
	AllTagSets() ([][]string, error)
	RecentBatches(limit int) ([]database.BatchSummary, error)
}

// Bounds for the dashboard and import history views.
const (
	dashboardRecentBatches   = 5
	maxTagDistributionGroups = 10

	defaultImportHistory = 10
	maxImportHistory     = 50
)

// TagCount is one group in the dashboard tag distribution. Tag holds
// the first spelling seen for the group; spelling variants that stem to
// the same canonical key are counted together.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// DashboardSummary aggregates the store for the dashboard landing view.
type DashboardSummary struct {
	TotalContacts   int                     `json:"total_contacts"`
	TagDistribution []TagCount              `json:"tag_distribution"`
	RecentBatches   []database.BatchSummary `json:"recent_batches"`
}

// DashboardService aggregates store counts, the canonical tag
// distribution and recent import batches.
type DashboardService struct {
	store   DashboardStore
	stemmer *contacts.TagStemmer
	logger  LoggerInterface
}

// NewDashboardService creates a dashboard service over the given store.
func NewDashboardService(store DashboardStore) *DashboardService {
	return &DashboardService{
		store:   store,
		stemmer: contacts.NewTagStemmer(),
		logger:  newDefaultLogger(),
	}
}

// NewDashboardServiceWithLogger creates a dashboard service with a
// custom logger, used by tests.
func NewDashboardServiceWithLogger(store DashboardStore, logger LoggerInterface) *DashboardService {
	service := NewDashboardService(store)
	if logger != nil {
		service.logger = logger
	}
	return service
}

// Summary builds the dashboard landing view.
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	if err := ValidateContext(ctx); err != nil {
		return nil, err
	}

	total, err := s.store.CountContacts()
	if err != nil {
		s.logger.Error("Failed to count contacts", "error", err)
		return nil, apperrors.NewDatabaseError("count contacts", err)
	}

	tagSets, err := s.store.AllTagSets()
	if err != nil {
		s.logger.Error("Failed to load tag sets", "error", err)
		return nil, apperrors.NewDatabaseError("load tag distribution", err)
	}

	batches, err := s.store.RecentBatches(dashboardRecentBatches)
	if err != nil {
		s.logger.Error("Failed to load recent batches", "error", err)
		return nil, apperrors.NewDatabaseError("load recent batches", err)
	}
	if batches == nil {
		batches = make([]database.BatchSummary, 0)
	}

	return &DashboardSummary{
		TotalContacts:   total,
		TagDistribution: s.tagDistribution(tagSets),
		RecentBatches:   batches,
	}, nil
}

// ImportHistory returns the most recent import batches, newest first.
func (s *DashboardService) ImportHistory(ctx context.Context, limit int) ([]database.BatchSummary, error) {
	if err := ValidateContext(ctx); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultImportHistory
	}
	if limit > maxImportHistory {
		limit = maxImportHistory
	}

	batches, err := s.store.RecentBatches(limit)
	if err != nil {
		s.logger.Error("Failed to load import history", "error", err)
		return nil, apperrors.NewDatabaseError("load import history", err)
	}
	if batches == nil {
		batches = make([]database.BatchSummary, 0)
	}
	return batches, nil
}

// tagDistribution groups tags by canonical stem and returns the largest
// groups, ties broken by label.
func (s *DashboardService) tagDistribution(tagSets [][]string) []TagCount {
	counts := make(map[string]int)
	labels := make(map[string]string)
	for _, set := range tagSets {
		for _, tag := range set {
			key := s.stemmer.Canonical(tag)
			if key == "" {
				continue
			}
			if _, seen := labels[key]; !seen {
				labels[key] = strings.TrimSpace(tag)
			}
			counts[key]++
		}
	}

	distribution := make([]TagCount, 0, len(counts))
	for key, count := range counts {
		distribution = append(distribution, TagCount{Tag: labels[key], Count: count})
	}
	sort.Slice(distribution, func(i, j int) bool {
		if distribution[i].Count != distribution[j].Count {
			return distribution[i].Count > distribution[j].Count
		}
		return distribution[i].Tag < distribution[j].Tag
	})
	if len(distribution) > maxTagDistributionGroups {
		distribution = distribution[:maxTagDistributionGroups]
	}
	return distribution
}
