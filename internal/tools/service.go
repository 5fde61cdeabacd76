// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tools implements the callable grant-search operations exposed
// over MCP and the CLI: quick preview, exhaustive summary, ID listing,
// and detail fetch.
package tools

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/grant-reporter/internal/criteria"
	"github.com/pdiddy/grant-reporter/internal/reporter"
	"github.com/pdiddy/grant-reporter/internal/stats"
)

// topN caps the institute, activity-code, and organization tables in
// summary responses.
const topN = 15

// distributionFields are the include fields needed to compute every
// distribution dimension.
var distributionFields = criteria.FieldStrings([]criteria.IncludeField{
	criteria.FieldProjectNum,
	criteria.FieldFiscalYear,
	criteria.FieldAgencyIcAdmin,
	criteria.FieldActivityCode,
	criteria.FieldOrganization,
	criteria.FieldFundingMechanism,
	criteria.FieldIsActive,
	criteria.FieldAwardAmount,
})

// idFields are the minimal include fields for ID listing.
var idFields = criteria.FieldStrings([]criteria.IncludeField{
	criteria.FieldProjectNum,
	criteria.FieldFiscalYear,
	criteria.FieldAgencyIcAdmin,
	criteria.FieldActivityCode,
})

// Recorder logs completed tool invocations. Implementations must not
// affect the result; errors are reported but not returned to callers.
type Recorder interface {
	Record(ctx context.Context, tool string, crit criteria.SearchCriteria, total int, seconds float64) error
}

// Service composes the criteria model, pager, and aggregator behind the
// callable operations.
type Service struct {
	Client *reporter.Client
	// Recorder is optional invocation logging; nil disables it.
	Recorder Recorder
	// Logger receives diagnostics; nil means no logging.
	Logger *zap.Logger
}

// record logs a completed invocation. A failing recorder never fails
// the operation.
func (s *Service) record(ctx context.Context, tool string, crit criteria.SearchCriteria, total int, started time.Time) {
	if s.Recorder == nil {
		return
	}
	if err := s.Recorder.Record(ctx, tool, crit, total, time.Since(started).Seconds()); err != nil && s.Logger != nil {
		s.Logger.Warn("recording invocation failed", zap.String("tool", tool), zap.Error(err))
	}
}

// summaryView shapes computed distributions into the response contract
// shared by SearchProjects and SearchSummary.
func summaryView(total int, d stats.Distributions) map[string]any {
	return map[string]any{
		"total_projects":                 total,
		"year_distribution":              d.Years,
		"institute_distribution":         stats.TopN(d.Institutes, topN),
		"activity_code_distribution":     stats.TopN(d.ActivityCodes, topN),
		"organization_distribution":      stats.TopN(d.Organizations, topN),
		"funding_mechanism_distribution": d.FundingMechanisms,
		"active_status_distribution":     d.ActiveStatus,
		"award_amount_stats":             d.Awards,
	}
}

// SearchProjects is the bounded preview: one page of up to 500 records,
// distributions over the sample, and the server's full match count.
func (s *Service) SearchProjects(ctx context.Context, crit criteria.SearchCriteria) (map[string]any, error) {
	started := time.Now()
	total, set, err := s.Client.FetchFirst(ctx, crit, distributionFields, reporter.MaxPageSize)
	if err != nil {
		return nil, err
	}

	d := stats.Compute(set.Results)
	s.record(ctx, "search_projects", crit, total, started)
	return summaryView(total, d), nil
}

// SearchSummary is the exhaustive fetch: distributions over every
// matching record. The reported total counts extracted project IDs,
// making it exact for the retrieved set.
func (s *Service) SearchSummary(ctx context.Context, crit criteria.SearchCriteria) (map[string]any, error) {
	started := time.Now()
	set, err := s.Client.FetchAll(ctx, crit, distributionFields)
	if err != nil {
		return nil, err
	}

	d := stats.Compute(set.Results)
	s.record(ctx, "get_search_summary", crit, len(d.ProjectIDs), started)
	return summaryView(len(d.ProjectIDs), d), nil
}

// FindProjectIDs is the bounded preview with the minimal field set,
// returning up to 500 project numbers plus overview distributions.
func (s *Service) FindProjectIDs(ctx context.Context, crit criteria.SearchCriteria) (map[string]any, error) {
	started := time.Now()
	total, set, err := s.Client.FetchFirst(ctx, crit, idFields, reporter.MaxPageSize)
	if err != nil {
		return nil, err
	}

	d := stats.Compute(set.Results)
	s.record(ctx, "find_project_ids", crit, total, started)
	ids := d.ProjectIDs
	if ids == nil {
		ids = []string{}
	}

	return map[string]any{
		"total_projects":             total,
		"returned_projects":          len(ids),
		"project_ids":                ids,
		"year_distribution":          d.Years,
		"institute_distribution":     stats.TopN(d.Institutes, topN),
		"activity_code_distribution": stats.TopN(d.ActivityCodes, topN),
		"has_more_results":           total > len(ids),
	}, nil
}

// ProjectInformation fetches caller-chosen fields for an explicit list
// of project numbers, paging through every match.
func (s *Service) ProjectInformation(ctx context.Context, projectNumbers []string, includeFields []string) (reporter.ResultSet, error) {
	normalized, err := criteria.NormalizeProjectNumbers(projectNumbers)
	if err != nil {
		return reporter.ResultSet{}, err
	}
	fields, err := criteria.ValidateIncludeFields(includeFields)
	if err != nil {
		return reporter.ResultSet{}, err
	}

	started := time.Now()
	crit := criteria.ForProjects(normalized)
	set, err := s.Client.FetchAll(ctx, crit, fields)
	if err != nil {
		return reporter.ResultSet{}, err
	}
	s.record(ctx, "get_project_information", crit, len(set.Results), started)
	return set, nil
}
