package lookup

import (
	"context"
	"strings"

	"github.com/docfinder/docfinder-mcp/internal/discovery"
	"github.com/docfinder/docfinder-mcp/internal/index"
	"github.com/docfinder/docfinder-mcp/internal/model"
	"github.com/docfinder/docfinder-mcp/pkg/types"
)

// Strategy names reported in search responses.
const (
	StrategyExactComponents    = "exact_components"
	StrategyExactMethods       = "exact_methods"
	StrategyComponentAndMethod = "component_and_method"

	// fuzzyFallbackSuffix is appended to the strategy name when the exact
	// strategies came up empty and fuzzy matching was attempted.
	fuzzyFallbackSuffix = "_with_fuzzy_fallback"
)

// Default resolution constants. Cutoffs and candidate counts are
// configuration, not algorithmic requirements.
const (
	DefaultMaxResults          = 1000
	DefaultComponentCandidates = 3
	DefaultMethodCandidates    = 5
	DefaultCutoff              = 0.6
	DefaultQueryCutoff         = 0.1
)

// Options configures an Engine. The zero value means defaults.
type Options struct {
	// MaxResults caps search and free-text lookup results when a request
	// does not set its own limit.
	MaxResults int
	// ComponentCandidates caps fuzzy component matches per input term.
	ComponentCandidates int
	// MethodCandidates caps fuzzy method matches per input term.
	MethodCandidates int
	// Cutoff is the similarity acceptance threshold for the fuzzy
	// fallback of exact searches.
	Cutoff float64
	// QueryCutoff is the deliberately permissive threshold for the
	// free-text lookup fallback.
	QueryCutoff float64
	// Groups overrides the sub-namespace allow-list used by discovery.
	Groups []string
}

func (o Options) withDefaults() Options {
	if o.MaxResults <= 0 {
		o.MaxResults = DefaultMaxResults
	}
	if o.ComponentCandidates <= 0 {
		o.ComponentCandidates = DefaultComponentCandidates
	}
	if o.MethodCandidates <= 0 {
		o.MethodCandidates = DefaultMethodCandidates
	}
	if o.Cutoff <= 0 {
		o.Cutoff = DefaultCutoff
	}
	if o.QueryCutoff <= 0 {
		o.QueryCutoff = DefaultQueryCutoff
	}
	if o.Groups == nil {
		o.Groups = discovery.DefaultGroups
	}
	return o
}

// Engine resolves caller queries against a freshly built index of the
// object model. Every operation performs full discovery, full index
// construction, and resolution synchronously; nothing is shared or cached
// across calls, so concurrent invocations need no coordination.
type Engine struct {
	model model.Model
	opts  Options
}

// New creates an Engine with default options.
func New(m model.Model) *Engine {
	return NewWithOptions(m, Options{})
}

// NewWithOptions creates an Engine with explicit options.
func NewWithOptions(m model.Model, opts Options) *Engine {
	return &Engine{model: m, opts: opts.withDefaults()}
}

// SearchRequest carries the filters of one search call. Filters are
// case-insensitive; blank terms are ignored.
type SearchRequest struct {
	Components []string
	Methods    []string
	MaxResults int
}

// LookupRequest carries one reference-style or free-text lookup. When Refs
// is non-empty Query is ignored and MaxResults does not apply.
type LookupRequest struct {
	Refs       []string
	Query      string
	MaxResults int
}

// snapshot is the transient, call-scoped view of the object model: the
// discovery set, the flat record list, and the case-insensitive component
// name table. It never outlives the call that built it.
type snapshot struct {
	set     *discovery.Set
	records []types.Record
	caseMap map[string]string // lowercase -> canonical component name
}

func (e *Engine) snapshot(ctx context.Context) (*snapshot, error) {
	set, err := discovery.NewWithGroups(e.model, e.opts.Groups).Discover(ctx)
	if err != nil {
		return nil, err
	}

	snap := &snapshot{
		set:     set,
		records: index.Build(set),
		caseMap: make(map[string]string, set.Len()),
	}
	// Built in discovery order: when two canonical names differ only by
	// case, the later one wins the case-insensitive slot.
	for _, name := range set.Names() {
		snap.caseMap[strings.ToLower(name)] = name
	}
	return snap, nil
}

func (s *snapshot) byComponent(canonical string) []types.Record {
	var out []types.Record
	for _, rec := range s.records {
		if rec.Component == canonical {
			out = append(out, rec)
		}
	}
	return out
}

func (s *snapshot) byMethod(lower string) []types.Record {
	var out []types.Record
	for _, rec := range s.records {
		if strings.ToLower(rec.Method) == lower {
			out = append(out, rec)
		}
	}
	return out
}

// lowerComponentNames returns the distinct lowercase component names in
// discovery order, the candidate universe for component fuzzy matching.
func (s *snapshot) lowerComponentNames() []string {
	seen := make(map[string]struct{}, s.set.Len())
	var out []string
	for _, name := range s.set.Names() {
		lower := strings.ToLower(name)
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		out = append(out, lower)
	}
	return out
}

// lowerMethodNames returns the distinct lowercase member names in index
// order, the candidate universe for method fuzzy matching.
func (s *snapshot) lowerMethodNames() []string {
	seen := make(map[string]struct{}, len(s.records))
	var out []string
	for _, rec := range s.records {
		lower := strings.ToLower(rec.Method)
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		out = append(out, lower)
	}
	return out
}

// ListComponents returns the canonical component names in discovery order.
func (e *Engine) ListComponents(ctx context.Context) ([]string, error) {
	set, err := discovery.NewWithGroups(e.model, e.opts.Groups).Discover(ctx)
	if err != nil {
		return nil, err
	}
	return set.Names(), nil
}

// DescribeComponents returns a debug-level view of every discovered
// component: kind, member count, and a few sample member names.
func (e *Engine) DescribeComponents(ctx context.Context) ([]types.ComponentInfo, error) {
	set, err := discovery.NewWithGroups(e.model, e.opts.Groups).Discover(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]types.ComponentInfo, 0, set.Len())
	for _, name := range set.Names() {
		comp, ok := set.Get(name)
		if !ok {
			continue
		}
		members := comp.Members()
		info := types.ComponentInfo{
			Name:        name,
			Kind:        comp.Kind(),
			MemberCount: len(members),
		}
		for _, mem := range members {
			if len(info.SampleMembers) == 5 {
				break
			}
			info.SampleMembers = append(info.SampleMembers, mem.Name())
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Search resolves component and method filters through the exact
// strategies, falling back to fuzzy matching only when at least one filter
// was supplied and the exact strategies produced nothing.
func (e *Engine) Search(ctx context.Context, req SearchRequest) (*types.SearchResponse, error) {
	snap, err := e.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	comps := normalizeTerms(req.Components)
	methods := normalizeTerms(req.Methods)

	var strategy string
	var results []types.Record

	switch {
	case len(comps) > 0 && len(methods) == 0:
		strategy = StrategyExactComponents
		for _, comp := range comps {
			if canonical, ok := snap.caseMap[comp]; ok {
				results = append(results, snap.byComponent(canonical)...)
			}
		}

	case len(methods) > 0 && len(comps) == 0:
		strategy = StrategyExactMethods
		for _, method := range methods {
			results = append(results, snap.byMethod(method)...)
		}

	case len(comps) > 0 && len(methods) > 0:
		strategy = StrategyComponentAndMethod
		for _, comp := range comps {
			canonical, ok := snap.caseMap[comp]
			if !ok {
				continue
			}
			for _, method := range methods {
				for _, rec := range snap.byComponent(canonical) {
					if strings.ToLower(rec.Method) == method {
						results = append(results, rec)
					}
				}
			}
		}
	}

	results = dedup(results)

	if len(results) == 0 && (len(comps) > 0 || len(methods) > 0) {
		strategy += fuzzyFallbackSuffix
		results = dedup(e.fuzzyFallback(snap, comps, methods))
	}

	if max := e.resultCap(req.MaxResults); len(results) > max {
		results = results[:max]
	}

	views := viewsOf(results)
	return &types.SearchResponse{
		Results:      views,
		TotalFound:   len(views),
		StrategyUsed: strategy,
	}, nil
}

// fuzzyFallback runs ratio-based near matching independently over the
// component and method name universes and unions every expansion.
func (e *Engine) fuzzyFallback(snap *snapshot, comps, methods []string) []types.Record {
	var candidates []types.Record

	if len(comps) > 0 {
		universe := snap.lowerComponentNames()
		for _, term := range comps {
			for _, hit := range closeMatches(term, universe, e.opts.ComponentCandidates, e.opts.Cutoff) {
				candidates = append(candidates, snap.byComponent(snap.caseMap[hit])...)
			}
		}
	}

	if len(methods) > 0 {
		universe := snap.lowerMethodNames()
		for _, term := range methods {
			for _, hit := range closeMatches(term, universe, e.opts.MethodCandidates, e.opts.Cutoff) {
				candidates = append(candidates, snap.byMethod(hit)...)
			}
		}
	}

	return candidates
}

// Lookup resolves reference-style tokens, or falls back to a free-text
// query when no refs are given. Qualified refs ("Frame.Filter") match
// exactly against qualified names; bare tokens expand to every record of
// that component. Reference resolution returns every match regardless of
// the result cap; free-text resolution enforces it.
func (e *Engine) Lookup(ctx context.Context, req LookupRequest) ([]types.RecordView, error) {
	snap, err := e.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	refs := normalizeRefs(req.Refs)
	if len(refs) > 0 {
		var results []types.Record
		for _, ref := range refs {
			if strings.Contains(ref, ".") {
				for _, rec := range snap.records {
					if rec.QualifiedName == ref {
						results = append(results, rec)
					}
				}
				continue
			}
			if canonical, ok := snap.caseMap[strings.ToLower(ref)]; ok {
				results = append(results, snap.byComponent(canonical)...)
			}
		}
		return viewsOf(dedup(results)), nil
	}

	query := strings.ToLower(strings.TrimSpace(req.Query))
	if query == "" {
		return []types.RecordView{}, nil
	}

	var results []types.Record
	for _, rec := range snap.records {
		if strings.Contains(strings.ToLower(rec.QualifiedName), query) ||
			strings.Contains(strings.ToLower(rec.Description), query) {
			results = append(results, rec)
		}
	}

	if len(results) == 0 {
		// Maximally permissive fuzzy pass over bare member names.
		for _, hit := range closeMatches(query, snap.lowerMethodNames(), e.opts.MethodCandidates, e.opts.QueryCutoff) {
			results = append(results, snap.byMethod(hit)...)
		}
		results = dedup(results)
	}

	if max := e.resultCap(req.MaxResults); len(results) > max {
		results = results[:max]
	}
	return viewsOf(results), nil
}

// Verify re-derives the record list and tests the input for exact equality
// against either a qualified name or a fully rendered signature.
func (e *Engine) Verify(ctx context.Context, ref string) (*types.VerifyResult, error) {
	snap, err := e.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]types.VerifyMatch, 0, 1)
	for _, rec := range snap.records {
		if ref == rec.QualifiedName || ref == rec.Rendered() {
			matches = append(matches, types.VerifyMatch{
				Name:      rec.QualifiedName,
				Signature: rec.Rendered(),
			})
		}
	}

	return &types.VerifyResult{Valid: len(matches) > 0, Matches: matches}, nil
}

func (e *Engine) resultCap(requested int) int {
	if requested > 0 {
		return requested
	}
	return e.opts.MaxResults
}

// normalizeTerms trims, lowercases, and drops blank filter terms.
func normalizeTerms(terms []string) []string {
	var out []string
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" {
			out = append(out, term)
		}
	}
	return out
}

// normalizeRefs trims and drops blank reference tokens, preserving case:
// qualified references match case-sensitively.
func normalizeRefs(refs []string) []string {
	var out []string
	for _, ref := range refs {
		ref = strings.TrimSpace(ref)
		if ref != "" {
			out = append(out, ref)
		}
	}
	return out
}

// dedup collapses records by qualified name, preserving first-seen order.
func dedup(records []types.Record) []types.Record {
	seen := make(map[string]struct{}, len(records))
	out := make([]types.Record, 0, len(records))
	for _, rec := range records {
		if _, dup := seen[rec.QualifiedName]; dup {
			continue
		}
		seen[rec.QualifiedName] = struct{}{}
		out = append(out, rec)
	}
	return out
}

func viewsOf(records []types.Record) []types.RecordView {
	views := make([]types.RecordView, 0, len(records))
	for _, rec := range records {
		views = append(views, rec.View())
	}
	return views
}
