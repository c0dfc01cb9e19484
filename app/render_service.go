package app

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"mbticonsultant/domain/core"
	"mbticonsultant/domain/periodic"
	"mbticonsultant/internal"
	"mbticonsultant/internal/errors"
	"mbticonsultant/internal/metrics"
	"mbticonsultant/ports"
)

// RenderRequest is one user selection
type RenderRequest struct {
	Type  periodic.TypeCode
	Font  string
	Scale float64
}

// AssetStatus reports whether an image can be shown
type AssetStatus struct {
	Available bool   `json:"available"`
	Error     string `json:"error,omitempty"`
}

// RenderResult carries everything the page needs for one render
type RenderResult struct {
	RenderID      string              `json:"renderId"`
	Catalog       []periodic.TypeCode `json:"catalog"`
	Fonts         []string            `json:"fonts"`
	Layout        *periodic.Layout    `json:"layout"`
	Icon          AssetStatus         `json:"icon"`
	Supplementary AssetStatus         `json:"supplementary"`
}

// RenderService runs the load, catalog, filter and layout steps for each request.
// It holds no state between renders.
type RenderService struct {
	source  ports.TableSource
	assets  ports.AssetStore
	metrics *metrics.Metrics
	logger  *internal.Logger
}

// NewRenderService creates a new render service
func NewRenderService(source ports.TableSource, assets ports.AssetStore, m *metrics.Metrics, logger *internal.Logger) *RenderService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &RenderService{
		source:  source,
		assets:  assets,
		metrics: m,
		logger:  logger,
	}
}

// Catalog loads the table and returns its valid type codes
func (s *RenderService) Catalog(ctx context.Context) ([]periodic.TypeCode, error) {
	table, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	catalog := periodic.BuildCatalog(table.Rows)
	if len(catalog) == 0 {
		return nil, errors.NoData("the personality table has no valid types")
	}
	return catalog, nil
}

// Render produces the layout for a selection. A blank type selects the first
// catalog entry.
func (s *RenderService) Render(ctx context.Context, req RenderRequest) (*RenderResult, error) {
	renderID := core.NewRenderID()
	logger := s.logger.With("render", renderID.String())
	start := time.Now()

	result, err := s.render(ctx, req)
	outcome := outcomeOf(err)
	s.metrics.ObserveRender(outcome, time.Since(start))
	if err != nil {
		logger.Warn("[Render] type=%q font=%q failed (%s): %v", req.Type, req.Font, outcome, err)
		return nil, err
	}

	result.RenderID = renderID.String()
	logger.Debug("[Render] type=%s font=%s tiles=%d in %s",
		result.Layout.TypeCode, result.Layout.Style.Font, len(result.Layout.Tiles), time.Since(start))
	return result, nil
}

func (s *RenderService) render(ctx context.Context, req RenderRequest) (*RenderResult, error) {
	table, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	catalog := periodic.BuildCatalog(table.Rows)
	if len(catalog) == 0 {
		return nil, errors.NoData("the personality table has no valid types")
	}

	code := req.Type
	if code == "" {
		code = catalog[0]
	}
	if !periodic.Contains(catalog, code) {
		return nil, errors.WithCode(errors.CodeNotFound, fmt.Errorf("%w: %s", core.ErrUnknownType, code))
	}

	layout, err := periodic.Derive(periodic.Filter(table.Rows, code), periodic.Style{Font: req.Font, Scale: req.Scale})
	if err != nil {
		return nil, classify(err)
	}

	return &RenderResult{
		Catalog:       catalog,
		Fonts:         periodic.Fonts,
		Layout:        layout,
		Icon:          statusOf(s.assets.CheckIcon(code)),
		Supplementary: statusOf(s.assets.CheckSupplementary()),
	}, nil
}

func (s *RenderService) load(ctx context.Context) (*periodic.Table, error) {
	table, err := s.source.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load personality table")
	}
	s.metrics.SetTableRows(table.Len())
	return table, nil
}

// classify attaches an error code to a layout failure
func classify(err error) error {
	switch {
	case core.IsSelectionError(err), stderrors.Is(err, core.ErrInvalidScale):
		return errors.WithCode(errors.CodeInvalidInput, err)
	case core.IsLayoutError(err):
		return errors.WithCode(errors.CodeNoData, err)
	default:
		return errors.Wrap(err, "layout derivation failed")
	}
}

func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeOK
	}
	switch errors.GetCode(err) {
	case errors.CodeNotFound:
		return metrics.OutcomeNotFound
	case errors.CodeInvalidInput:
		return metrics.OutcomeBadInput
	case errors.CodeNoData:
		return metrics.OutcomeNoData
	default:
		return metrics.OutcomeLoadError
	}
}

func statusOf(err error) AssetStatus {
	if err != nil {
		return AssetStatus{Error: err.Error()}
	}
	return AssetStatus{Available: true}
}
