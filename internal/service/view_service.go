package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jengzang/turismo-backend-go/internal/config"
	"github.com/jengzang/turismo-backend-go/internal/content"
	"github.com/jengzang/turismo-backend-go/internal/dataset"
	"github.com/jengzang/turismo-backend-go/internal/export"
	"github.com/jengzang/turismo-backend-go/internal/models"
	"github.com/jengzang/turismo-backend-go/internal/turismo"
)

// MapOverride carries per-request display settings for the map. Nil fields
// keep the configured value.
type MapOverride struct {
	RadiusDivisor *float64
	Opacity       *float64
}

// ViewService renders the dashboard, map and landing views over one dataset
type ViewService struct {
	ds        *dataset.Dataset
	dashboard turismo.DashboardOptions
	mapOpts   turismo.MapOptions
	tracer    trace.Tracer

	landingOnce sync.Once
	landing     []byte
	landingErr  error
}

// NewViewService creates a view service
func NewViewService(ds *dataset.Dataset, dashboard turismo.DashboardOptions, mapOpts turismo.MapOptions) *ViewService {
	return &ViewService{
		ds:        ds,
		dashboard: dashboard,
		mapOpts:   mapOpts,
		tracer:    otel.Tracer("turismo/service"),
	}
}

// NewViewServiceFromConfig builds render options from the environment settings.
func NewViewServiceFromConfig(ds *dataset.Dataset, cfg *config.Config) (*ViewService, error) {
	barStops, err := turismo.ParseColors(strings.Join(cfg.DashboardColors, ","))
	if err != nil {
		return nil, fmt.Errorf("DASHBOARD_COLORS: %w", err)
	}
	markerStops, err := turismo.ParseColors(strings.Join(cfg.MapColors, ","))
	if err != nil {
		return nil, fmt.Errorf("MAP_COLORS: %w", err)
	}

	mapOpts := turismo.MapOptions{
		Radius: turismo.RadiusScale{
			Divisor: cfg.MapRadiusDivisor,
			Min:     cfg.MapRadiusMin,
			Max:     cfg.MapRadiusMax,
		},
		Stops:   markerStops,
		Opacity: cfg.MapOpacity,
		Center:  models.GeoPoint{Lat: cfg.MapCenterLat, Lon: cfg.MapCenterLon},
		Zoom:    cfg.MapZoom,
	}
	if err := mapOpts.Radius.Validate(); err != nil {
		return nil, err
	}

	return NewViewService(ds, turismo.DashboardOptions{Stops: barStops}, mapOpts), nil
}

// Source returns where the dataset was loaded from
func (s *ViewService) Source() string {
	return s.ds.Source()
}

func (s *ViewService) start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := s.tracer.Start(ctx, name)
	span.SetAttributes(attrs...)
	return ctx, span
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func selectionAttrs(sel models.FilterSelection) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("turismo.departamento", sel.Departamento),
		attribute.String("turismo.destino", sel.Destino),
		attribute.String("turismo.temporada", sel.Temporada),
	}
}

// Overview returns the dataset-wide landing metrics
func (s *ViewService) Overview(ctx context.Context) *models.OverviewView {
	_, span := s.start(ctx, "turismo.Overview")
	defer span.End()

	view := turismo.RenderOverview(s.ds.Records(), s.ds.Source())
	span.SetAttributes(attribute.Int("turismo.records", view.TotalRecords))
	return view
}

// Landing returns the rendered landing page. The dataset never changes, so
// the page is built once.
func (s *ViewService) Landing(ctx context.Context) ([]byte, error) {
	s.landingOnce.Do(func() {
		s.landing, s.landingErr = content.Landing(s.Overview(ctx))
	})
	return s.landing, s.landingErr
}

// Dashboard renders the dashboard for a Departamento/Temporada selection
func (s *ViewService) Dashboard(ctx context.Context, sel models.FilterSelection) (view *models.DashboardView, err error) {
	_, span := s.start(ctx, "turismo.Dashboard", selectionAttrs(sel)...)
	defer func() { finish(span, err) }()

	view, err = turismo.RenderDashboard(s.ds.Records(), sel, s.dashboard)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("turismo.bars", len(view.Bars)))
	return view, nil
}

// Boxplot renders the Visitantes distribution per Destino for one Temporada
func (s *ViewService) Boxplot(ctx context.Context, temporada string) (view *models.BoxplotView, err error) {
	_, span := s.start(ctx, "turismo.Boxplot", attribute.String("turismo.temporada", temporada))
	defer func() { finish(span, err) }()

	return turismo.RenderBoxplot(s.ds.Records(), temporada)
}

// Map renders the marker map for a Destino/Temporada selection
func (s *ViewService) Map(ctx context.Context, sel models.FilterSelection, override MapOverride) (view *models.MapView, err error) {
	_, span := s.start(ctx, "turismo.Map", selectionAttrs(sel)...)
	defer func() { finish(span, err) }()

	opts := s.mapOpts
	if override.RadiusDivisor != nil {
		opts.Radius.Divisor = *override.RadiusDivisor
	}
	if override.Opacity != nil {
		opts.Opacity = *override.Opacity
	}

	view, err = turismo.RenderMap(s.ds.Records(), sel, opts)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("turismo.markers", len(view.Markers)))
	return view, nil
}

// DashboardExport returns the reconciled rows behind a dashboard selection
func (s *ViewService) DashboardExport(ctx context.Context, sel models.FilterSelection) (export.Table, error) {
	view, err := s.Dashboard(ctx, sel)
	if err != nil {
		return export.Table{}, err
	}
	return export.DashboardTable(view.Rows), nil
}

// MapExport returns the marker rows behind a map selection
func (s *ViewService) MapExport(ctx context.Context, sel models.FilterSelection) (export.Table, error) {
	view, err := s.Map(ctx, sel, MapOverride{})
	if err != nil {
		return export.Table{}, err
	}
	return export.MapTable(view.Rows), nil
}
