package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"seodash/internal/config"
	apierrors "seodash/internal/errors"
	"seodash/internal/exporter"
	"seodash/internal/infrastructure"
	"seodash/internal/utm"
	api "seodash/pkg/contracts/api/v1"
	"seodash/pkg/contracts/domain"
)

// LinkService builds campaign tracking links for listing URLs
type LinkService struct {
	exportsDir string
	metrics    *infrastructure.BusinessMetrics
	logger     *slog.Logger
}

// NewLinkService creates a link service. Saved link files go to exportsDir
// unless given an absolute path. metrics may be nil.
func NewLinkService(exportsDir string, metrics *infrastructure.BusinessMetrics, logger *slog.Logger) *LinkService {
	if logger == nil {
		logger = slog.Default()
	}
	return &LinkService{
		exportsDir: exportsDir,
		metrics:    metrics,
		logger:     infrastructure.WithComponent(logger, "link_service"),
	}
}

// Build merges the campaign parameters into req.URL. A channel preset fills
// source and medium unless they are given explicitly.
func (s *LinkService) Build(ctx context.Context, req api.LinkRequest) (*domain.TrackingLink, error) {
	link, err := s.build(req)
	infrastructure.RecordLinkBuilt(ctx, s.metrics, req.Channel, err)
	if err != nil {
		s.logger.WarnContext(ctx, "tracking link rejected",
			slog.String("channel", req.Channel),
			slog.String("error", err.Error()))
		return nil, err
	}

	s.logger.InfoContext(ctx, "tracking link built",
		slog.String("channel", link.Channel),
		slog.String("source", link.Source),
		slog.String("medium", link.Medium),
		slog.String("campaign", link.Campaign))
	return link, nil
}

func (s *LinkService) build(req api.LinkRequest) (*domain.TrackingLink, error) {
	baseURL := strings.TrimSpace(req.URL)
	if baseURL == "" {
		return nil, apierrors.ErrValidation("url", api.MsgMissingURL)
	}

	params := utm.Params{
		Source:   strings.TrimSpace(req.Source),
		Medium:   strings.TrimSpace(req.Medium),
		Campaign: strings.TrimSpace(req.Campaign),
		Term:     req.Term,
		Content:  req.Content,
	}

	channel := strings.TrimSpace(req.Channel)
	if channel != "" {
		preset, err := utm.ResolveChannel(channel)
		if err != nil {
			return nil, err
		}
		params = params.WithPreset(preset)
	}

	var missing []apierrors.ValidationError
	if params.Source == "" {
		missing = append(missing, apierrors.ValidationError{Field: "source", Message: "source is required when channel is not set"})
	}
	if params.Medium == "" {
		missing = append(missing, apierrors.ValidationError{Field: "medium", Message: "medium is required when channel is not set"})
	}
	if params.Campaign == "" {
		missing = append(missing, apierrors.ValidationError{Field: "campaign", Message: "campaign is required"})
	}
	if len(missing) > 0 {
		return nil, apierrors.NewValidationErrors(missing)
	}

	tracked, err := utm.BuildTrackingURL(baseURL, params)
	if err != nil {
		return nil, err
	}

	return &domain.TrackingLink{
		URL:      tracked,
		BaseURL:  baseURL,
		Channel:  channel,
		Source:   params.Source,
		Medium:   params.Medium,
		Campaign: params.Campaign,
		Term:     strings.TrimSpace(params.Term),
		Content:  strings.TrimSpace(params.Content),
	}, nil
}

// Channels lists the channel presets in display order
func (s *LinkService) Channels() []domain.Channel {
	presets := utm.Channels()
	out := make([]domain.Channel, 0, len(presets))
	for _, p := range presets {
		out = append(out, toChannel(p))
	}
	return out
}

// Channel resolves one preset by its exact name
func (s *LinkService) Channel(name string) (domain.Channel, error) {
	p, err := utm.ResolveChannel(name)
	if err != nil {
		return domain.Channel{}, err
	}
	return toChannel(p), nil
}

// Save writes link to a plain text file and returns its path. An empty path
// writes the default link file into the exports directory.
func (s *LinkService) Save(ctx context.Context, link, path string) (string, error) {
	if path == "" {
		path = config.LinkFileName
	}
	if !filepath.IsAbs(path) && s.exportsDir != "" {
		path = filepath.Join(s.exportsDir, path)
	}

	if err := exporter.WriteLinkFile(path, link); err != nil {
		s.logger.ErrorContext(ctx, "link file not written",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("save tracking link: %w", err)
	}
	return path, nil
}

func toChannel(p utm.ChannelPreset) domain.Channel {
	return domain.Channel{Name: p.Channel, Source: p.Source, Medium: p.Medium}
}
