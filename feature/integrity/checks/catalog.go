package checks

import (
	"context"
)

// CatalogCounter is the part of the catalog store the health check reads.
type CatalogCounter interface {
	CountOffers(ctx context.Context) (int64, error)
	CountAvailable(ctx context.Context) (int64, error)
	CountConfigurations(ctx context.Context) (int64, error)
	CountMalformedConfigurations(ctx context.Context) (int64, error)
}

// CatalogReport summarizes catalog contents. Malformed configurations have
// memory or storage 0 and never show up in filtered browsing.
type CatalogReport struct {
	Offers         int64   `json:"offers"`
	Available      int64   `json:"available"`
	Configurations int64   `json:"configurations"`
	Malformed      int64   `json:"malformed"`
	MalformedRatio float64 `json:"malformed_ratio"`
	Status         string  `json:"status"` // "ok", "empty", "degraded"
}

// DegradedRatio is the malformed share above which the catalog is reported as degraded.
const DegradedRatio = 0.5

// CheckCatalog counts offers and malformed configurations.
func CheckCatalog(ctx context.Context, counter CatalogCounter) (*CatalogReport, error) {
	var (
		report CatalogReport
		err    error
	)

	if report.Offers, err = counter.CountOffers(ctx); err != nil {
		return nil, err
	}
	if report.Available, err = counter.CountAvailable(ctx); err != nil {
		return nil, err
	}
	if report.Configurations, err = counter.CountConfigurations(ctx); err != nil {
		return nil, err
	}
	if report.Malformed, err = counter.CountMalformedConfigurations(ctx); err != nil {
		return nil, err
	}

	if report.Configurations > 0 {
		report.MalformedRatio = float64(report.Malformed) / float64(report.Configurations)
	}

	switch {
	case report.Offers == 0:
		report.Status = "empty"
	case report.MalformedRatio > DegradedRatio:
		report.Status = "degraded"
	default:
		report.Status = "ok"
	}
	return &report, nil
}
