package statusservice

//go:generate mockgen -source=statusservice.go -destination=mock_statusservice.go -package=statusservice

import (
	"context"

	"github.com/GlebRadaev/savesmart/internal/storage"
)

type Repo interface {
	CollectionStatus(ctx context.Context) map[string]storage.Result
}

// Report is the health of every persisted collection. Empty collections count as healthy.
type Report struct {
	Healthy     bool
	Collections map[string]storage.Result
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Status(ctx context.Context) Report {
	collections := s.repo.CollectionStatus(ctx)
	report := Report{Healthy: true, Collections: collections}
	for _, res := range collections {
		switch res {
		case storage.ResultCorrupt, storage.ResultWriteFailed, storage.ResultUnavailable:
			report.Healthy = false
		}
	}
	return report
}
