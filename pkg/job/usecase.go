package job

import "context"

// UseCase exposes listing and lookup over whichever source is configured.
type UseCase interface {
	List(ctx context.Context, f Filters, limit, offset int) ([]Job, error)
	GetByID(ctx context.Context, id string) (Job, error)
}

type service struct {
	source Source
}

func NewService(source Source) UseCase { return &service{source: source} }

func (s *service) List(ctx context.Context, f Filters, limit, offset int) ([]Job, error) {
	if limit <= 0 {
		limit = 9 // page size of the listing UI
	}
	return s.source.List(ctx, Query{
		Role:     f.Role,
		Location: f.Location,
		Limit:    limit,
		Offset:   offset,
	})
}

func (s *service) GetByID(ctx context.Context, id string) (Job, error) {
	return s.source.Get(ctx, id)
}
