package service

import "context"

// HealthService проверяет доступность хранилища.
type HealthService struct {
	repo HealthRepo
}

func NewHealthService(repo HealthRepo) *HealthService {
	return &HealthService{repo: repo}
}

// Check возвращает ошибку, если хранилище не отвечает.
func (s *HealthService) Check(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
