// Package mocks provides generated mock implementations for testing the
// schedsync service layer.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the repository port interfaces in internal/core. To regenerate mocks after
// interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockJobRepository(ctrl)
//	mockRepo.EXPECT().GetByKey(gomock.Any(), gomock.Any(), gomock.Any()).Return(job, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=job_repository_mock.go github.com/millbrook-mfg/schedsync/internal/core JobRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=move_history_repository_mock.go github.com/millbrook-mfg/schedsync/internal/core MoveHistoryRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=machine_settings_repository_mock.go github.com/millbrook-mfg/schedsync/internal/core MachineSettingsRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=settings_cache_mock.go github.com/millbrook-mfg/schedsync/internal/core SettingsCache
