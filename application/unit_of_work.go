package application

import (
	"context"

	"novabot/domain/interfaces"
)

// UnitOfWork scopes one database transaction. Repositories obtained from it
// all run on that transaction, and events published through EventBus are
// buffered until Commit succeeds.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProgressionRepository() interfaces.ProgressionRepository
	WalletRepository() interfaces.WalletRepository
	RankRepository() interfaces.RankRepository
	CooldownRepository() interfaces.CooldownRepository
	SparkleRepository() interfaces.SparkleRepository

	EventBus() interfaces.EventPublisher
}

// UnitOfWorkFactory creates units of work. Each message event and each
// command interaction gets its own.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
