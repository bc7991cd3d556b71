package repository

import (
	"context"
	"fmt"

	"novabot/application"
	"novabot/database"
	"novabot/domain/interfaces"
	"novabot/infrastructure"

	"github.com/jackc/pgx/v5"
)

// unitOfWork implements application.UnitOfWork on a single pgx transaction.
type unitOfWork struct {
	db        *database.DB
	tx        pgx.Tx
	ctx       context.Context
	publisher *infrastructure.TransactionalPublisher

	progressionRepo interfaces.ProgressionRepository
	walletRepo      interfaces.WalletRepository
	rankRepo        interfaces.RankRepository
	cooldownRepo    interfaces.CooldownRepository
	sparkleRepo     interfaces.SparkleRepository
}

type unitOfWorkFactory struct {
	db         *database.DB
	dispatcher *infrastructure.EventDispatcher
}

// NewUnitOfWorkFactory creates a factory producing units of work whose
// committed events are delivered through the given dispatcher.
func NewUnitOfWorkFactory(db *database.DB, dispatcher *infrastructure.EventDispatcher) application.UnitOfWorkFactory {
	return &unitOfWorkFactory{db: db, dispatcher: dispatcher}
}

func (f *unitOfWorkFactory) Create() application.UnitOfWork {
	return &unitOfWork{
		db:        f.db,
		publisher: infrastructure.NewTransactionalPublisher(f.dispatcher),
	}
}

// Begin starts the transaction and binds all repositories to it.
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.tx = tx
	u.ctx = ctx

	u.progressionRepo = newProgressionRepository(tx)
	u.walletRepo = newWalletRepository(tx)
	u.rankRepo = newRankRepository(tx)
	u.cooldownRepo = newCooldownRepository(tx)
	u.sparkleRepo = newSparkleRepository(tx)

	return nil
}

// Commit commits the transaction and then flushes buffered events. Event
// delivery failures never unwind the committed bookkeeping.
func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}

	if err := u.tx.Commit(u.ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	u.tx = nil

	u.publisher.Flush()
	return nil
}

// Rollback aborts the transaction and discards buffered events. Safe to call
// after Commit; it does nothing then.
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil
	}

	err := u.tx.Rollback(u.ctx)
	u.tx = nil
	u.publisher.Discard()

	if err != nil && err != pgx.ErrTxClosed {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

func (u *unitOfWork) ProgressionRepository() interfaces.ProgressionRepository {
	return u.progressionRepo
}

func (u *unitOfWork) WalletRepository() interfaces.WalletRepository {
	return u.walletRepo
}

func (u *unitOfWork) RankRepository() interfaces.RankRepository {
	return u.rankRepo
}

func (u *unitOfWork) CooldownRepository() interfaces.CooldownRepository {
	return u.cooldownRepo
}

func (u *unitOfWork) SparkleRepository() interfaces.SparkleRepository {
	return u.sparkleRepo
}

func (u *unitOfWork) EventBus() interfaces.EventPublisher {
	return u.publisher
}
