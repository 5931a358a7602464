package cascade

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"smartincident/internal/shared/db"
	"smartincident/internal/shared/errors"
	"smartincident/internal/shared/logger"
)

// Engine executes application-level cascade deletion over the dependency
// graph. The storage layer enforces no foreign-key cascades; this engine is
// what keeps the schema free of orphans.
type Engine struct {
	db        *gorm.DB
	graph     *Graph
	txManager *db.TransactionManager
	logger    logger.Interface
}

func NewEngine(database *gorm.DB, log logger.Interface) *Engine {
	return &Engine{
		db:        database,
		graph:     DefaultGraph(),
		txManager: db.NewTransactionManager(database),
		logger:    log,
	}
}

// Delete removes the entity and every descendant the graph declares, in one
// transaction. Any failing stage aborts and rolls the whole cascade back.
func (e *Engine) Delete(ctx context.Context, kind Kind, id uint) error {
	if _, ok := e.graph.Table(kind); !ok {
		return errors.NewInternalError(fmt.Sprintf("unknown cascade kind: %s", kind))
	}

	err := e.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return e.deleteKind(txCtx, kind, []uint{id})
	})
	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		return errors.NewInternalError("cascade deletion failed", err.Error())
	}

	e.logger.Infow("cascade deletion completed", "kind", string(kind), "id", id)
	return nil
}

// deleteKind removes the given rows of kind, descending into child edges
// first so leaves of the dependency tree go before their parents.
func (e *Engine) deleteKind(ctx context.Context, kind Kind, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, e.db)

	for _, edge := range e.graph.Edges(kind) {
		childTable, ok := e.graph.Table(edge.Child)
		if !ok {
			return errors.NewInternalError(fmt.Sprintf("unknown cascade kind: %s", edge.Child))
		}

		switch edge.Action {
		case ActionNullify:
			if err := tx.Table(childTable).
				Where(edge.FK+" IN ?", ids).
				Update(edge.FK, gorm.Expr("NULL")).Error; err != nil {
				return errors.NewInternalError(
					fmt.Sprintf("cascade stage failed: nullify %s.%s", childTable, edge.FK),
					err.Error())
			}

		case ActionDelete:
			var childIDs []uint
			if err := tx.Table(childTable).
				Where(edge.FK+" IN ?", ids).
				Pluck("id", &childIDs).Error; err != nil {
				return errors.NewInternalError(
					fmt.Sprintf("cascade stage failed: collect %s by %s", childTable, edge.FK),
					err.Error())
			}
			if err := e.deleteKind(ctx, edge.Child, childIDs); err != nil {
				return err
			}
		}
	}

	table, _ := e.graph.Table(kind)
	if err := tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE id IN ?", table), ids).Error; err != nil {
		return errors.NewInternalError(
			fmt.Sprintf("cascade stage failed: delete %s", table),
			err.Error())
	}

	return nil
}
