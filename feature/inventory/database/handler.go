package database

import (
	"context"
	"fmt"

	"inventory-sync/core/diffsync"

	"gorm.io/gorm"
)

// Handler writes one inventory type through to its table before updating the
// in-memory store. Database failures become *diffsync.CrudError so a single
// rejected row does not stop reconciliation.
type Handler struct {
	db    *gorm.DB
	table table
}

var (
	_ diffsync.Creator = (*Handler)(nil)
	_ diffsync.Updater = (*Handler)(nil)
	_ diffsync.Deleter = (*Handler)(nil)
)

func (h *Handler) fail(action diffsync.Action, ids diffsync.Identity, err error) error {
	return diffsync.NewCrudError(action, h.table.schema.Type, ids.String(), err)
}

// Create inserts the row, then adds the model to store. The store is checked
// first so a row is never written for a model the store would reject.
func (h *Handler) Create(ctx context.Context, store *diffsync.Store, ids diffsync.Identity, attrs diffsync.Attrs) (diffsync.Model, error) {
	factory, err := h.factory(store)
	if err != nil {
		return nil, err
	}
	m, err := factory(ids, attrs)
	if err != nil {
		return nil, h.fail(diffsync.ActionCreate, ids, err)
	}
	if _, err := store.GetByID(h.table.schema.Type, diffsync.UniqueID(m)); err == nil {
		return nil, fmt.Errorf("%w: %s %q in %s", diffsync.ErrDuplicateObject, h.table.schema.Type, diffsync.UniqueID(m), store.Name())
	}

	if err := h.db.WithContext(ctx).Create(h.table.record(m)).Error; err != nil {
		return nil, h.fail(diffsync.ActionCreate, ids, err)
	}
	return diffsync.DefaultCreate(store, h.table.schema.Type, ids, attrs)
}

// Update rewrites the attribute columns of the row, then the stored model.
// The merged attributes are validated before the row is touched.
func (h *Handler) Update(ctx context.Context, store *diffsync.Store, ids diffsync.Identity, attrs diffsync.Attrs) (diffsync.Model, error) {
	factory, err := h.factory(store)
	if err != nil {
		return nil, err
	}
	existing, err := store.Get(h.table.schema.Type, ids)
	if err != nil {
		return nil, err
	}
	merged := existing.Attrs().Clone()
	for k, v := range attrs {
		merged[k] = v
	}
	if _, err := factory(ids, merged); err != nil {
		return nil, h.fail(diffsync.ActionUpdate, ids, err)
	}

	res := h.db.WithContext(ctx).
		Model(h.table.empty()).
		Where(h.table.keyCondition(ids)).
		Updates(map[string]any(attrs))
	if res.Error != nil {
		return nil, h.fail(diffsync.ActionUpdate, ids, res.Error)
	}
	return diffsync.DefaultUpdate(store, h.table.schema.Type, ids, attrs)
}

// Delete removes the row, then the stored model.
func (h *Handler) Delete(ctx context.Context, store *diffsync.Store, ids diffsync.Identity, attrs diffsync.Attrs) (diffsync.Model, error) {
	if _, err := store.Get(h.table.schema.Type, ids); err != nil {
		return nil, err
	}

	err := h.db.WithContext(ctx).
		Where(h.table.keyCondition(ids)).
		Delete(h.table.empty()).Error
	if err != nil {
		return nil, h.fail(diffsync.ActionDelete, ids, err)
	}
	return diffsync.DefaultDelete(store, h.table.schema.Type, ids, attrs)
}

func (h *Handler) factory(store *diffsync.Store) (diffsync.Factory, error) {
	entry, ok := store.Registry().Lookup(h.table.schema.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %s", diffsync.ErrUnknownObjectType, h.table.schema.Type)
	}
	return entry.Factory, nil
}

// Install registers a write-through handler for every inventory type in registry.
func Install(db *gorm.DB, registry *diffsync.Registry) error {
	for _, t := range tables {
		if err := registry.SetHandler(t.schema.Type, &Handler{db: db, table: t}); err != nil {
			return err
		}
	}
	return nil
}
