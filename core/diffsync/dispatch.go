package diffsync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ParentRef identifies the parent element of an operation.
type ParentRef struct {
	Type string
	Keys Identity
}

// Op is one CRUD operation against the destination store.
type Op struct {
	Action Action
	Type   string
	Keys   Identity
	Attrs  Attrs

	// Parent is set for child elements so the created or deleted id can be
	// kept in the parent's child list.
	Parent *ParentRef
}

// Result is the outcome of one dispatched operation.
type Result struct {
	Action Action `json:"action"`
	Type   string `json:"type"`
	ID     string `json:"id"`

	// Model is the produced or removed object; nil when the handler failed.
	Model Model `json:"-"`

	// Err holds the recoverable CRUD failure, if any.
	Err error `json:"-"`
}

// Failed reports whether the operation produced no object.
func (r Result) Failed() bool {
	return r.Err != nil
}

// MarshalJSON renders the failure message in place of the error value.
func (r Result) MarshalJSON() ([]byte, error) {
	view := struct {
		Action Action `json:"action"`
		Type   string `json:"type"`
		ID     string `json:"id"`
		Error  string `json:"error,omitempty"`
	}{Action: r.Action, Type: r.Type, ID: r.ID}
	if r.Err != nil {
		view.Error = r.Err.Error()
	}
	return json.Marshal(view)
}

// Dispatcher resolves and runs the handler for an operation.
type Dispatcher struct {
	logger *zap.Logger
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{logger: logger}
}

// Dispatch runs op against store. The type's registered override is used when
// it implements the matching capability, the default handler otherwise.
//
// A *CrudError from the handler is logged and returned inside the Result with
// a nil error. Any other error is returned as is.
func (d *Dispatcher) Dispatch(ctx context.Context, store *Store, op Op) (Result, error) {
	res := Result{Action: op.Action, Type: op.Type, ID: op.Keys.String()}

	entry, ok := store.Registry().Lookup(op.Type)
	if !ok || entry.Factory == nil {
		return res, fmt.Errorf("%w: %s", ErrUnknownObjectType, op.Type)
	}

	var (
		model Model
		err   error
	)
	switch op.Action {
	case ActionCreate:
		if h, ok := entry.Handler.(Creator); ok {
			model, err = h.Create(ctx, store, op.Keys, op.Attrs)
		} else {
			model, err = DefaultCreate(store, op.Type, op.Keys, op.Attrs)
		}
	case ActionUpdate:
		if h, ok := entry.Handler.(Updater); ok {
			model, err = h.Update(ctx, store, op.Keys, op.Attrs)
		} else {
			model, err = DefaultUpdate(store, op.Type, op.Keys, op.Attrs)
		}
	case ActionDelete:
		if h, ok := entry.Handler.(Deleter); ok {
			model, err = h.Delete(ctx, store, op.Keys, op.Attrs)
		} else {
			model, err = DefaultDelete(store, op.Type, op.Keys, op.Attrs)
		}
	default:
		return res, fmt.Errorf("unsupported action %q for %s", op.Action, op.Type)
	}

	if err != nil {
		var crudErr *CrudError
		if errors.As(err, &crudErr) {
			d.logger.Warn("Object operation failed",
				zap.String("action", string(op.Action)),
				zap.String("type", op.Type),
				zap.String("id", res.ID),
				zap.Error(err),
			)
			res.Err = err
			return res, nil
		}
		return res, err
	}

	res.Model = model
	d.linkParent(store, op)
	return res, nil
}

// linkParent keeps the parent's child id list in step with creates and deletes.
// A parent that is not stored (e.g., deleted earlier in the same pass) is ignored.
func (d *Dispatcher) linkParent(store *Store, op Op) {
	if op.Parent == nil || (op.Action != ActionCreate && op.Action != ActionDelete) {
		return
	}
	parent, err := store.Get(op.Parent.Type, op.Parent.Keys)
	if err != nil {
		return
	}
	field, ok := parent.Schema().ChildField(op.Type)
	if !ok {
		return
	}
	linker, ok := parent.(ChildLinker)
	if !ok {
		return
	}
	if op.Action == ActionCreate {
		linker.AddChildID(field, op.Keys.String())
	} else {
		linker.RemoveChildID(field, op.Keys.String())
	}
}

// DefaultCreate constructs a model from ids and attrs and adds it to store.
func DefaultCreate(store *Store, typ string, ids Identity, attrs Attrs) (Model, error) {
	entry, ok := store.Registry().Lookup(typ)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownObjectType, typ)
	}
	m, err := entry.Factory(ids, attrs)
	if err != nil {
		return nil, fmt.Errorf("failed to construct %s %q: %w", typ, ids.String(), err)
	}
	if err := store.Add(m); err != nil {
		return nil, err
	}
	return m, nil
}

// DefaultUpdate overwrites the attributes named in attrs on the stored model.
func DefaultUpdate(store *Store, typ string, ids Identity, attrs Attrs) (Model, error) {
	m, err := store.Get(typ, ids)
	if err != nil {
		return nil, err
	}
	setter, ok := m.(AttrSetter)
	if !ok {
		return nil, fmt.Errorf("%s does not support attribute updates", typ)
	}
	if err := setter.SetAttrs(attrs); err != nil {
		return nil, fmt.Errorf("failed to update %s %q: %w", typ, ids.String(), err)
	}
	return m, nil
}

// DefaultDelete removes the stored model whose unique id matches the one
// computed from a transient model built from ids and attrs.
func DefaultDelete(store *Store, typ string, ids Identity, attrs Attrs) (Model, error) {
	entry, ok := store.Registry().Lookup(typ)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownObjectType, typ)
	}
	transient, err := entry.Factory(ids, attrs)
	if err != nil {
		return nil, fmt.Errorf("failed to construct %s %q: %w", typ, ids.String(), err)
	}
	existing, err := store.GetByID(typ, UniqueID(transient))
	if err != nil {
		return nil, err
	}
	if err := store.Delete(existing); err != nil {
		return nil, err
	}
	return existing, nil
}
