package diffsync

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	testDeviceSchema = &Schema{
		Type:        "device",
		Identifiers: []string{"name"},
		Attributes:  []string{"role"},
		Children:    []ChildSpec{{Type: "interface", Field: "interfaces"}},
	}
	testInterfaceSchema = &Schema{
		Type:        "interface",
		Identifiers: []string{"device", "name"},
		Attributes:  []string{"description", "is_lag", "is_lag_member"},
	}
	testCableSchema = &Schema{
		Type:        "cable",
		Identifiers: []string{"a", "z"},
		Attributes:  []string{"status"},
	}
)

// testModel is a minimal Model backed by an attribute map.
type testModel struct {
	schema   *Schema
	ids      Identity
	attrs    Attrs
	children map[string][]string
}

func (m *testModel) Schema() *Schema    { return m.schema }
func (m *testModel) Identity() Identity { return m.ids }
func (m *testModel) Attrs() Attrs       { return m.attrs.Clone() }

func (m *testModel) ChildIDs(field string) []string {
	return m.children[field]
}

func (m *testModel) SetAttrs(attrs Attrs) error {
	for k, v := range attrs {
		m.attrs[k] = v
	}
	return nil
}

func (m *testModel) AddChildID(field, id string) {
	m.children[field] = AppendID(m.children[field], id)
}

func (m *testModel) RemoveChildID(field, id string) {
	m.children[field] = RemoveID(m.children[field], id)
}

func testFactory(schema *Schema) Factory {
	return func(ids Identity, attrs Attrs) (Model, error) {
		if len(ids) != len(schema.Identifiers) {
			return nil, errors.New("wrong identifier count")
		}
		a := Attrs{}
		for _, name := range schema.Attributes {
			if v, ok := attrs[name]; ok {
				a[name] = v
			}
		}
		return &testModel{schema: schema, ids: ids, attrs: a, children: map[string][]string{}}, nil
	}
}

func testRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(testDeviceSchema, testFactory(testDeviceSchema))
	r.MustRegister(testInterfaceSchema, testFactory(testInterfaceSchema))
	r.MustRegister(testCableSchema, testFactory(testCableSchema))
	return r
}

func newTestStore(name string, topLevel ...string) *Store {
	if len(topLevel) == 0 {
		topLevel = []string{"device"}
	}
	return NewStore(name, testRegistry(), topLevel...)
}

func addDevice(t *testing.T, s *Store, name, role string) *testModel {
	t.Helper()
	m, err := testFactory(testDeviceSchema)(Identity{name}, Attrs{"role": role})
	require.NoError(t, err)
	require.NoError(t, s.Add(m))
	return m.(*testModel)
}

func addInterface(t *testing.T, s *Store, device *testModel, name string, attrs Attrs) *testModel {
	t.Helper()
	m, err := testFactory(testInterfaceSchema)(Identity{device.ids[0], name}, attrs)
	require.NoError(t, err)
	require.NoError(t, s.AddChild(device, m))
	return m.(*testModel)
}

func plain(desc string) Attrs {
	return Attrs{"description": desc, "is_lag": false, "is_lag_member": false}
}

// recordingHandler wraps the default handlers and records every call.
type recordingHandler struct {
	calls  []Action
	ids    []string
	failOn map[Action]bool
}

func (h *recordingHandler) record(action Action, ids Identity) error {
	h.calls = append(h.calls, action)
	h.ids = append(h.ids, ids.String())
	if h.failOn[action] {
		return NewCrudError(action, "interface", ids.String(), errors.New("remote rejected"))
	}
	return nil
}

func (h *recordingHandler) Create(_ context.Context, store *Store, ids Identity, attrs Attrs) (Model, error) {
	if err := h.record(ActionCreate, ids); err != nil {
		return nil, err
	}
	return DefaultCreate(store, "interface", ids, attrs)
}

func (h *recordingHandler) Update(_ context.Context, store *Store, ids Identity, attrs Attrs) (Model, error) {
	if err := h.record(ActionUpdate, ids); err != nil {
		return nil, err
	}
	return DefaultUpdate(store, "interface", ids, attrs)
}

func (h *recordingHandler) Delete(_ context.Context, store *Store, ids Identity, attrs Attrs) (Model, error) {
	if err := h.record(ActionDelete, ids); err != nil {
		return nil, err
	}
	return DefaultDelete(store, "interface", ids, attrs)
}

func (h *recordingHandler) count(action Action) int {
	n := 0
	for _, a := range h.calls {
		if a == action {
			n++
		}
	}
	return n
}
