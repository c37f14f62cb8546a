package diffsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AddDuplicate(t *testing.T) {
	s := newTestStore("dst")
	addDevice(t, s, "device1", "leaf")

	dup, err := testFactory(testDeviceSchema)(Identity{"device1"}, Attrs{"role": "spine"})
	require.NoError(t, err)

	err = s.Add(dup)
	assert.ErrorIs(t, err, ErrDuplicateObject)

	stored, err := s.Get("device", Identity{"device1"})
	require.NoError(t, err)
	assert.Equal(t, "leaf", stored.Attrs()["role"], "Duplicate must not overwrite")
}

func TestStore_Get(t *testing.T) {
	s := newTestStore("dst")
	dev := addDevice(t, s, "device1", "leaf")
	addInterface(t, s, dev, "eth0", plain("uplink"))

	t.Run("Found", func(t *testing.T) {
		m, err := s.Get("interface", Identity{"device1", "eth0"})
		require.NoError(t, err)
		assert.Equal(t, "device1__eth0", UniqueID(m))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := s.Get("interface", Identity{"device1", "eth9"})
		assert.ErrorIs(t, err, ErrObjectNotPresent)
	})
}

func TestStore_GetAll(t *testing.T) {
	s := newTestStore("dst")
	addDevice(t, s, "b", "leaf")
	addDevice(t, s, "a", "leaf")

	all := s.GetAll("device")
	require.Len(t, all, 2)
	assert.Equal(t, "a", UniqueID(all[0]))
	assert.Equal(t, "b", UniqueID(all[1]))

	assert.Empty(t, s.GetAll("unseen"))
}

func TestStore_GetByIDs(t *testing.T) {
	s := newTestStore("dst")
	dev := addDevice(t, s, "device1", "leaf")
	addInterface(t, s, dev, "eth1", plain(""))
	addInterface(t, s, dev, "eth0", plain(""))

	got := s.GetByIDs("interface", []string{"device1__eth1", "missing", "device1__eth0"})
	require.Len(t, got, 2)
	assert.Equal(t, "device1__eth1", UniqueID(got[0]))
	assert.Equal(t, "device1__eth0", UniqueID(got[1]))
}

func TestStore_Delete(t *testing.T) {
	s := newTestStore("dst")
	dev := addDevice(t, s, "device1", "leaf")

	require.NoError(t, s.Delete(dev))
	assert.Equal(t, 0, s.Count())
	assert.ErrorIs(t, s.Delete(dev), ErrObjectNotPresent)
}

func TestStore_AddChild(t *testing.T) {
	s := newTestStore("dst")
	dev := addDevice(t, s, "device1", "leaf")
	addInterface(t, s, dev, "eth0", plain(""))

	assert.Equal(t, []string{"device1__eth0"}, dev.ChildIDs("interfaces"))

	cable, err := testFactory(testCableSchema)(Identity{"x", "y"}, nil)
	require.NoError(t, err)
	assert.Error(t, s.AddChild(dev, cable), "device does not declare cable children")
}

func TestStore_Validate(t *testing.T) {
	s := newTestStore("dst")
	dev := addDevice(t, s, "device1", "leaf")
	addInterface(t, s, dev, "eth0", plain(""))
	require.NoError(t, s.Validate())

	dev.AddChildID("interfaces", "device1__ghost")
	err := s.Validate()
	assert.ErrorIs(t, err, ErrDanglingChild)
	assert.Contains(t, err.Error(), "device1__ghost")
}

func TestStore_TypesAndCount(t *testing.T) {
	s := newTestStore("dst")
	dev := addDevice(t, s, "device1", "leaf")
	addInterface(t, s, dev, "eth0", plain(""))

	assert.Equal(t, []string{"device", "interface"}, s.Types())
	assert.Equal(t, 2, s.Count())
}

func TestAttrs_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Attrs
		want bool
	}{
		{"Same", Attrs{"x": "1", "n": 2}, Attrs{"x": "1", "n": 2}, true},
		{"DifferentValue", Attrs{"x": "1"}, Attrs{"x": "2"}, false},
		{"MissingKey", Attrs{"x": "1"}, Attrs{"y": "1"}, false},
		{"Slices", Attrs{"tags": []string{"a"}}, Attrs{"tags": []string{"a"}}, true},
		{"SliceOrder", Attrs{"tags": []string{"a", "b"}}, Attrs{"tags": []string{"b", "a"}}, false},
		{"BothEmpty", Attrs{}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}
