package snapshot

import (
	"fmt"

	"inventory-sync/core/diffsync"
	"inventory-sync/feature/inventory/models"
)

// Populate adds every object of the document to store.
func (d *Document) Populate(store *diffsync.Store) error {
	b := models.NewBuilder(store)

	for _, site := range d.Sites {
		if _, err := b.Site(site.Name); err != nil {
			return err
		}
		for _, dev := range site.Devices {
			if err := populateDevice(b, site.Name, dev); err != nil {
				return err
			}
		}
	}

	for _, c := range d.Cables {
		attrs := diffsync.Attrs{models.AttrStatus: c.Status}
		if _, err := b.Cable(c.SideADevice, c.SideAInterface, c.SideZDevice, c.SideZInterface, attrs); err != nil {
			return fmt.Errorf("cable %s/%s: %w", c.SideADevice, c.SideAInterface, err)
		}
	}
	return nil
}

func populateDevice(b *models.Builder, site string, dev Device) error {
	_, err := b.Device(dev.Name, diffsync.Attrs{
		models.AttrSite:     site,
		models.AttrPlatform: dev.Platform,
		models.AttrModel:    dev.Model,
		models.AttrRole:     dev.Role,
		models.AttrSerial:   dev.Serial,
	})
	if err != nil {
		return err
	}

	for _, intf := range dev.Interfaces {
		_, err := b.Interface(dev.Name, intf.Name, diffsync.Attrs{
			models.AttrDescription: intf.Description,
			models.AttrMTU:         intf.MTU,
			models.AttrEnabled:     intf.Enabled,
			models.AttrMode:        intf.Mode,
			models.AttrIsLAG:       intf.IsLAG,
			models.AttrIsLAGMember: intf.IsLAGMember,
			models.AttrParentLAG:   intf.ParentLAG,
		})
		if err != nil {
			return err
		}
		for _, addr := range intf.IPAddresses {
			attrs := diffsync.Attrs{models.AttrRole: addr.Role}
			if _, err := b.IPAddress(dev.Name, intf.Name, addr.Address, attrs); err != nil {
				return err
			}
		}
	}
	return nil
}

// FromStore converts a populated inventory store back into a document.
// Devices are nested under the site named by their site attribute, in store
// order; a site referenced only by devices is added after the stored sites.
func FromStore(store *diffsync.Store) *Document {
	doc := &Document{}

	index := make(map[string]int)
	for _, m := range store.GetAll(models.TypeSite) {
		name := m.(*models.Site).Name
		index[name] = len(doc.Sites)
		doc.Sites = append(doc.Sites, Site{Name: name})
	}
	for _, m := range store.GetAll(models.TypeDevice) {
		d := m.(*models.Device)
		i, ok := index[d.Site]
		if !ok {
			i = len(doc.Sites)
			index[d.Site] = i
			doc.Sites = append(doc.Sites, Site{Name: d.Site})
		}
		doc.Sites[i].Devices = append(doc.Sites[i].Devices, deviceFromModel(store, d))
	}

	for _, m := range store.GetAll(models.TypeCable) {
		c := m.(*models.Cable)
		doc.Cables = append(doc.Cables, Cable{
			SideADevice:    c.SideADevice,
			SideAInterface: c.SideAInterface,
			SideZDevice:    c.SideZDevice,
			SideZInterface: c.SideZInterface,
			Status:         c.Status,
		})
	}
	return doc
}

func deviceFromModel(store *diffsync.Store, d *models.Device) Device {
	dev := Device{
		Name:     d.Name,
		Platform: d.Platform,
		Model:    d.Model,
		Role:     d.Role,
		Serial:   d.Serial,
	}
	for _, im := range store.GetByIDs(models.TypeInterface, d.Interfaces) {
		i := im.(*models.Interface)
		intf := Interface{
			Name:        i.Name,
			Description: i.Description,
			MTU:         i.MTU,
			Enabled:     i.Enabled,
			Mode:        i.Mode,
			IsLAG:       i.IsLAG,
			IsLAGMember: i.IsLAGMember,
			ParentLAG:   i.ParentLAG,
		}
		for _, am := range store.GetByIDs(models.TypeIPAddress, i.IPAddresses) {
			a := am.(*models.IPAddress)
			intf.IPAddresses = append(intf.IPAddresses, IPAddress{Address: a.Address, Role: a.Role})
		}
		dev.Interfaces = append(dev.Interfaces, intf)
	}
	return dev
}
