// Package models defines the network inventory model types reconciled by the
// diffsync engine: sites, devices, interfaces, IP addresses and cables.
//
// Each type is a plain struct implementing diffsync.Model. Identity and
// attribute names double as column and document field names so adapters can
// map them without a translation table.
//
// # Hierarchy
//
//	site ─► device ─► interface ─► ip_address
//	cable (top level, endpoints referenced by device/interface name)
//
// Interfaces carry is_lag / is_lag_member flags; NewDiffer installs the
// bundle-aware ordering so LAGs are created before their members and
// deletions happen last.
package models
