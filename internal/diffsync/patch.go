package diffsync

import "github.com/MKhiriev/go-diffsync/internal/patch"

// Patch is anything carrying operations for [Sync.Apply]. A [VersionedPatch]
// goes through the version checks, any other Patch is applied as is.
type Patch interface {
	Operations() patch.Patch
}

// PlainPatch is an unversioned patch.
type PlainPatch patch.Patch

// Operations implements [Patch].
func (p PlainPatch) Operations() patch.Patch {
	return patch.Patch(p)
}

// VersionedPatch is a patch stamped with the version pair its producer
// believed current on the receiving side.
type VersionedPatch struct {
	Patch         patch.Patch `json:"patch"`
	ServerVersion int64       `json:"serverVersion"`
	ClientVersion int64       `json:"clientVersion"`
}

// Operations implements [Patch].
func (v VersionedPatch) Operations() patch.Patch {
	return v.Patch
}

// Mirror swaps the version pair. A node counts its own diffs as
// ServerVersion, so an envelope crossing to the other side has its counters
// read the other way round.
func (v VersionedPatch) Mirror() VersionedPatch {
	return VersionedPatch{
		Patch:         v.Patch,
		ServerVersion: v.ClientVersion,
		ClientVersion: v.ServerVersion,
	}
}
