package memcachefx

import (
	"go.uber.org/fx"

	mem "servio/pkg/memcache"
)

var Module = fx.Provide(provideSnapshotStore)

func provideSnapshotStore() mem.SnapshotStore {
	return mem.NewSnapshots()
}
