//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pools_test
package pools

import (
	"context"

	"khaogully-admin/internal/entities"
)

type PoolGateway interface {
	ListPools(ctx context.Context, filter entities.PoolFilter) ([]entities.Pool, error)
	GetPool(ctx context.Context, poolID int64) (*entities.PoolDetail, error)
	GroupPool(ctx context.Context, poolID int64) error
	AssignPoolGroup(ctx context.Context, poolID, groupID, driverID int64) (*entities.ActionResult, error)
	SyncPools(ctx context.Context, req entities.PoolSyncRequest) (*entities.PoolSyncResult, error)
	GetPoolOrders(ctx context.Context, poolID int64) (*entities.PoolOrders, error)
	AssignPoolDriver(ctx context.Context, poolID int64, assignment entities.PoolDriverAssignment) (*entities.ActionResult, error)
	TriggerSync(ctx context.Context) (*entities.TriggerSyncResult, error)
}

type DriverGateway interface {
	ListDrivers(ctx context.Context, filter entities.DriverFilter) ([]entities.Driver, error)
	ListAvailableDrivers(ctx context.Context) ([]entities.AvailableDriver, error)
}
