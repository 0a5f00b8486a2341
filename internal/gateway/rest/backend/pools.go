package backend

import (
	"context"
	"net/http"
	"net/url"

	"khaogully-admin/internal/entities"
)

func (g *Gateway) ListPools(ctx context.Context, filter entities.PoolFilter) ([]entities.Pool, error) {
	var pools []entities.Pool
	query := optional(nil, "status", string(filter.Status))
	if err := g.get(ctx, "/pools", "/pools", query, &pools); err != nil {
		return nil, err
	}
	return pools, nil
}

func (g *Gateway) GetPool(ctx context.Context, poolID int64) (*entities.PoolDetail, error) {
	var pool entities.PoolDetail
	if err := g.get(ctx, "/pools/{id}", "/pools/"+id(poolID), nil, &pool); err != nil {
		return nil, err
	}
	return &pool, nil
}

func (g *Gateway) GroupPool(ctx context.Context, poolID int64) error {
	return g.call(ctx, http.MethodPost, "/pools/{id}/group", "/pools/"+id(poolID)+"/group", nil, nil, nil)
}

func (g *Gateway) AssignPoolGroup(ctx context.Context, poolID, groupID, driverID int64) (*entities.ActionResult, error) {
	var res entities.ActionResult
	query := url.Values{"driver_id": {id(driverID)}}
	path := "/pools/" + id(poolID) + "/groups/" + id(groupID) + "/assign"
	if err := g.call(ctx, http.MethodPost, "/pools/{id}/groups/{gid}/assign", path, query, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *Gateway) SyncPools(ctx context.Context, req entities.PoolSyncRequest) (*entities.PoolSyncResult, error) {
	var res entities.PoolSyncResult
	if err := g.call(ctx, http.MethodPost, "/pools/sync", "/pools/sync", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *Gateway) GetPoolOrders(ctx context.Context, poolID int64) (*entities.PoolOrders, error) {
	var res entities.PoolOrders
	if err := g.get(ctx, "/pools/{id}/details", "/pools/"+id(poolID)+"/details", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *Gateway) AssignPoolDriver(ctx context.Context, poolID int64, assignment entities.PoolDriverAssignment) (*entities.ActionResult, error) {
	var res entities.ActionResult
	path := "/pools/" + id(poolID) + "/assign-driver"
	if err := g.call(ctx, http.MethodPost, "/pools/{id}/assign-driver", path, nil, assignment, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (g *Gateway) TriggerSync(ctx context.Context) (*entities.TriggerSyncResult, error) {
	var res entities.TriggerSyncResult
	if err := g.call(ctx, http.MethodPost, "/sync/trigger-sync", "/sync/trigger-sync", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
