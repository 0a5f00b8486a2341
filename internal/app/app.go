package app

import (
	"context"

	"khaogully-admin/internal/handlers/rest/commission_config_get"
	"khaogully-admin/internal/handlers/rest/commission_config_patch"
	"khaogully-admin/internal/handlers/rest/commission_history_get"
	"khaogully-admin/internal/handlers/rest/commission_rate_delete"
	"khaogully-admin/internal/handlers/rest/commission_rate_patch"
	"khaogully-admin/internal/handlers/rest/commission_rate_post"
	"khaogully-admin/internal/handlers/rest/commission_rate_toggle_post"
	"khaogully-admin/internal/handlers/rest/commission_rates_get"
	"khaogully-admin/internal/handlers/rest/commission_restaurant_assign_post"
	"khaogully-admin/internal/handlers/rest/commission_restaurant_patch"
	"khaogully-admin/internal/handlers/rest/dashboard_get"
	"khaogully-admin/internal/handlers/rest/driver_bank_patch"
	"khaogully-admin/internal/handlers/rest/driver_status_patch"
	"khaogully-admin/internal/handlers/rest/drivers_get"
	"khaogully-admin/internal/handlers/rest/earnings_driver_bank_patch"
	"khaogully-admin/internal/handlers/rest/earnings_driver_get"
	"khaogully-admin/internal/handlers/rest/earnings_get"
	"khaogully-admin/internal/handlers/rest/earnings_payout_post"
	"khaogully-admin/internal/handlers/rest/earnings_selection_post"
	"khaogully-admin/internal/handlers/rest/livemap_get"
	"khaogully-admin/internal/handlers/rest/order_assign_post"
	"khaogully-admin/internal/handlers/rest/order_deliver_post"
	"khaogully-admin/internal/handlers/rest/order_unassign_post"
	"khaogully-admin/internal/handlers/rest/orders_get"
	"khaogully-admin/internal/handlers/rest/orders_post"
	"khaogully-admin/internal/handlers/rest/pool_assign_driver_post"
	"khaogully-admin/internal/handlers/rest/pool_drivers_get"
	"khaogully-admin/internal/handlers/rest/pool_get"
	"khaogully-admin/internal/handlers/rest/pool_group_assign_post"
	"khaogully-admin/internal/handlers/rest/pool_group_post"
	"khaogully-admin/internal/handlers/rest/pool_order_toggle_post"
	"khaogully-admin/internal/handlers/rest/pool_orders_get"
	"khaogully-admin/internal/handlers/rest/pool_orders_toggle_unassigned_post"
	"khaogully-admin/internal/handlers/rest/pools_get"
	"khaogully-admin/internal/handlers/rest/pools_sync_post"
	"khaogully-admin/internal/handlers/rest/pools_trigger_sync_post"
	"khaogully-admin/internal/handlers/rest/restaurant_commission_post"
	"khaogully-admin/internal/handlers/rest/restaurant_payment_get"
	"khaogully-admin/internal/handlers/rest/restaurant_payment_patch"
	"khaogully-admin/internal/handlers/rest/restaurant_payments_get"
	"khaogully-admin/internal/handlers/rest/restaurant_payments_payout_post"
	"khaogully-admin/internal/handlers/rest/restaurant_payments_selection_post"
	"khaogully-admin/internal/handlers/rest/restaurant_portal_sync_post"
	"khaogully-admin/internal/handlers/rest/session_login_post"
	"khaogully-admin/internal/handlers/rest/session_logout_post"
	"khaogully-admin/internal/handlers/rest/status_get"
	"khaogully-admin/internal/service/session"
)

type Application struct {
	Session            ServiceSession
	Pages              ServicePages
	Dashboard          ServiceDashboard
	Orders             ServiceOrders
	Drivers            ServiceDrivers
	Livemap            ServiceLivemap
	Pools              ServicePools
	Earnings           ServiceEarnings
	RestaurantPayments ServiceRestaurantPayments
	Commission         ServiceCommission
}

type ServiceSession interface {
	session_login_post.Service
	session_logout_post.Service
	status_get.Session

	IsAuthenticated() bool
	Restore(ctx context.Context) error
	OnChange(listener session.Listener) func()
}

type ServicePages interface {
	status_get.Pages

	HandleSessionChange(ctx context.Context) session.Listener
	Unmount() error
}

type ServiceDashboard interface {
	dashboard_get.Service
}

type ServiceOrders interface {
	orders_get.Service
	orders_post.Service
	order_assign_post.Service
	order_unassign_post.Service
	order_deliver_post.Service
}

type ServiceDrivers interface {
	drivers_get.Service
	driver_status_patch.Service
	driver_bank_patch.Service
}

type ServiceLivemap interface {
	livemap_get.Service
}

type ServicePools interface {
	pools_get.Service
	pool_get.Service
	pool_group_post.Service
	pools_sync_post.Service
	pools_trigger_sync_post.Service
	pool_drivers_get.Service
	pool_group_assign_post.Service
	pool_orders_get.Service
	pool_order_toggle_post.Service
	pool_orders_toggle_unassigned_post.Service
	pool_assign_driver_post.Service
}

type ServiceEarnings interface {
	earnings_get.Service
	earnings_selection_post.Service
	earnings_payout_post.Service
	earnings_driver_get.Service
	earnings_driver_bank_patch.Service
}

type ServiceRestaurantPayments interface {
	restaurant_payments_get.Service
	restaurant_payments_selection_post.Service
	restaurant_payments_payout_post.Service
	restaurant_payment_get.Service
	restaurant_payment_patch.Service
	restaurant_portal_sync_post.Service
	restaurant_commission_post.Service
}

type ServiceCommission interface {
	commission_rates_get.Service
	commission_rate_post.Service
	commission_rate_patch.Service
	commission_rate_delete.Service
	commission_rate_toggle_post.Service
	commission_restaurant_assign_post.Service
	commission_restaurant_patch.Service
	commission_history_get.Service
	commission_config_get.Service
	commission_config_patch.Service
}
