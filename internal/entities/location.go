package entities

import "time"

type DriverLocation struct {
	DriverID  int64    `json:"driver_id"`
	Lat       float64  `json:"lat"`
	Lng       float64  `json:"lng"`
	Status    string   `json:"status,omitempty"`
	Heading   *float64 `json:"heading,omitempty"`
	Speed     *float64 `json:"speed,omitempty"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
	Timestamp *int64   `json:"timestamp,omitempty"`
	// LastSeen время получения события консолью, не время устройства.
	LastSeen time.Time `json:"last_seen"`
}
