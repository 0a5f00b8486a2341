package main

import (
	"flag"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Имитация админского realtime-канала backend для локальной отладки консоли:
// console с BACKEND_BASE_URL=http://localhost:8000/api/v1 подключится сюда.

var (
	eventsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "generator_events_sent_total",
		Help: "Отправленные события по типу",
	}, []string{"type"})

	clientsConnected = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "generator_clients_connected",
		Help: "Подключённые клиенты",
	})
)

var statuses = []string{"PENDING", "ASSIGNED", "ACCEPTED", "PICKED_UP", "IN_TRANSIT", "DELIVERED"}

var drivers = []string{"Asha", "Bilal", "Chetan", "Divya", "Esha"}

type envelope struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

type location struct {
	DriverID  int64   `json:"driver_id"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Status    string  `json:"status"`
	Heading   float64 `json:"heading"`
	Speed     float64 `json:"speed"`
	Timestamp int64   `json:"timestamp"`
}

type orderUpdate struct {
	OrderID    int64  `json:"order_id"`
	Status     string `json:"status"`
	DriverName string `json:"driver_name,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

func main() {
	addr := flag.String("addr", ":8000", "websocket listen address")
	metricsAddr := flag.String("metrics-addr", ":2112", "metrics listen address")
	interval := flag.Duration("interval", 2*time.Second, "location event interval")
	flag.Parse()

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		log.Println(http.ListenAndServe(*metricsAddr, mux)) //nolint:gosec // dev tool
	}()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/ws/admin", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("token") == "" {
			http.Error(w, "token required", http.StatusUnauthorized)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		serve(conn, *interval)
	})

	log.Printf("realtime generator listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, mux)) //nolint:gosec // dev tool
}

// writer gorilla/websocket не допускает параллельных писателей.
type writer struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func serve(conn *websocket.Conn, interval time.Duration) {
	defer conn.Close()
	w := &writer{conn: conn}
	clientsConnected.Inc()
	defer clientsConnected.Dec()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var msg envelope
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			if msg.Type == "ping" {
				w.send(envelope{Type: "pong"})
			}
		}
	}()

	rnd := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // dev tool
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var orderID int64 = 100
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
		}

		driverID := int64(rnd.Intn(len(drivers)) + 1)
		if !w.send(envelope{Type: "driver_location", Data: location{
			DriverID:  driverID,
			Lat:       12.97 + rnd.Float64()/50,
			Lng:       77.59 + rnd.Float64()/50,
			Status:    "online",
			Heading:   rnd.Float64() * 360,
			Speed:     rnd.Float64() * 40,
			Timestamp: time.Now().UnixMilli(),
		}}) {
			return
		}

		if rnd.Intn(3) == 0 {
			orderID++
			if !w.send(envelope{Type: "order_update", Data: orderUpdate{
				OrderID:    orderID,
				Status:     statuses[rnd.Intn(len(statuses))],
				DriverName: drivers[driverID-1],
			}}) {
				return
			}
		}
	}
}

func (w *writer) send(ev envelope) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	_ = w.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if err := w.conn.WriteJSON(ev); err != nil {
		return false
	}
	eventsSent.WithLabelValues(ev.Type).Inc()
	return true
}
