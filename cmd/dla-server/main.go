// Command dla-server runs the simulation headless and streams grid
// snapshots to websocket viewers.
package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"dla-ca/internal/sims/dla"

	"github.com/gorilla/websocket"
)

// GridDTO is the JSON view of one simulation snapshot sent to viewers.
type GridDTO struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Stuck    int    `json:"stuck"`
	Target   int    `json:"target"`
	Updates  uint64 `json:"updates"`
	Complete bool   `json:"complete"`
	// Cells holds display values in row-major order: 0 for empty, 1..10 for
	// stick-order buckets. Encoded as base64 on the wire.
	Cells []uint8   `json:"cells"`
	At    time.Time `json:"at"`
}

func main() {
	addr := flag.String("http", ":8080", "HTTP listen address")
	width := flag.Int("width", 400, "grid width in cells")
	height := flag.Int("height", 0, "grid height in cells (defaults to width)")
	particles := flag.Int("particles", 10_000, "number of particles to stick")
	seedKind := flag.String("seed-kind", "center", "initial pattern")
	seed := flag.Int64("seed", 1337, "random seed")
	pollMs := flag.Int("poll_ms", 250, "snapshot interval in milliseconds")
	flag.Parse()

	if *height <= 0 {
		*height = *width
	}
	kind, ok := dla.ParseSeedKind(*seedKind)
	if !ok {
		log.Fatalf("unknown seed kind %q", *seedKind)
	}

	sim := dla.New(dla.Config{
		Width:     *width,
		Height:    *height,
		Particles: *particles,
		Seed:      *seed,
		SeedKind:  kind,
	})
	shared := dla.NewShared(sim)
	shared.StartWorker()
	// No pause button here; start running immediately.
	shared.With(func(s *dla.Sim) { s.TogglePause(dla.UnpauseButtonText) })

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true // viewers may connect from any origin
		},
	}

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("failed to upgrade connection: %v", err)
			return
		}
		defer conn.Close()
		log.Printf("viewer connected from %s", r.RemoteAddr)

		ticker := time.NewTicker(time.Duration(*pollMs) * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			if err := conn.WriteJSON(snapshot(shared)); err != nil {
				log.Printf("viewer %s dropped: %v", r.RemoteAddr, err)
				return
			}
		}
	})

	log.Printf("serving grid snapshots on %s/ws", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}

// snapshot copies the current simulation state under the shared lock so the
// websocket write happens outside it.
func snapshot(shared *dla.Shared) GridDTO {
	var dto GridDTO
	shared.With(func(s *dla.Sim) {
		size := s.Size()
		dto = GridDTO{
			Width:    size.W,
			Height:   size.H,
			Stuck:    s.Stuck(),
			Target:   s.Target(),
			Updates:  s.Updates(),
			Complete: s.Complete(),
			Cells:    append([]uint8(nil), s.Cells()...),
			At:       time.Now(),
		}
	})
	return dto
}
