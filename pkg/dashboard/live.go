package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/hajni77/f1-analytics/pkg/encoding"
	"github.com/hajni77/f1-analytics/pkg/model"
	"github.com/hajni77/f1-analytics/pkg/pubsub"
	"github.com/hajni77/f1-analytics/pkg/service"
)

const standingsTopic = "standings"

var upgrader = websocket.Upgrader{} // use default options

// Live refreshes the current standings in the background and pushes
// JSON frames to websocket subscribers.
type Live struct {
	ctx   context.Context
	svc   *service.Service
	ps    *pubsub.PubSub[string]
	codec encoding.FrameCodec[[]model.DriverStanding]
}

func NewLive(ctx context.Context, svc *service.Service) *Live {
	return &Live{
		ctx: ctx,
		svc: svc,
		ps:  pubsub.New[string](),
	}
}

// Sync publishes a fresh frame per tick until exitChan fires.
func (l *Live) Sync(ticker *time.Ticker, exitChan <-chan bool) {
	l.doSync(time.Now())
	go func() {
		for {
			select {
			case <-exitChan:
				return
			case t := <-ticker.C:
				l.doSync(t)
			}
		}
	}()
}

func (l *Live) doSync(t time.Time) {
	log.Debugf("refreshing live standings at %s", t)
	standings, err := l.svc.DriverStandings(l.ctx, 0)
	if err != nil {
		log.Errorf("error refreshing live standings: %s", err)
		return
	}
	payload, err := l.codec.Encode(t, standings)
	if err != nil {
		log.Errorf("error encoding standings frame: %s", err)
		return
	}
	l.ps.Publish(standingsTopic, payload)
}

func (l *Live) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Errorf("websocket upgrade: %s", err)
		return
	}
	defer conn.Close()

	frames := l.ps.Subscribe(standingsTopic)
	defer l.ps.Unsubscribe(standingsTopic, frames)

	for {
		select {
		case <-l.ctx.Done():
			return
		case <-r.Context().Done():
			return
		case frame, ok := <-frames:
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
				log.Infof("websocket closed: %s", err)
				return
			}
		}
	}
}
