package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"folio/internal/core"
	"folio/internal/logging"
	"folio/internal/usecase"
)

const (
	writeWait   = 5 * time.Second
	liveBacklog = 8
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

var errUnmounted = errors.New("carousel unmounted")

type liveState struct {
	ActiveIndex int `json:"activeIndex"`
	SlideCount  int `json:"slideCount"`
}

type liveCommand struct {
	Cmd   string `json:"cmd"`
	Index int    `json:"index"`
}

type liveError struct {
	Error string `json:"error"`
}

// handleLiveCarousel mounts one carousel per connection and pushes every
// index change to the browser. Closing the connection unmounts it.
func (s *Server) handleLiveCarousel(w http.ResponseWriter, r *http.Request) {
	page := r.URL.Query().Get("page")
	if page == "" {
		page = usecase.PageHome
	}
	if _, err := s.carousels.Banner(page); err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Debugf("websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c, err := s.carousels.Mount(ctx, page)
	if err != nil {
		_ = conn.WriteJSON(liveError{Error: err.Error()})
		return
	}
	defer func() {
		if err := s.carousels.Unmount(c); err != nil {
			logging.Warnf("unmount carousel %s: %v", c.ID(), err)
		}
	}()

	updates := make(chan core.View, liveBacklog)
	replies := make(chan liveError, 1)
	off := c.OnChange(func(v core.View) {
		select {
		case updates <- v:
		default:
			logging.Tracef("carousel %s: dropped update for slow client", c.ID())
		}
	})
	defer off()

	initial, err := c.Snapshot()
	if err != nil {
		return
	}
	if err := writeJSON(conn, liveState{ActiveIndex: initial.ActiveIndex, SlideCount: initial.SlideCount}); err != nil {
		return
	}

	logging.L().Debug("live carousel connected", zap.String("page", page), zap.String("id", c.ID()))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-c.Done():
				return errUnmounted
			case v := <-updates:
				if err := writeJSON(conn, liveState{ActiveIndex: v.ActiveIndex, SlideCount: v.SlideCount}); err != nil {
					return err
				}
			case e := <-replies:
				if err := writeJSON(conn, e); err != nil {
					return err
				}
			}
		}
	})
	g.Go(func() error {
		<-gctx.Done()
		// Unblocks the reader below.
		return conn.Close()
	})

	for {
		var cmd liveCommand
		if err := conn.ReadJSON(&cmd); err != nil {
			break
		}
		if err := applyCommand(c, cmd); err != nil {
			select {
			case replies <- liveError{Error: err.Error()}:
			default:
			}
		}
	}
	cancel()
	if err := g.Wait(); err != nil && !errors.Is(err, errUnmounted) {
		logging.Tracef("live carousel %s closed: %v", c.ID(), err)
	}
	logging.L().Debug("live carousel disconnected", zap.String("id", c.ID()))
}

func applyCommand(c *core.Carousel, cmd liveCommand) error {
	switch cmd.Cmd {
	case "next":
		return c.Next()
	case "previous":
		return c.Previous()
	case "goto":
		return c.GoTo(cmd.Index)
	default:
		return fmt.Errorf("unknown command %q", cmd.Cmd)
	}
}

func writeJSON(conn *websocket.Conn, v any) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(v)
}
