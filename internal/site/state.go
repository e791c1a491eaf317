package site

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/almare/internal/forms"
	"github.com/dmitrymomot/almare/pkg/handler"
	"github.com/dmitrymomot/almare/pkg/logger"
	"github.com/dmitrymomot/almare/pkg/statemachine"
)

type stateRequest struct {
	ID string `path:"id"`
}

type stateSnapshot struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	State string `json:"state"`
}

func statusTarget(kind forms.Kind) string {
	if kind == forms.KindDonation {
		return donationStatusTarget
	}
	return contactStatusTarget
}

// formState streams the submission state of a form instance. Every
// transition updates the formState signal; returning to idle also clears
// the status alert. Transitions already queued when the instance closes
// are still delivered.
func (s *Site) formState(ctx handler.Context, req stateRequest) handler.Response {
	inst, ok := s.tracker.Get(req.ID)
	if !ok {
		return handler.Error(handler.ErrNotFound)
	}
	r := ctx.Request()
	snapshot := stateSnapshot{ID: inst.ID, Kind: string(inst.Kind), State: inst.Machine.State().Name()}

	return handler.SSE(func(sc handler.StreamContext) error {
		// The stream outlives the server write timeout.
		if err := http.NewResponseController(sc.ResponseWriter()).SetWriteDeadline(time.Time{}); err != nil {
			s.log.DebugContext(r.Context(), "write deadline not cleared", logger.Error(err))
		}

		updates := make(chan statemachine.State, 8)
		unsubscribe := inst.Machine.Subscribe(func(st statemachine.State) {
			select {
			case updates <- st:
			default:
			}
		})
		defer unsubscribe()

		// Read after subscribing so a reset in between is not lost.
		if err := sc.SendSignals(map[string]any{"formState": inst.Machine.State().Name()}); err != nil {
			return err
		}

		page := s.view(r, "", "", "", nil)
		send := func(st statemachine.State) error {
			if err := sc.SendSignals(map[string]any{"formState": st.Name()}); err != nil {
				return err
			}
			if st != forms.StateIdle {
				return nil
			}
			status := FormStatus{Target: statusTarget(inst.Kind), State: st.Name()}
			return sc.SendComponent(s.views.Partial("form_status", page.WithData(status)))
		}

		for {
			select {
			case <-sc.Done():
				return nil
			case <-inst.Machine.Done():
				for {
					select {
					case st := <-updates:
						if err := send(st); err != nil {
							return err
						}
					default:
						return nil
					}
				}
			case st := <-updates:
				if err := send(st); err != nil {
					return err
				}
			}
		}
	}, handler.JSON(snapshot))
}
