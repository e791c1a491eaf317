package forms_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/almare/internal/forms"
	"github.com/dmitrymomot/almare/pkg/statemachine"
)

func newTestMachine() (*forms.Machine, *fakeScheduler) {
	sched := &fakeScheduler{}
	return forms.NewMachine(forms.DefaultResetAfter, sched.AfterFunc), sched
}

func TestMachine(t *testing.T) {
	t.Parallel()
	values := map[string]string{"name": "Ana", "message": "hola hola hola"}

	t.Run("success clears values and resets after delay", func(t *testing.T) {
		t.Parallel()
		m, sched := newTestMachine()

		require.NoError(t, m.Submit(values))
		assert.Equal(t, forms.StateSubmitting, m.State())
		assert.Equal(t, values, m.Values())

		require.NoError(t, m.Succeed())
		assert.Equal(t, forms.StateSuccess, m.State())
		assert.Empty(t, m.Values())
		assert.Equal(t, 1, sched.Scheduled())

		sched.Elapse(4 * time.Second)
		assert.Equal(t, forms.StateSuccess, m.State())
		sched.Elapse(5 * time.Second)
		assert.Equal(t, forms.StateIdle, m.State())
	})

	t.Run("failure keeps values and resets after delay", func(t *testing.T) {
		t.Parallel()
		m, sched := newTestMachine()

		require.NoError(t, m.Submit(values))
		require.NoError(t, m.Fail())
		assert.Equal(t, forms.StateError, m.State())
		assert.Equal(t, values, m.Values())

		sched.Elapse(forms.DefaultResetAfter)
		assert.Equal(t, forms.StateIdle, m.State())
		assert.Equal(t, values, m.Values())
	})

	t.Run("submit is rejected unless idle", func(t *testing.T) {
		t.Parallel()
		m, _ := newTestMachine()

		require.NoError(t, m.Submit(values))
		assert.ErrorIs(t, m.Submit(values), forms.ErrBusy)
		require.NoError(t, m.Succeed())
		assert.ErrorIs(t, m.Submit(values), forms.ErrBusy)
	})

	t.Run("values are copied", func(t *testing.T) {
		t.Parallel()
		m, _ := newTestMachine()
		in := map[string]string{"name": "Ana"}
		require.NoError(t, m.Submit(in))
		in["name"] = "changed"
		m.Values()["name"] = "changed"
		assert.Equal(t, "Ana", m.Values()["name"])
	})

	t.Run("dismiss cancels the pending reset", func(t *testing.T) {
		t.Parallel()
		m, sched := newTestMachine()
		require.NoError(t, m.Submit(values))
		require.NoError(t, m.Fail())
		require.NoError(t, m.Dismiss())
		assert.Equal(t, forms.StateIdle, m.State())
		assert.Equal(t, 0, sched.Scheduled())

		require.NoError(t, m.Submit(values))
		sched.Elapse(time.Hour)
		assert.Equal(t, forms.StateSubmitting, m.State())
	})

	t.Run("stale reset does not touch a newer cycle", func(t *testing.T) {
		t.Parallel()
		var (
			mu    sync.Mutex
			stale func()
		)
		after := func(d time.Duration, f func()) forms.Timer {
			mu.Lock()
			defer mu.Unlock()
			if stale == nil {
				stale = f
			}
			return &fakeTimer{d: d, f: f}
		}
		m := forms.NewMachine(time.Second, after)
		require.NoError(t, m.Submit(values))
		require.NoError(t, m.Fail())
		require.NoError(t, m.Dismiss())
		require.NoError(t, m.Submit(values))
		require.NoError(t, m.Succeed())

		stale()
		assert.Equal(t, forms.StateSuccess, m.State())
	})

	t.Run("subscribers see each transition", func(t *testing.T) {
		t.Parallel()
		m, sched := newTestMachine()
		var seen []string
		unsubscribe := m.Subscribe(func(s statemachine.State) {
			seen = append(seen, s.Name())
		})

		require.NoError(t, m.Submit(values))
		require.NoError(t, m.Succeed())
		sched.Elapse(forms.DefaultResetAfter)
		unsubscribe()
		require.NoError(t, m.Submit(values))

		assert.Equal(t, []string{"submitting", "success", "idle"}, seen)
	})

	t.Run("closed machine rejects events", func(t *testing.T) {
		t.Parallel()
		m, sched := newTestMachine()
		require.NoError(t, m.Submit(values))
		require.NoError(t, m.Succeed())
		m.Close()
		m.Close()

		sched.Elapse(time.Hour)
		assert.Equal(t, forms.StateSuccess, m.State())
		assert.ErrorIs(t, m.Dismiss(), forms.ErrInstanceClosed)
		select {
		case <-m.Done():
		default:
			t.Fatal("done not closed")
		}
	})
}
