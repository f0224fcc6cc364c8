package notifier

import (
	"fmt"
	"sync"

	"github.com/uguryukselwork/quickserve/models"
	"github.com/uguryukselwork/quickserve/settings"
	"github.com/uguryukselwork/quickserve/store"
)

// Alert is one staff notification: an audio cue and an optional spoken
// announcement. Either part may be absent depending on settings.
type Alert struct {
	Cue    *AudioCue `json:"cue,omitempty"`
	Speech *Speech   `json:"speech,omitempty"`
}

// Speech is a sentence for the staff client's TTS engine.
type Speech struct {
	Text   string  `json:"text"`
	Lang   string  `json:"lang"`
	Volume float64 `json:"volume"`
}

// Sink receives finished alerts, normally the websocket hub.
type Sink interface {
	StaffAlert(Alert)
}

// Engine turns store arrivals into staff alerts, exactly one per new
// pending call or new active order. The primary feed is the store's own
// arrival events; the edge tracker covers the reload path, where arrivals
// can only be inferred from count increases.
type Engine struct {
	mu       sync.Mutex
	settings *settings.Store
	store    *store.Store
	sink     Sink
	tracker  EdgeTracker
}

func NewEngine(st *store.Store, cfg *settings.Store, sink Sink) *Engine {
	e := &Engine{
		settings: cfg,
		store:    st,
		sink:     sink,
	}
	// Baseline the tracker so a persisted backlog is not announced on boot.
	e.tracker.Observe(st.Counts())
	return e
}

// HandleEvent is subscribed to the store; arrival events alert directly.
func (e *Engine) HandleEvent(ev store.Event) {
	switch ev.Type {
	case store.EventNewCall:
		e.mu.Lock()
		e.tracker.Observe(e.store.Counts())
		e.mu.Unlock()
		e.alert(e.callAnnouncement(*ev.Call))
	case store.EventNewOrder:
		e.mu.Lock()
		e.tracker.Observe(e.store.Counts())
		e.mu.Unlock()
		e.alert(e.orderAnnouncement(*ev.Order))
	case store.EventCallUpdate, store.EventCallsCleared, store.EventOrderUpdate,
		store.EventOrderCancelled:
		// Rebase the tracker so resolved backlog does not mask the next
		// arrival seen through the reload path.
		e.mu.Lock()
		e.tracker.Observe(e.store.Counts())
		e.mu.Unlock()
	}
}

// ObserveReload is called after the store reloads persisted state. Count
// increases are edge-detected and only the newest arrival of each kind is
// announced.
func (e *Engine) ObserveReload() {
	e.mu.Lock()
	newCall, newOrder := e.tracker.Observe(e.store.Counts())
	e.mu.Unlock()

	if newCall {
		if call, ok := e.store.NewestPendingCall(); ok {
			e.alert(e.callAnnouncement(call))
		}
	}
	if newOrder {
		if order, ok := e.store.NewestActiveOrder(); ok {
			e.alert(e.orderAnnouncement(order))
		}
	}
}

// Preview plays a sound profile regardless of the mute switch, for the
// settings screen.
func (e *Engine) Preview(soundType string) Alert {
	cfg := e.settings.Get()
	cue := BuildCue(soundType, cfg.Volume)
	a := Alert{Cue: &cue}
	e.sink.StaffAlert(a)
	return a
}

func (e *Engine) callAnnouncement(call models.WaiterCall) string {
	label := models.CallLabels[call.Type]
	if label == "" {
		label = models.CallLabels[models.CallOther]
	}
	return fmt.Sprintf("Masa %s %s bekliyor.", call.TableID, label)
}

func (e *Engine) orderAnnouncement(order models.Order) string {
	return fmt.Sprintf("Masa %s yeni bir sipariş verdi.", order.TableID)
}

// alert assembles the cue and speech under current settings and forwards
// the result. Muting silences both; disabled TTS silences speech only.
func (e *Engine) alert(text string) {
	cfg := e.settings.Get()
	if cfg.IsMuted {
		return
	}

	cue := BuildCue(cfg.SoundType, cfg.Volume)
	a := Alert{Cue: &cue}
	if cfg.EnableTTS {
		a.Speech = &Speech{Text: text, Lang: "tr-TR", Volume: cfg.Volume}
	}
	e.sink.StaffAlert(a)
}
