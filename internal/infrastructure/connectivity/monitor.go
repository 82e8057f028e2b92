// Package connectivity holds the client's online/offline signal. The browser
// reports transitions through the API; favorites consult it before toggling.
package connectivity

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/homeservices/directory/internal/core/domain"
	"github.com/homeservices/directory/internal/core/ports"
)

// Monitor implements ports.Connectivity. It starts online.
type Monitor struct {
	mu       sync.RWMutex
	online   bool
	notifier ports.Notifier
	log      zerolog.Logger
}

var _ ports.Connectivity = (*Monitor)(nil)

func NewMonitor(notifier ports.Notifier, log zerolog.Logger) *Monitor {
	return &Monitor{online: true, notifier: notifier, log: log}
}

func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

// Set records the new signal. A transition publishes an info toast and
// returns true; repeating the current value is a no-op.
func (m *Monitor) Set(online bool) bool {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return false
	}
	m.online = online
	m.mu.Unlock()

	m.log.Info().Bool("online", online).Msg("connectivity changed")
	if online {
		m.notifier.Publish(domain.InfoToast(domain.MsgBackOnline))
	} else {
		m.notifier.Publish(domain.InfoToast(domain.MsgOfflineBanner))
	}
	return true
}

func (m *Monitor) Status() domain.ConnectivityStatus {
	if m.IsOnline() {
		return domain.ConnectivityStatus{Online: true}
	}
	return domain.ConnectivityStatus{Online: false, Banner: domain.MsgOfflineBanner}
}
