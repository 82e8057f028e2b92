package connectivity

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeservices/directory/internal/core/domain"
)

type recordingNotifier struct {
	toasts []domain.Toast
}

func (n *recordingNotifier) Publish(t domain.Toast) domain.Toast {
	n.toasts = append(n.toasts, t)
	return t
}

func TestMonitor_StartsOnline(t *testing.T) {
	m := NewMonitor(&recordingNotifier{}, zerolog.Nop())
	assert.True(t, m.IsOnline())
	assert.Equal(t, domain.ConnectivityStatus{Online: true}, m.Status())
}

func TestMonitor_TransitionsPublishToasts(t *testing.T) {
	n := &recordingNotifier{}
	m := NewMonitor(n, zerolog.Nop())

	assert.True(t, m.Set(false))
	assert.False(t, m.IsOnline())
	assert.Equal(t, domain.MsgOfflineBanner, m.Status().Banner)

	assert.True(t, m.Set(true))

	require.Len(t, n.toasts, 2)
	assert.Equal(t, domain.ToastInfo, n.toasts[0].Type)
	assert.Equal(t, domain.MsgOfflineBanner, n.toasts[0].Message)
	assert.Equal(t, domain.MsgBackOnline, n.toasts[1].Message)
}

func TestMonitor_RepeatedValueIsNoop(t *testing.T) {
	n := &recordingNotifier{}
	m := NewMonitor(n, zerolog.Nop())

	assert.False(t, m.Set(true))
	assert.Empty(t, n.toasts)
}
