// Copyright (c) 2014-2016 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// internal constants
const (
	defaultQueueSize = 1000
)

// Notification - one broadcastable event
//
// Command names the notification kind for subscribers, the
// notification body is marshalled by the broadcasting side
type Notification interface {
	Command() string
}

// Broadcaster - fan a notification out to every attached listener
type Broadcaster struct {
	sync.Mutex
	listeners []chan Notification
}

// Bus - the exported queues
var Bus struct {
	Broadcast Broadcaster
}

// Send - queue a notification to all current listeners
//
// a listener whose buffer is full loses the notification, with no
// listeners attached it is dropped entirely, the sending operation
// never stalls
func (b *Broadcaster) Send(n Notification) {
	b.Lock()
	defer b.Unlock()

	for _, listener := range b.listeners {
		select {
		case listener <- n:
		default: // slow listener loses the notification
		}
	}
}

// Chan - attach a listener and obtain its receive channel
//
// a size of zero selects the default buffer size
func (b *Broadcaster) Chan(size int) <-chan Notification {
	if size <= 0 {
		size = defaultQueueSize
	}
	listener := make(chan Notification, size)

	b.Lock()
	b.listeners = append(b.listeners, listener)
	b.Unlock()

	return listener
}

// Release - detach all listeners
//
// pending notifications in detached channels stay readable until
// the channels are garbage collected
func (b *Broadcaster) Release() {
	b.Lock()
	b.listeners = nil
	b.Unlock()
}
