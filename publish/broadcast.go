// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/critterlabs/critterd/messagebus"
	"github.com/critterlabs/critterd/util"
)

// queue depth for the broadcaster's bus listener
const broadcasterQueueSize = 500

type broadcaster struct {
	log     *logger.L
	socket4 *zmq.Socket // IPv4 traffic
	socket6 *zmq.Socket // IPv6 traffic
	queue   <-chan messagebus.Notification
}

// initialise the broadcaster
// binds up to 2 sockets for separate IPv4 and IPv6 traffic
func (brdc *broadcaster) initialise(broadcast []string) error {

	log := logger.New("broadcaster")
	brdc.log = log

	log.Info("initialising…")

	connections, err := util.NewConnections(broadcast)
	if nil != err {
		log.Errorf("ip and port error: %s", err)
		return err
	}

	for i, address := range connections {
		bindTo, v6 := address.CanonicalIPandPort("tcp://")

		socket := brdc.socket4
		if v6 {
			socket = brdc.socket6
		}
		if nil == socket {
			socket, err = newPublisher(v6)
			if nil != err {
				log.Errorf("create socket[%d]: error: %s", i, err)
				brdc.release()
				return err
			}
			if v6 {
				brdc.socket6 = socket
			} else {
				brdc.socket4 = socket
			}
		}

		err = socket.Bind(bindTo)
		if nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
			brdc.release()
			return err
		}
		log.Infof("bind[%d]: %q  IPv6: %v", i, bindTo, v6)
	}

	brdc.queue = messagebus.Bus.Broadcast.Chan(broadcasterQueueSize)

	return nil
}

// wait for notifications and relay each one to all subscribers
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-brdc.queue:
			brdc.process(brdc.socket4, item)
			brdc.process(brdc.socket6, item)
		}
	}
	brdc.release()
}

// send one notification as a two frame message: command then JSON data
// a full send queue drops the notification, same policy as the bus
func (brdc *broadcaster) process(socket *zmq.Socket, item messagebus.Notification) {
	if nil == socket {
		return
	}

	data, err := json.Marshal(item)
	if nil != err {
		brdc.log.Errorf("marshal: %q  error: %s", item.Command(), err)
		return
	}

	brdc.log.Infof("sending: %s  data: %s", item.Command(), data)

	_, err = socket.Send(item.Command(), zmq.SNDMORE|zmq.DONTWAIT)
	if nil != err {
		brdc.log.Errorf("send command: %q  error: %s", item.Command(), err)
		return
	}
	_, err = socket.SendBytes(data, zmq.DONTWAIT)
	if nil != err {
		brdc.log.Errorf("send data: %q  error: %s", item.Command(), err)
	}
}

// close any allocated sockets
func (brdc *broadcaster) release() {
	if nil != brdc.socket4 {
		brdc.socket4.Close()
		brdc.socket4 = nil
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
		brdc.socket6 = nil
	}
}

// create an unbound PUB socket
func newPublisher(v6 bool) (*zmq.Socket, error) {

	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return nil, err
	}

	socket.SetLinger(0)
	socket.SetIpv6(v6)

	return socket, nil
}
